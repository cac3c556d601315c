// Package solver searches for word chains that cover a Letter Boxed board,
// shortest chains first, with prefix resumption and a best-effort fallback.
//
// What
//
//   - Solve filters the word list through board.Eligible, indexes the
//     survivors by (first letter, last letter) into a transition graph,
//     then walks the chain space breadth-first.
//   - Chains are discovered in non-decreasing word count: FIFO processing
//     makes "shortest solution first" emerge without cost bookkeeping.
//   - Each search state carries the letter the chain ends on, the set of
//     board letters covered so far, and the full path of word indices, so
//     every state is self-describing and no parent pointers are needed.
//   - WithPriorWords resumes from a chain already played: coverage is
//     seeded from every prior word and extension continues from the last
//     letter of the last prior word.
//   - When no chain reaches full coverage within maxDepth, Solve returns
//     the single best partial chain seen instead; callers always get at
//     least one Result.
//
// Why
//
//   - The puzzle asks for the fewest words that cover all board letters;
//     breadth-first order answers exactly that question.
//   - Partial answers beat no answers: a near-covering chain is still
//     useful to a player, so the engine never returns empty-handed.
//
// Determinism
//
//	Seeds are enqueued in ascending start-letter order, end letters ascend
//	during expansion, and words sharing a (start, end) pair are ordered by
//	text and then by word-list position. Identical inputs therefore produce
//	identical output, run after run.
//
// State revisiting
//
//	The walk does not deduplicate states: a (letter, coverage) pair reached
//	by two different paths is expanded twice. Work stays bounded through
//	maxDepth, through MaxResults, and by skipping words that add no new
//	coverage to the state they would extend.
//
// Concurrency
//
//	Solve is synchronous and self-contained; every call owns its own
//	transition graph, queue and best-effort record. Distinct calls may run
//	concurrently without coordination as long as each receives its own
//	board and word list.
//
// Complexity (W = words, D = maxDepth, B = branching after pruning)
//
//   - Graph build: O(W · word length)
//   - Search:      O(B^D) states worst case; MaxResults and the
//     no-new-coverage rule cut this sharply in practice
//
// Usage
//
//	b := board.New("ELZ", "IVA", "RYU", "CTH")
//	results, err := solver.Solve(b, dict.Words(), 4)
//	if err != nil {
//	    // handle ErrBoardNil, ErrOptionViolation or ErrPriorIndex
//	}
//	fmt.Println(results[0].Words) // [VEHICULAR RITZILY]
//
// Options
//
//   - DefaultOptions(): MaxResults = DefaultMaxResults, no prior words.
//   - WithMaxResults(n): stop the whole search after n full-coverage chains.
//   - WithPriorWords(indices...): resume from an already-played chain.
//
// Errors
//
//   - ErrBoardNil        if the board pointer is nil.
//   - ErrOptionViolation if an Option carries an invalid value.
//   - ErrPriorIndex      if a prior-word index is outside the word list.
package solver
