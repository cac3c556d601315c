// Package solver implements the breadth-first chain search over a
// board.Board, emitting shortest full-coverage chains first and a
// best-effort partial chain when nothing covers the board.
package solver

import (
	"fmt"

	"github.com/katalvlaran/letterbox/board"
)

// state is one node of the chain search: the letter the chain currently
// ends on, the board letters covered so far, and the path of word indices
// that produced it. The path rides along so states stay self-describing;
// identity for revisiting purposes would be (cur, visited) alone, but this
// walk never deduplicates.
type state struct {
	cur     rune
	visited coverSet
	path    []int
}

// walker encapsulates mutable search state for one Solve call.
type walker struct {
	board *board.Board
	words []string
	trans *transitions
	opts  Options

	maxDepth int
	full     coverSet

	queue   []state
	results []Result

	// best is the highest-coverage state dequeued so far, ties broken by
	// shorter path. Emitted alone if no chain reaches full coverage.
	best state
}

// Solve explores word chains on b drawn from words, breadth-first, and
// returns up to MaxResults full-coverage chains in discovery order.
// maxDepth bounds the total chain length, prior words included; a value
// below 1 leaves room for nothing and yields only the fallback chain.
// If no chain covers the whole board within maxDepth, Solve returns the
// single best partial chain seen instead — the result list is never empty.
// Returns ErrBoardNil, ErrOptionViolation, or ErrPriorIndex on bad input.
func Solve(b *board.Board, words []string, maxDepth int, opts ...Option) ([]Result, error) {
	if b == nil {
		return nil, ErrBoardNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// Prior indices must resolve before any state is formed.
	for _, idx := range o.PriorWords {
		if idx < 0 || idx >= len(words) {
			return nil, fmt.Errorf("%w: index %d with %d words", ErrPriorIndex, idx, len(words))
		}
	}

	w := &walker{
		board:    b,
		words:    words,
		trans:    newTransitions(b, words),
		opts:     o,
		maxDepth: maxDepth,
		full:     fullCoverSet(b.LetterCount()),
	}
	w.seed()
	w.loop()

	return w.emit(), nil
}

// seed enqueues the starting states: the single prefix-derived state when
// prior words are present, otherwise one state per transition-graph start
// letter. The best-effort record starts at the seed so a resumed search
// can never fall back to less than the chain it was given.
func (w *walker) seed() {
	n := w.board.LetterCount()
	if len(w.opts.PriorWords) > 0 {
		visited := newCoverSet(n)
		for _, idx := range w.opts.PriorWords {
			visited.or(w.trans.masks[idx])
		}
		// The chain's chronological end is fixed by the last prior word.
		var cur rune
		last := w.opts.PriorWords[len(w.opts.PriorWords)-1]
		for _, r := range w.words[last] {
			cur = r
		}
		path := append([]int(nil), w.opts.PriorWords...)
		seed := state{cur: cur, visited: visited, path: path}
		w.best = seed
		w.queue = append(w.queue, seed)

		return
	}

	w.best = state{visited: newCoverSet(n)}
	for _, s := range w.trans.starts {
		visited := newCoverSet(n)
		if pos, ok := w.board.Index(s); ok {
			visited.set(pos)
		}
		w.queue = append(w.queue, state{cur: s, visited: visited})
	}
}

// loop processes the queue in FIFO order until it drains or MaxResults
// full-coverage chains have been emitted.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		st := w.dequeue()
		// 1. Best-effort bookkeeping happens before any pruning, so even
		//    depth-capped states compete for the fallback slot.
		w.record(st)
		// 2. Full coverage: emit, stop everything at the cap.
		if st.visited.equal(w.full) {
			w.results = append(w.results, Result{Words: w.chain(st.path), Covered: st.visited.count()})
			if len(w.results) >= w.opts.MaxResults {
				return
			}

			continue
		}
		// 3. Depth budget: one more word must still fit.
		if len(st.path)+1 > w.maxDepth {
			continue
		}
		// 4. Expand along every word that still adds coverage.
		w.expand(st)
	}
}

// dequeue pops the first state.
func (w *walker) dequeue() state {
	st := w.queue[0]
	w.queue = w.queue[1:]

	return st
}

// record keeps st as the best-effort answer if it covers more letters
// than anything dequeued before, or as many letters with a shorter chain.
func (w *walker) record(st state) {
	sc, bc := st.visited.count(), w.best.visited.count()
	if sc > bc || (sc == bc && len(st.path) < len(w.best.path)) {
		w.best = st
	}
}

// expand enqueues one successor per outgoing word that still adds
// coverage. End letters ascend and bucket order is fixed at graph build
// time, so discovery order is reproducible. Successors are enqueued
// unconditionally: revisiting an equal (letter, coverage) state via a
// different path is allowed.
func (w *walker) expand(st state) {
	buckets := w.trans.routes[st.cur]
	for _, end := range w.trans.ends[st.cur] {
		for _, idx := range buckets[end] {
			mask := w.trans.masks[idx]
			if st.visited.covers(mask) {
				continue // word adds no new letter
			}
			visited := st.visited.clone()
			visited.or(mask)
			path := make([]int, len(st.path)+1)
			copy(path, st.path)
			path[len(st.path)] = idx
			w.queue = append(w.queue, state{cur: end, visited: visited, path: path})
		}
	}
}

// chain maps word indices back to their text.
func (w *walker) chain(path []int) []string {
	out := make([]string, len(path))
	for i, idx := range path {
		out[i] = w.words[idx]
	}

	return out
}

// emit returns every full-coverage chain found, or the single best-effort
// chain when there were none.
func (w *walker) emit() []Result {
	if len(w.results) == 0 {
		return []Result{{Words: w.chain(w.best.path), Covered: w.best.visited.count()}}
	}

	return w.results
}
