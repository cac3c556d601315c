// Package letterbox solves the Letter Boxed word-chain puzzle: four sides
// of three letters each, words that never step between two letters on the
// same side, chained end-letter to start-letter until every letter on the
// board is used.
//
// 🚀 What is letterbox?
//
//	A small, deterministic, dependency-light solver toolkit:
//		• Board model: same-side adjacency rules + the coverage target
//		• Chain search: breadth-first over word chains, shortest chains first
//		• Validator: independent legality check for any word chain
//		• Built-in dictionary: a compact embedded word list, loaded once
//		• Report layer: the classic "covered/total word word ..." text output
//
// ✨ Why choose letterbox?
//
//   - Deterministic – identical inputs always produce identical output order
//   - Honest fallbacks – when no chain covers the board, you still get the
//     best partial chain found instead of an empty answer
//   - Resumable – seed the search with words already played and extend them
//   - Pure Go – no cgo, no network, no persistence
//
// Everything is organized under four subpackages:
//
//	board/  — Board construction, word eligibility, chain validation
//	solver/ — the breadth-first chain search engine
//	dict/   — the embedded built-in word list
//	report/ — text-report entry points over the solver
//
// Quick ASCII example:
//
//	      O A L
//	    ┌───────┐
//	  R │       │ N
//	  P │       │ U
//	  I │       │ K
//	    └───────┘
//	      C E T
//
//	CAPTURE → ELK → KOINE uses every letter in three words.
//
// Dive into each package's doc.go and example_test.go for walkthroughs.
//
//	go get github.com/katalvlaran/letterbox
package letterbox
