// Package report renders chain-search results as the classic text report:
// one "<covered>/<total> <word> <word> ..." line per chain, each followed
// by a blank line.
//
// What
//
//   - Solve runs the search against the built-in word list.
//   - SolveWithDict runs it against a caller-supplied dictionary, split
//     on ASCII whitespace.
//   - Resume extends an already-played chain; every prior word must match
//     a built-in entry exactly or the whole request is rejected with
//     ErrUnknownPriorWord.
//
// Report format
//
//	<covered> is the count of distinct board letters the chain uses.
//	<total> is the raw sum of the four side-string lengths, duplicate
//	letters included — it mirrors the input for display and plays no part
//	in the search, so covered == total only on a duplicate-free board.
//
// Logging
//
//	One debug event per entry-point call via zerolog. The package logger
//	discards everything by default; embedding programs call SetLogger to
//	observe events. A library never writes to stderr on its own.
//
// Errors
//
//   - ErrUnknownPriorWord: a Resume token is absent from the built-in
//     list. The request aborts; nothing is skipped or retried.
package report
