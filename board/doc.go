// Package board models a Letter Boxed puzzle board: the letters that must
// be covered and the same-side letter pairs that may never appear
// consecutively inside a word.
//
// What
//
//   - New builds a Board from the puzzle's side strings. Every ordered pair
//     of letters drawn from one side (a letter paired with itself included)
//     becomes a forbidden adjacency; the union of all side letters becomes
//     the coverage target.
//   - Eligible reports whether a word can be played on the board at all:
//     at least three letters, every letter on the board, no consecutive
//     forbidden pair.
//   - Validate certifies that a chain of words is legal: consecutive words
//     link last-letter to first-letter, and no word contains a forbidden
//     pair. Validate deliberately does not check coverage — legality and
//     completeness are separate questions.
//
// Why
//
//   - The Board is the single source of truth both for the search engine
//     (which filters candidate words through Eligible) and for independent
//     verification of any proposed answer (Validate).
//
// Determinism
//
//	Letters() returns the coverage target in ascending order, and Index
//	assigns each letter a stable position in that order, so downstream
//	consumers iterate the board identically on every run.
//
// Input handling
//
//	New never fails. Empty sides, duplicated letters, or a side count other
//	than four simply produce the board those characters describe; degenerate
//	boards yield degenerate (but well-defined) eligibility and validation.
//
// Complexity (S = side count, L = letters per side, W = word length)
//
//   - New:      O(S·L²)
//   - Eligible: O(W)
//   - Validate: O(total chain length)
package board
