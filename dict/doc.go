// Package dict ships the built-in word list as an embedded asset with an
// explicit, read-only lifecycle.
//
// What
//
//   - Words returns the list in its embedded order: newline-separated
//     uppercase words, ascending, compiled into the binary.
//   - Index resolves a word to its list position by exact, case-sensitive
//     match; this is how an already-played word is pinned to one entry.
//   - Len reports the list size.
//
// Why
//
//   - The solver resolves prior words and breaks result ties by list
//     position, so every consumer must see the identical ordered list.
//     Embedding at compile time plus a once-only parse guarantees that.
//
// Lifecycle
//
//	The list is parsed on first use and never again; there is no lazy
//	global that can observe a half-built state. Words returns the shared
//	backing slice — callers must treat it as read-only.
//
// Complexity
//
//   - First call:        O(list size) parse.
//   - Words, Len:        O(1) afterwards.
//   - Index:             O(1) map lookup.
package dict
