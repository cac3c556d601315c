package board

import "unicode/utf8"

// Validate certifies that chain is a legal play on this board, checking
// two independent rules and short-circuiting to false on the first
// violation:
//
//  1. Chaining: each word starts with the last letter of the word before it.
//  2. Adjacency: no word contains a consecutive forbidden (same-side) pair.
//
// Coverage is deliberately not checked: Validate answers "is this chain
// legal?", not "does it win?". An empty chain is trivially legal, and a
// single-word chain only has to satisfy the adjacency rule.
func (b *Board) Validate(chain []string) bool {
	// 1. Chaining between consecutive words.
	for i := 1; i < len(chain); i++ {
		last, _ := utf8.DecodeLastRuneInString(chain[i-1])
		first, _ := utf8.DecodeRuneInString(chain[i])
		if last != first {
			return false
		}
	}
	// 2. Adjacency inside every word.
	for _, w := range chain {
		rs := []rune(w)
		for i := 1; i < len(rs); i++ {
			if b.Forbidden(rs[i-1], rs[i]) {
				return false
			}
		}
	}

	return true
}
