package board

import "sort"

// MinWordLen is the shortest word length playable on any board.
const MinWordLen = 3

// Board is an immutable model of one puzzle: the forbidden same-side
// adjacencies and the set of letters a full solution must cover.
// Construct with New; a Board is fully determined by its sides and is
// safe for concurrent readers.
type Board struct {
	// forbidden holds every ordered same-side pair, self-pairs included.
	forbidden map[[2]rune]struct{}
	// letters is the coverage target, ascending.
	letters []rune
	// index maps each board letter to its position in letters.
	index map[rune]int
}

// New builds a Board from the puzzle's side strings.
// Any input is accepted: the board is derived from whatever characters the
// sides carry, and side order does not affect the result.
func New(sides ...string) *Board {
	b := &Board{
		forbidden: make(map[[2]rune]struct{}),
		index:     make(map[rune]int),
	}
	seen := make(map[rune]struct{})
	for _, side := range sides {
		rs := []rune(side)
		for _, a := range rs {
			for _, c := range rs {
				b.forbidden[[2]rune{a, c}] = struct{}{}
			}
			seen[a] = struct{}{}
		}
	}
	b.letters = make([]rune, 0, len(seen))
	for r := range seen {
		b.letters = append(b.letters, r)
	}
	sort.Slice(b.letters, func(i, j int) bool { return b.letters[i] < b.letters[j] })
	for i, r := range b.letters {
		b.index[r] = i
	}

	return b
}

// Letters returns the coverage target in ascending order.
// The returned slice is a copy; callers may mutate it freely.
func (b *Board) Letters() []rune {
	out := make([]rune, len(b.letters))
	copy(out, b.letters)

	return out
}

// LetterCount returns the number of distinct letters on the board.
func (b *Board) LetterCount() int {
	return len(b.letters)
}

// Has reports whether r appears on any side of the board.
func (b *Board) Has(r rune) bool {
	_, ok := b.index[r]

	return ok
}

// Index returns the stable position of r within Letters, and whether r is
// a board letter at all. Positions are dense in [0, LetterCount).
func (b *Board) Index(r rune) (int, bool) {
	i, ok := b.index[r]

	return i, ok
}

// Forbidden reports whether a and c sit on the same side and therefore may
// never be consecutive within a word. Symmetric; Forbidden(r, r) is true
// for every board letter.
func (b *Board) Forbidden(a, c rune) bool {
	_, ok := b.forbidden[[2]rune{a, c}]

	return ok
}

// Eligible reports whether word can be played on this board:
// at least MinWordLen letters, every letter on the board, and no
// consecutive pair forbidden.
func (b *Board) Eligible(word string) bool {
	rs := []rune(word)
	if len(rs) < MinWordLen {
		return false
	}
	for i, r := range rs {
		if _, ok := b.index[r]; !ok {
			return false
		}
		if i > 0 && b.Forbidden(rs[i-1], r) {
			return false
		}
	}

	return true
}
