package solver

import (
	"math/bits"
	"sort"

	"github.com/katalvlaran/letterbox/board"
)

// coverSet is a bitset over board letter positions (see board.Index).
// Sets from the same board always share a length, so operations never
// reallocate.
type coverSet []uint64

const coverWordBits = 64

// newCoverSet returns an empty set sized for n letter positions.
func newCoverSet(n int) coverSet {
	return make(coverSet, (n+coverWordBits-1)/coverWordBits)
}

// fullCoverSet returns the set with every position in [0, n) present.
func fullCoverSet(n int) coverSet {
	s := newCoverSet(n)
	for i := 0; i < n; i++ {
		s.set(i)
	}

	return s
}

// set adds position i.
func (s coverSet) set(i int) {
	s[i/coverWordBits] |= 1 << (i % coverWordBits)
}

// or folds t into s in place.
func (s coverSet) or(t coverSet) {
	for i := range s {
		s[i] |= t[i]
	}
}

// covers reports whether every position of t is already present in s.
func (s coverSet) covers(t coverSet) bool {
	for i := range s {
		if t[i]&^s[i] != 0 {
			return false
		}
	}

	return true
}

// equal reports whether s and t hold exactly the same positions.
func (s coverSet) equal(t coverSet) bool {
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}

	return true
}

// count returns the number of positions present.
func (s coverSet) count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}

	return n
}

// clone returns an independent copy of s.
func (s coverSet) clone() coverSet {
	out := make(coverSet, len(s))
	copy(out, s)

	return out
}

// transitions is the per-solve index of the word list: which eligible
// words lead from one letter to another, plus the coverage mask of every
// word. Built once per Solve call and never mutated during search.
type transitions struct {
	// routes[start][end] lists eligible word indices whose first letter is
	// start and last letter is end, ordered by (word text, index).
	routes map[rune]map[rune][]int

	// starts holds the route start letters, ascending.
	starts []rune

	// ends[start] holds the end letters reachable from start, ascending.
	ends map[rune][]rune

	// masks[i] is the board-letter coverage of words[i]. Masks exist for
	// every word, eligible or not, so prior chains can be seeded from
	// words the board would normally reject.
	masks []coverSet
}

// newTransitions filters words through b.Eligible and indexes the
// survivors by their first and last letters.
func newTransitions(b *board.Board, words []string) *transitions {
	t := &transitions{
		routes: make(map[rune]map[rune][]int),
		ends:   make(map[rune][]rune),
		masks:  make([]coverSet, len(words)),
	}

	n := b.LetterCount()
	eligible := make([]int, 0, len(words))
	for i, w := range words {
		m := newCoverSet(n)
		for _, r := range w {
			if pos, ok := b.Index(r); ok {
				m.set(pos)
			}
		}
		t.masks[i] = m
		if b.Eligible(w) {
			eligible = append(eligible, i)
		}
	}

	// Deterministic bucket order: word text first, list position second.
	sort.Slice(eligible, func(x, y int) bool {
		if words[eligible[x]] != words[eligible[y]] {
			return words[eligible[x]] < words[eligible[y]]
		}

		return eligible[x] < eligible[y]
	})
	for _, i := range eligible {
		rs := []rune(words[i])
		first, last := rs[0], rs[len(rs)-1]
		bucket, ok := t.routes[first]
		if !ok {
			bucket = make(map[rune][]int)
			t.routes[first] = bucket
		}
		bucket[last] = append(bucket[last], i)
	}

	for first, bucket := range t.routes {
		t.starts = append(t.starts, first)
		ends := make([]rune, 0, len(bucket))
		for last := range bucket {
			ends = append(ends, last)
		}
		sort.Slice(ends, func(x, y int) bool { return ends[x] < ends[y] })
		t.ends[first] = ends
	}
	sort.Slice(t.starts, func(x, y int) bool { return t.starts[x] < t.starts[y] })

	return t
}
