package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/letterbox/board"
)

// sides of the puzzle used throughout: OAL / NUK / CET / RPI.
func newBoard() *board.Board {
	return board.New("OAL", "NUK", "CET", "RPI")
}

func TestNew_LettersSortedDistinct(t *testing.T) {
	b := newBoard()
	assert.Equal(t, 12, b.LetterCount())
	assert.Equal(t, "ACEIKLNOPRTU", string(b.Letters()))
}

func TestNew_DuplicateLettersAcrossSides(t *testing.T) {
	b := board.New("ABC", "CDE")
	assert.Equal(t, 5, b.LetterCount())
	assert.Equal(t, "ABCDE", string(b.Letters()))
}

func TestNew_SideOrderIrrelevant(t *testing.T) {
	a := board.New("OAL", "NUK", "CET", "RPI")
	b := board.New("RPI", "CET", "NUK", "OAL")
	assert.Equal(t, a.Letters(), b.Letters())
	assert.Equal(t, a.Forbidden('O', 'A'), b.Forbidden('O', 'A'))
	assert.Equal(t, a.Eligible("CAPTURE"), b.Eligible("CAPTURE"))
}

func TestNew_Degenerate(t *testing.T) {
	empty := board.New()
	assert.Equal(t, 0, empty.LetterCount())
	assert.False(t, empty.Eligible("CAT"))

	blank := board.New("", "", "", "")
	assert.Equal(t, 0, blank.LetterCount())
	assert.Empty(t, blank.Letters())
}

func TestForbidden_SameSidePairs(t *testing.T) {
	b := newBoard()
	// same side, both directions
	assert.True(t, b.Forbidden('O', 'A'))
	assert.True(t, b.Forbidden('A', 'O'))
	// self-pair
	assert.True(t, b.Forbidden('O', 'O'))
	// different sides
	assert.False(t, b.Forbidden('O', 'N'))
	// letters off the board are never forbidden
	assert.False(t, b.Forbidden('X', 'Y'))
}

func TestIndex_StablePositions(t *testing.T) {
	b := newBoard()
	// ascending letter order fixes the positions
	i, ok := b.Index('A')
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	i, ok = b.Index('U')
	assert.True(t, ok)
	assert.Equal(t, 11, i)

	assert.True(t, b.Has('K'))
	assert.False(t, b.Has('Z'))
	_, ok = b.Index('Z')
	assert.False(t, ok)
}

func TestEligible(t *testing.T) {
	b := newBoard()
	cases := []struct {
		word string
		want bool
	}{
		{"CAPTURE", true},
		{"ELK", true},
		{"KOINE", true},
		{"APT", true},
		{"AT", false},      // too short
		{"COLA", false},    // O and L share a side
		{"LOOP", false},    // O paired with itself
		{"CAB", false},     // B is not on the board
		{"capture", false}, // case-sensitive: lowercase is off the board
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, b.Eligible(tc.word), "word %q", tc.word)
	}
}

func TestValidate_LegalChains(t *testing.T) {
	b := newBoard()
	assert.True(t, b.Validate([]string{"CAPTURE", "ELK", "KOINE"}))
	assert.True(t, b.Validate([]string{"ELK"}))
	assert.True(t, b.Validate(nil), "empty chain is trivially legal")
}

func TestValidate_ChainBreak(t *testing.T) {
	b := newBoard()
	// CAPTURE ends in E, KOINE starts with K
	assert.False(t, b.Validate([]string{"CAPTURE", "KOINE"}))
}

func TestValidate_ForbiddenPairInsideWord(t *testing.T) {
	b := newBoard()
	// O-L sit on the same side
	assert.False(t, b.Validate([]string{"COLA"}))
	// the violating word may appear anywhere in the chain
	assert.False(t, b.Validate([]string{"ELK", "KOLA"}))
}

func TestValidate_LegalityNotEligibility(t *testing.T) {
	b := newBoard()
	// "AT" is too short to be Eligible, yet the chain is perfectly legal:
	// Validate certifies rules, not playability.
	assert.False(t, b.Eligible("AT"))
	assert.True(t, b.Validate([]string{"AT", "TAN"}))
	// letters off the board never form a same-side pair
	assert.True(t, b.Validate([]string{"XYZ"}))
}
