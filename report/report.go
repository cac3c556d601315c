package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/letterbox/board"
	"github.com/katalvlaran/letterbox/dict"
	"github.com/katalvlaran/letterbox/solver"
)

// ErrUnknownPriorWord is returned by Resume when a prior word has no
// exact, case-sensitive match in the built-in list. The whole request is
// aborted: silently dropping the word would corrupt the coverage and
// chaining state the search resumes from.
var ErrUnknownPriorWord = errors.New("report: unknown prior word")

// logger receives one debug event per entry-point call; silent by default.
var logger = zerolog.Nop()

// SetLogger directs the package's diagnostic events to l.
func SetLogger(l zerolog.Logger) { logger = l }

// Solve searches the board formed by the four sides against the built-in
// word list, allowing chains of up to depth words, and renders the
// results as a text report.
func Solve(side1, side2, side3, side4 string, depth int) string {
	return run(side1, side2, side3, side4, depth, dict.Words(), nil)
}

// SolveWithDict is Solve against a caller-supplied dictionary: a single
// string of candidate words split on ASCII whitespace, in order.
func SolveWithDict(side1, side2, side3, side4 string, depth int, dictionary string) string {
	return run(side1, side2, side3, side4, depth, strings.Fields(dictionary), nil)
}

// Resume extends a chain already played. priorWords holds the played
// words separated by whitespace, in play order; every token must exactly
// match a built-in list entry or the call fails with ErrUnknownPriorWord.
// depth bounds the total chain length, prior words included.
func Resume(side1, side2, side3, side4, priorWords string, depth int) (string, error) {
	tokens := strings.Fields(priorWords)
	prior := make([]int, 0, len(tokens))
	for _, w := range tokens {
		idx, ok := dict.Index(w)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownPriorWord, w)
		}
		prior = append(prior, idx)
	}

	return run(side1, side2, side3, side4, depth, dict.Words(), prior), nil
}

// run performs one solve and renders its report.
func run(side1, side2, side3, side4 string, depth int, words []string, prior []int) string {
	b := board.New(side1, side2, side3, side4)
	var opts []solver.Option
	if len(prior) > 0 {
		opts = append(opts, solver.WithPriorWords(prior...))
	}
	results, err := solver.Solve(b, words, depth, opts...)
	if err != nil {
		// Unreachable: the board is non-nil, options are well-formed and
		// every prior index came from dict.Index.
		return ""
	}
	logger.Debug().
		Str("sides", side1+"/"+side2+"/"+side3+"/"+side4).
		Int("depth", depth).
		Int("results", len(results)).
		Msg("report: solve")

	// The denominator is the raw side length sum, duplicates included;
	// display-only, never consulted by the search.
	return render(results, len(side1)+len(side2)+len(side3)+len(side4))
}

// render formats one line per result, "<covered>/<total> <words...>",
// each followed by a blank line.
func render(results []solver.Result, total int) string {
	var sb strings.Builder
	for _, res := range results {
		sb.WriteString(strconv.Itoa(res.Covered))
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(total))
		for _, w := range res.Words {
			sb.WriteByte(' ')
			sb.WriteString(w)
		}
		sb.WriteString("\n\n")
	}

	return sb.String()
}
