package report_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/letterbox/report"
)

func TestSolve_FullCoverageReport(t *testing.T) {
	got := report.Solve("OAL", "NUK", "CET", "RPI", 3)
	want := "12/12 CAPTURE ELK KOINE\n\n" +
		"12/12 TONIC CAPTURE ELK\n\n"
	assert.Equal(t, want, got)
}

func TestSolve_FallbackReport(t *testing.T) {
	// No two-word chain covers this board; the single best partial chain
	// is reported instead of nothing.
	got := report.Solve("RTF", "USY", "HIA", "OEB", 2)
	assert.Equal(t, "10/12 AUTHORS SATISFY\n\n", got)
}

func TestSolve_ResumableBoardDeeper(t *testing.T) {
	got := report.Solve("ELZ", "IVA", "RYU", "CTH", 4)
	want := "12/12 VEHICULAR RITZILY\n\n" +
		"12/12 VEHICULAR RITZY\n\n" +
		"12/12 REV VEHICULAR RITZILY\n\n" +
		"12/12 REV VEHICULAR RITZY\n\n"
	assert.Equal(t, want, got)
}

func TestSolveWithDict_CustomList(t *testing.T) {
	// Duplicate letters across sides: twelve raw side characters but only
	// six distinct letters, so the denominator stays at twelve while a
	// full cover scores six.
	got := report.SolveWithDict("ABC", "ABC", "DEF", "DEF", 1, "ADBECF")
	assert.Equal(t, "6/12 ADBECF\n\n", got)
}

func TestSolveWithDict_EmptyDictionary(t *testing.T) {
	got := report.SolveWithDict("OAL", "NUK", "CET", "RPI", 3, "")
	assert.Equal(t, "0/12\n\n", got, "no eligible words still yields the fallback line")
}

func TestResume_SinglePrior(t *testing.T) {
	got, err := report.Resume("RTF", "USY", "HIA", "OEB", "STATUTORY", 2)
	require.NoError(t, err)
	assert.Equal(t, "9/12 STATUTORY YETI\n\n", got)
}

func TestResume_MultiplePriors(t *testing.T) {
	got, err := report.Resume("RTF", "USY", "HIA", "OEB", "STATUTORY YOUTH", 3)
	require.NoError(t, err)
	assert.Equal(t, "10/12 STATUTORY YOUTH HUBRIS\n\n", got)
}

func TestResume_EmptyPriorMatchesSolve(t *testing.T) {
	got, err := report.Resume("OAL", "NUK", "CET", "RPI", "", 3)
	require.NoError(t, err)
	assert.Equal(t, report.Solve("OAL", "NUK", "CET", "RPI", 3), got)
}

func TestResume_UnknownPriorWordAborts(t *testing.T) {
	got, err := report.Resume("RTF", "USY", "HIA", "OEB", "STATUTORY NOPE", 2)
	assert.Empty(t, got)
	require.ErrorIs(t, err, report.ErrUnknownPriorWord)
	assert.Contains(t, err.Error(), `"NOPE"`)
}

func TestResume_CaseSensitiveLookup(t *testing.T) {
	_, err := report.Resume("RTF", "USY", "HIA", "OEB", "statutory", 2)
	assert.ErrorIs(t, err, report.ErrUnknownPriorWord)
}

func TestSetLogger_ObservesSolveEvents(t *testing.T) {
	var buf bytes.Buffer
	report.SetLogger(zerolog.New(&buf))
	defer report.SetLogger(zerolog.Nop())

	report.Solve("OAL", "NUK", "CET", "RPI", 3)
	assert.Contains(t, buf.String(), "report: solve")
	assert.Contains(t, buf.String(), "OAL/NUK/CET/RPI")
}
