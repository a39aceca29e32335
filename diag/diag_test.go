package diag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportMessageFormatting(t *testing.T) {
	r := New(MissingEndtagBefore, 3, 5, "p", "div")
	require.Equal(t, Warning, r.Level)
	require.Equal(t, "missing </p> before <div>", r.Message())
}

func TestReportMessageNoArgs(t *testing.T) {
	r := New(SuspectedMissingQuote, 1, 1)
	require.Equal(t, "suspected missing quote mark for attribute value", r.Message())
}

func TestUnknownCodeFallsBackToCodeString(t *testing.T) {
	r := Report{Code: Code("MADE_UP"), Line: 1, Column: 1}
	require.Equal(t, "MADE_UP", r.Message())
}

func TestLevelOfMatchesTaxonomy(t *testing.T) {
	require.Equal(t, Error, LevelOf(UnknownElement))
	require.Equal(t, Fatal, LevelOf(NodeIntegrityFailure))
	require.Equal(t, Info, LevelOf(DoctypeDetected))
}

func TestCountingSinkTallies(t *testing.T) {
	var forwarded []Report
	cs := NewCountingSink(SinkFunc(func(r Report) { forwarded = append(forwarded, r) }))

	cs.Emit(New(MissingEndtagBefore, 1, 1, "p", "div")) // Warning
	cs.Emit(New(UnknownElement, 2, 1, "blink"))         // Error
	cs.Emit(New(DoctypeDetected, 0, 0, "html4-strict")) // Info
	cs.Emit(New(UnknownOption, 0, 0, "frobnicate"))     // Config

	snap := cs.Snapshot()
	require.Equal(t, 1, snap.Warnings)
	require.Equal(t, 1, snap.Errors)
	require.Equal(t, 1, snap.Info)
	require.Equal(t, 1, snap.Config)
	require.Len(t, forwarded, 4)
}

func TestExitCodePolicy(t *testing.T) {
	require.Equal(t, 0, Counters{}.ExitCode())
	require.Equal(t, 1, Counters{Warnings: 1}.ExitCode())
	require.Equal(t, 2, Counters{Errors: 1, Warnings: 3}.ExitCode())
}

func TestDiscardSinkDropsReports(t *testing.T) {
	var s DiscardSink
	s.Emit(New(MalformedComment, 1, 1))
}
