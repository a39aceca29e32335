package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	c := Default()
	require.Equal(t, 68, c.Wrap)
	require.Equal(t, EncUTF8, c.CharEncoding)
	require.Equal(t, DoctypeAuto, c.DoctypeMode)
}

func TestNewAppliesOptionsOverDefaults(t *testing.T) {
	c := New(WithWrap(0), WithXHTMLOut(), WithMakeClean())
	require.Equal(t, 0, c.Wrap)
	require.True(t, c.XHTMLOut)
	require.False(t, c.HTMLOut)
	require.True(t, c.MakeClean)
}

func TestSnapshotRestoreRoundtrips(t *testing.T) {
	c := New()
	c.NewInlineTags = []string{"marquee-ext"}
	snap := c.Snapshot()

	c.Wrap = 999
	c.NewInlineTags = append(c.NewInlineTags, "later-change")

	c.Restore(snap)
	require.Equal(t, 68, c.Wrap)
	require.Equal(t, []string{"marquee-ext"}, c.NewInlineTags)
}

func TestResetToDefaultDropsOverrides(t *testing.T) {
	c := New(WithWrap(120))
	c.ResetToDefault()
	require.Equal(t, 68, c.Wrap)
}

func TestSnapshotIsIndependentOfSliceMutation(t *testing.T) {
	c := New()
	c.NewEmptyTags = []string{"custom-void"}
	snap := c.Snapshot()

	c.NewEmptyTags[0] = "mutated"
	require.Equal(t, "custom-void", snap.NewEmptyTags[0])
}
