package source

import (
	"strings"
	"testing"

	"github.com/htmltidy/gotidy/config"
	"github.com/htmltidy/gotidy/diag"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T, input string) *Source {
	t.Helper()
	s, err := New(strings.NewReader(input), config.Default(), diag.DiscardSink{})
	require.NoError(t, err)
	return s
}

func TestReadCharPlainASCII(t *testing.T) {
	s := newTestSource(t, "ab")
	require.Equal(t, 'a', s.ReadChar())
	require.Equal(t, 'b', s.ReadChar())
	require.Equal(t, EOF, s.ReadChar())
}

func TestNewlineNormalization(t *testing.T) {
	s := newTestSource(t, "a\r\nb\rc\nd")
	var out []rune
	for {
		c := s.ReadChar()
		if c == EOF {
			break
		}
		out = append(out, c)
	}
	require.Equal(t, []rune("a\nb\nc\nd"), out)
}

func TestTabExpansion(t *testing.T) {
	s := newTestSource(t, "a\tb")
	require.Equal(t, 'a', s.ReadChar())
	// tab-size default is 4; column after 'a' is 2, so expand to column 5.
	require.Equal(t, ' ', s.ReadChar())
	require.Equal(t, ' ', s.ReadChar())
	require.Equal(t, ' ', s.ReadChar())
	require.Equal(t, 'b', s.ReadChar())
}

func TestUngetCharReplaysCharacter(t *testing.T) {
	s := newTestSource(t, "xy")
	c := s.ReadChar()
	require.Equal(t, 'x', c)
	s.UngetChar(c)
	require.Equal(t, 'x', s.ReadChar())
	require.Equal(t, 'y', s.ReadChar())
}

func TestAtEOF(t *testing.T) {
	s := newTestSource(t, "z")
	require.False(t, s.AtEOF())
	s.ReadChar()
	require.True(t, s.AtEOF())
}

func TestBOMDetectionUTF8(t *testing.T) {
	data := string([]byte{0xEF, 0xBB, 0xBF}) + "hi"
	s := newTestSource(t, data)
	require.True(t, s.BOMSeen())
	require.Equal(t, 'h', s.ReadChar())
	require.Equal(t, 'i', s.ReadChar())
}

func TestPosTracksLineAndColumn(t *testing.T) {
	s := newTestSource(t, "ab\ncd")
	line, col := s.Pos()
	require.Equal(t, 1, line)
	require.Equal(t, 1, col)
	s.ReadChar()
	s.ReadChar()
	s.ReadChar() // consumes the newline
	line, col = s.Pos()
	require.Equal(t, 2, line)
	require.Equal(t, 1, col)
}
