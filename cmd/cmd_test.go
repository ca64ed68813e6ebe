package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/kasuboski/vfp/pkg/library"
	"github.com/kasuboski/vfp/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadNames(t *testing.T) {
	t.Run("args win over stdin", func(t *testing.T) {
		var got []string
		err := readNames(strings.NewReader("ignored\n"), []string{"a", "b"}, func(s string) error {
			got = append(got, s)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("stdin lines", func(t *testing.T) {
		var got []string
		err := readNames(strings.NewReader("one\n\n  two  \n"), nil, func(s string) error {
			got = append(got, s)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, got)
	})

	t.Run("stops on error", func(t *testing.T) {
		wantErr := errors.New("stop")
		calls := 0
		err := readNames(nil, []string{"a", "b"}, func(string) error {
			calls++
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 1, calls)
	})
}

func TestWriteScanTable(t *testing.T) {
	var buf bytes.Buffer
	writeScanTable(&buf, []library.ParsedFile{
		{
			Path:      "tv/Show.S01E02.720p.mkv",
			SizeHuman: "2.0 KiB",
			Metadata:  parser.Parse("Show.S01E02.720p.mkv"),
		},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "PATH"))
	assert.Equal(t, []string{"tv/Show.S01E02.720p.mkv", "2.0", "KiB", "-", "R720P", "-", "-", "-", "S01E02"}, strings.Fields(lines[1]))
}

func TestPrintTokens(t *testing.T) {
	var buf bytes.Buffer
	printTokens(&buf, parser.Tokens("x265"))
	assert.Equal(t, "# VideoCodec(H265) \"x265\" [0:4]\n", buf.String())
}
