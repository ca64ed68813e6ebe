package parser

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerTokens(t *testing.T) {
	got := Tokens("x264 1080p 2020")

	want := []Token{
		{Category: CategoryVideoCodec, Value: H264, Text: "x264", Start: 0, End: 4},
		{Category: CategoryVideoResolution, Value: R1080P, Text: "1080p", Start: 5, End: 10},
		{Category: CategoryYear, Value: 2020, Text: "2020", Start: 11, End: 15},
	}
	assert.Equal(t, want, got)
}

func TestLexerSkipsMultibyteRunes(t *testing.T) {
	got := Tokens("★x264")
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Start)
	assert.Equal(t, "x264", got[0].Text)
}

func TestLexerEmpty(t *testing.T) {
	l := NewLexer(DefaultTable(), "")
	_, ok := l.Next()
	assert.False(t, ok)
	assert.Empty(t, Tokens(""))
}

func TestLexerSingleUse(t *testing.T) {
	l := NewLexer(DefaultTable(), "x264.1080p")

	first := 0
	for range l.All() {
		first++
	}
	assert.Equal(t, 2, first)

	second := 0
	for range l.All() {
		second++
	}
	assert.Equal(t, 0, second)
}

func TestLexerStopsWhenYieldReturnsFalse(t *testing.T) {
	l := NewLexer(DefaultTable(), "x264.1080p.bluray")
	for tok := range l.All() {
		assert.Equal(t, CategoryVideoCodec, tok.Category)
		break
	}

	tok, ok := l.Next()
	require.True(t, ok)
	assert.Equal(t, CategoryVideoResolution, tok.Category)
}

func TestLexerAudioChannelsKeepsText(t *testing.T) {
	got := Tokens("dts 7 1")
	require.Len(t, got, 2)
	assert.Equal(t, CategoryAudioChannels, got[1].Category)
	assert.Equal(t, "7 1", got[1].Value)
}

func TestLexerBoundaries(t *testing.T) {
	tests := []struct {
		input string
		want  []Category
	}{
		{"hearts", nil},
		{"movie.ts", []Category{CategoryVideoSource}},
		{"dvd", []Category{CategoryVideoSource}},
		{"movie.dv.hevc", []Category{CategoryVideoColorRange, CategoryVideoCodec}},
		{"adv", nil},
		{"x1999", nil},
		{"(1999)", []Category{CategoryYear}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got []Category
			for _, tok := range Tokens(tt.input) {
				got = append(got, tok.Category)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTableFirstDeclaredRuleWins(t *testing.T) {
	resolution := Rule{Category: CategoryVideoResolution, Pattern: `1080p?`, Build: is(R1080P)}
	number := Rule{Category: CategoryYear, Pattern: `\d+`, Build: func(g []string) (any, error) { return strconv.Atoi(g[0]) }}

	t.Run("shorter earlier rule beats longer later rule", func(t *testing.T) {
		table, err := NewTable(resolution, number)
		require.NoError(t, err)

		got := table.Tokens("10800")
		require.Len(t, got, 2)
		assert.Equal(t, R1080P, got[0].Value)
		assert.Equal(t, "1080", got[0].Text)
		assert.Equal(t, 0, got[1].Value)
	})

	t.Run("reordering changes the output", func(t *testing.T) {
		table, err := NewTable(number, resolution)
		require.NoError(t, err)

		got := table.Tokens("10800")
		require.Len(t, got, 1)
		assert.Equal(t, 10800, got[0].Value)
	})
}

func TestTableEightBitBeforeResolution(t *testing.T) {
	bits := Rule{Category: CategoryVideoColorRange, Pattern: `8[\W_]?bits?`, Build: is(C8Bit)}
	res := Rule{Category: CategoryVideoResolution, Pattern: `\d+[\W_]?[a-z]*`, Build: is(R480P)}

	table, err := NewTable(bits, res)
	require.NoError(t, err)
	md := table.Parse("8bit")
	assert.Equal(t, ptr(C8Bit), md.ColorRange)
	assert.Nil(t, md.VideoResolution)

	table, err = NewTable(res, bits)
	require.NoError(t, err)
	md = table.Parse("8bit")
	assert.Nil(t, md.ColorRange)
	assert.Equal(t, ptr(R480P), md.VideoResolution)
}

func TestTableBuildFailureSkipsSpan(t *testing.T) {
	year := Rule{Category: CategoryYear, Pattern: `\d+`, Build: buildYear}
	table, err := NewTable(year)
	require.NoError(t, err)

	// the overflowing run is skipped whole so its trailing digits are not re-read
	got := table.Tokens("99999999999999999999999 12")
	require.Len(t, got, 1)
	assert.Equal(t, 12, got[0].Value)
	assert.Equal(t, 24, got[0].Start)
}

func TestNewTableInvalidPattern(t *testing.T) {
	_, err := NewTable(Rule{Category: CategoryYear, Pattern: `(`})
	assert.Error(t, err)
}

func TestDefaultTableIsShared(t *testing.T) {
	assert.Same(t, DefaultTable(), DefaultTable())
	assert.NotEmpty(t, DefaultTable().Rules())
}

func TestDefaultRulesCategoryOrder(t *testing.T) {
	last := CategoryVideoCodec
	for _, r := range DefaultTable().Rules() {
		assert.GreaterOrEqual(t, r.Category, last, r.Pattern)
		last = r.Category
	}
}
