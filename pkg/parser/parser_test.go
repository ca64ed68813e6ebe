package parser

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Metadata
	}{
		{
			name:  "spaces with dts-hd",
			input: "Tenet 2020 2160p UHD Webdl DTS-HD MA 5.1 x265-LEGi0N",
			want: Metadata{
				VideoCodec:      ptr(H265),
				VideoResolution: ptr(R2160P),
				Source:          ptr(Webdl),
				AudioCodec:      ptr(DTSHD),
				AudioChannels:   ptr("5.1"),
				Year:            ptr(2020),
			},
		},
		{
			name:  "dots with dd5.1",
			input: "Tenet.2020.2160p.UHD.Webdl.dd5.1.x265-LEGi0N",
			want: Metadata{
				VideoCodec:      ptr(H265),
				VideoResolution: ptr(R2160P),
				Source:          ptr(Webdl),
				AudioCodec:      ptr(DD51),
				Year:            ptr(2020),
			},
		},
		{
			name:  "season pack",
			input: "Sons.of.Anarchy.S03.720p.BluRay.CLUEREWARD",
			want: Metadata{
				VideoResolution: ptr(R720P),
				Source:          ptr(BluRay),
				Season:          ptr(3),
			},
		},
		{
			name:  "empty",
			input: "",
			want:  Metadata{},
		},
		{
			name:  "later resolution wins",
			input: "Movie.720p.HDTV.1080p.x264",
			want: Metadata{
				VideoCodec:      ptr(H264),
				VideoResolution: ptr(R1080P),
				Source:          ptr(HDTV),
			},
		},
		{
			name:  "bluray with dolby vision",
			input: "Tenet 2020 2160p UHD BluRay DTS-HD MA 5.1 DV x265-LEGi0N",
			want: Metadata{
				VideoCodec:      ptr(H265),
				VideoResolution: ptr(R2160P),
				Source:          ptr(BluRay),
				ColorRange:      ptr(DolbyVision),
				AudioCodec:      ptr(DTSHD),
				AudioChannels:   ptr("5.1"),
				Year:            ptr(2020),
			},
		},
		{
			name:  "fansub brackets",
			input: "[TaigaSubs]_Toradora!_(2008)_-_01v2_-_Tiger_and_Dragon[1920x1080_H.265_FLAC_5.1_blu-ray][1234ABCD].mkv",
			want: Metadata{
				VideoCodec:      ptr(H265),
				VideoResolution: ptr(R1080P),
				Source:          ptr(BluRay),
				AudioCodec:      ptr(FLAC),
				AudioChannels:   ptr("5.1"),
				Year:            ptr(2008),
			},
		},
		{
			name:  "episode with dd+",
			input: "The.Office.S05E10.720p.WEB-DL.DD+5.1.H.264",
			want: Metadata{
				VideoCodec:      ptr(H264),
				VideoResolution: ptr(R720P),
				Source:          ptr(Webdl),
				AudioCodec:      ptr(DDPLUS51),
				Season:          ptr(5),
				Episode:         ptr(10),
			},
		},
		{
			name:  "later color range wins",
			input: "Movie.2019.1080p.BluRay.10bit.HDR10+.TrueHD.7.1.Atmos-GRP",
			want: Metadata{
				VideoResolution: ptr(R1080P),
				Source:          ptr(BluRay),
				ColorRange:      ptr(HDRplus),
				AudioCodec:      ptr(TRUEHD),
				AudioChannels:   ptr("7.1"),
				Year:            ptr(2019),
			},
		},
		{
			name:  "cross episode marker",
			input: "Some.Show.2x05.HDTV.XviD",
			want: Metadata{
				VideoCodec: ptr(Xvid),
				Source:     ptr(HDTV),
				Season:     ptr(2),
				Episode:    ptr(5),
			},
		},
		{
			name:  "episode keyword",
			input: "Show.Episode.12.PDTV",
			want: Metadata{
				Source:  ptr(SDTV),
				Episode: ptr(12),
			},
		},
		{
			name:  "episode number overflow is dropped",
			input: "Show.Episode.99999999999999999999999.720p",
			want: Metadata{
				VideoResolution: ptr(R720P),
			},
		},
		{
			name:  "year glued to a word",
			input: "Movie2020",
			want:  Metadata{},
		},
		{
			name:  "hdrip is a source not a color range",
			input: "Movie.HDRip.XviD.MP3",
			want: Metadata{
				VideoCodec: ptr(Xvid),
				Source:     ptr(HDRip),
				AudioCodec: ptr(MP3),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)

			want := tt.want
			want.FileName = tt.input
			want.Title = strings.ToLower(tt.input)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseKeepsOriginalFileName(t *testing.T) {
	got := Parse("Tenet.2020.2160p")
	assert.Equal(t, "Tenet.2020.2160p", got.FileName)
	assert.Equal(t, "tenet.2020.2160p", got.Title)
}

func TestParseDeterministic(t *testing.T) {
	for _, name := range readFilenames(t) {
		assert.Equal(t, Parse(name), Parse(name), name)
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	for _, name := range readFilenames(t) {
		lower := Parse(name)
		upper := Parse(strings.ToUpper(name))

		lower.Title, lower.FileName = "", ""
		upper.Title, upper.FileName = "", ""
		assert.Equal(t, lower, upper, name)
	}
}

func TestParseRobust(t *testing.T) {
	inputs := []string{
		"!!!@@@###$$$%%%",
		"🎬🍿 movie 🎥",
		"\x00\x01\x02",
		"...---___   ",
		"日本語のタイトル.2021.1080p",
		strings.Repeat("x", 10_000),
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			md := Parse(in)
			assert.Equal(t, in, md.FileName)
		})
	}

	md := Parse("日本語のタイトル.2021.1080p")
	assert.Equal(t, ptr(2021), md.Year)
	assert.Equal(t, ptr(R1080P), md.VideoResolution)
}

func TestParseAbsentCategories(t *testing.T) {
	md := Parse("Just.A.Plain.Name")
	assert.Nil(t, md.VideoCodec)
	assert.Nil(t, md.VideoResolution)
	assert.Nil(t, md.Source)
	assert.Nil(t, md.ColorRange)
	assert.Nil(t, md.AudioCodec)
	assert.Nil(t, md.AudioChannels)
	assert.Nil(t, md.Year)
	assert.Nil(t, md.Season)
	assert.Nil(t, md.Episode)
}

func TestParseConcurrent(t *testing.T) {
	names := readFilenames(t)
	want := make([]Metadata, len(names))
	for i, n := range names {
		want[i] = Parse(n)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, n := range names {
				assert.Equal(t, want[i], Parse(n))
			}
		}()
	}
	wg.Wait()
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Tenet.2020.2160P", "tenet.2020.2160p"},
		{"already lower", "already lower"},
		{"ÀÉÎ", "àéî"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got))
		})
	}
}

func TestParseSnapshots(t *testing.T) {
	for _, name := range readFilenames(t) {
		t.Run(name, func(t *testing.T) {
			snaps.MatchJSON(t, Parse(name))
		})
	}
}

func readFilenames(t *testing.T) []string {
	t.Helper()

	f, err := os.Open("./testing/filenames.txt")
	require.NoError(t, err)
	defer f.Close()

	names := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	require.NoError(t, scanner.Err())

	return names
}

func TestTokens(t *testing.T) {
	tokens := Tokens("Show.S01E02.720p")
	require.Len(t, tokens, 2)

	assert.Equal(t, CategoryEpisode, tokens[0].Category)
	assert.Equal(t, "s01e02", tokens[0].Text)
	assert.Equal(t, Episode{Season: ptr(1), Episode: ptr(2)}, tokens[0].Value)

	assert.Equal(t, CategoryVideoResolution, tokens[1].Category)
	assert.Equal(t, R720P, tokens[1].Value)
	assert.Equal(t, 12, tokens[1].Start)
	assert.Equal(t, 16, tokens[1].End)
}
