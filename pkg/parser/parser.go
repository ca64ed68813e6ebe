// Package parser extracts release metadata such as codecs, resolution, source,
// year and episode from free form media filenames.
//
// Parsing is a pure function: the filename is lowercased, scanned by a Lexer
// against an ordered rule Table, and the resulting tokens are folded into a
// Metadata record where the last token of each category wins.
package parser

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Metadata is the result of parsing a filename. A nil field means nothing of that category was found.
type Metadata struct {
	// Title is the normalized filename, no title extraction is performed
	Title           string      `json:"title"`
	FileName        string      `json:"file_name"`
	VideoCodec      *VideoCodec `json:"video_codec,omitempty"`
	VideoResolution *Resolution `json:"video_resolution,omitempty"`
	Source          *Source     `json:"source,omitempty"`
	ColorRange      *ColorRange `json:"video_color_range,omitempty"`
	AudioCodec      *AudioCodec `json:"audio_codec,omitempty"`
	AudioChannels   *string     `json:"audio_channels,omitempty"`
	Year            *int        `json:"year,omitempty"`
	Season          *int        `json:"season,omitempty"`
	Episode         *int        `json:"episode,omitempty"`
}

// Normalize lowercases a filename for matching
func Normalize(filename string) string {
	// casers hold state and can't be shared between goroutines
	return cases.Lower(language.Und).String(filename)
}

// Parse parses filename with the default table
func Parse(filename string) Metadata {
	return DefaultTable().Parse(filename)
}

// Tokens returns every token found in filename with the default table
func Tokens(filename string) []Token {
	return DefaultTable().Tokens(filename)
}

// Parse normalizes filename, tokenizes it and reduces the tokens into Metadata
func (t *Table) Parse(filename string) Metadata {
	normalized := Normalize(filename)
	md := Metadata{
		Title:    normalized,
		FileName: filename,
	}

	for tok := range NewLexer(t, normalized).All() {
		md.apply(tok)
	}

	return md
}

// Tokens lists the tokens found in filename in scan order
func (t *Table) Tokens(filename string) []Token {
	tokens := make([]Token, 0)
	for tok := range NewLexer(t, Normalize(filename)).All() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// apply overwrites the field for the token's category
func (md *Metadata) apply(tok Token) {
	switch tok.Category {
	case CategoryVideoCodec:
		if v, ok := tok.Value.(VideoCodec); ok {
			md.VideoCodec = &v
		}
	case CategoryVideoResolution:
		if v, ok := tok.Value.(Resolution); ok {
			md.VideoResolution = &v
		}
	case CategoryVideoSource:
		if v, ok := tok.Value.(Source); ok {
			md.Source = &v
		}
	case CategoryVideoColorRange:
		if v, ok := tok.Value.(ColorRange); ok {
			md.ColorRange = &v
		}
	case CategoryAudioCodec:
		if v, ok := tok.Value.(AudioCodec); ok {
			md.AudioCodec = &v
		}
	case CategoryAudioChannels:
		text := tok.Text
		md.AudioChannels = &text
	case CategoryYear:
		if v, ok := tok.Value.(int); ok {
			md.Year = &v
		}
	case CategoryEpisode:
		if v, ok := tok.Value.(Episode); ok {
			md.Season = v.Season
			md.Episode = v.Episode
		}
	}
}
