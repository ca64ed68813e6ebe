package parser

import "fmt"

// Category identifies the metadata dimension a rule or token belongs to
type Category int

// Categories are declared in the order the tokenizer tries them
const (
	CategoryVideoCodec Category = iota
	CategoryVideoResolution
	CategoryVideoSource
	CategoryVideoColorRange
	CategoryAudioCodec
	CategoryAudioChannels
	CategoryYear
	CategoryEpisode
)

var categoryNames = []string{
	"VideoCodec", "VideoResolution", "VideoSource", "VideoColorRange",
	"AudioCodec", "AudioChannels", "Year", "Episode",
}

func (c Category) String() string { return enumName(categoryNames, int(c)) }

func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Episode is the payload of an episode marker. Either part may be absent,
// e.g. "s03" carries only a season and "episode 12" only an episode.
type Episode struct {
	Season  *int `json:"season,omitempty"`
	Episode *int `json:"episode,omitempty"`
}

func (e Episode) String() string {
	switch {
	case e.Season != nil && e.Episode != nil:
		return fmt.Sprintf("S%02dE%02d", *e.Season, *e.Episode)
	case e.Season != nil:
		return fmt.Sprintf("S%02d", *e.Season)
	case e.Episode != nil:
		return fmt.Sprintf("E%02d", *e.Episode)
	}
	return ""
}

// Token is a single match produced by the Lexer.
//
// Value holds the typed payload for the category:
//
//	VideoCodec      -> VideoCodec
//	VideoResolution -> Resolution
//	VideoSource     -> Source
//	VideoColorRange -> ColorRange
//	AudioCodec      -> AudioCodec
//	AudioChannels   -> string (the matched text)
//	Year            -> int
//	Episode         -> Episode
type Token struct {
	Category Category `json:"category"`
	Value    any      `json:"value"`
	Text     string   `json:"text"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%v) %q [%d:%d]", t.Category, t.Value, t.Text, t.Start, t.End)
}
