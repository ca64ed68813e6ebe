package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
)

// Boundary restricts where a rule may match. Go regexp has no look-around,
// so word boundaries are checked by the lexer against the surrounding text.
type Boundary uint8

const (
	// BoundStart requires the character before the match to not be a letter or digit
	BoundStart Boundary = 1 << iota
	// BoundEnd requires the character after the match to not be a letter or digit
	BoundEnd

	// Bound is shorthand for BoundStart | BoundEnd
	Bound = BoundStart | BoundEnd
)

// BuildFunc converts the submatches of a rule into a token payload.
// groups[0] is the full match. A returned error discards the token.
type BuildFunc func(groups []string) (any, error)

// Rule pairs a pattern with the category it produces and an optional payload constructor.
// Without a constructor the payload is the matched text.
type Rule struct {
	Category Category
	Pattern  string
	Boundary Boundary
	Build    BuildFunc

	re *regexp.Regexp
}

// Table is an ordered, immutable set of rules. At a given position the first
// rule in declaration order that matches wins, even when a later rule would
// match a longer span. Within one pattern, alternation is leftmost-first as
// implemented by Go's regexp package.
type Table struct {
	rules []Rule
}

// NewTable compiles the rules in the given order
func NewTable(rules ...Rule) (*Table, error) {
	compiled := make([]Rule, len(rules))
	for i, r := range rules {
		re, err := regexp.Compile(`^(?:` + r.Pattern + `)`)
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s rule %q: %w", r.Category, r.Pattern, err)
		}
		r.re = re
		compiled[i] = r
	}

	return &Table{rules: compiled}, nil
}

// Rules returns a copy of the table's rules in priority order
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// DefaultTable returns the process wide rule table. It is built on first use and never modified.
var DefaultTable = sync.OnceValue(func() *Table {
	t, err := NewTable(defaultRules()...)
	if err != nil {
		panic(err)
	}
	return t
})

func is[T any](v T) BuildFunc {
	return func([]string) (any, error) { return v, nil }
}

func buildYear(groups []string) (any, error) {
	return strconv.Atoi(groups[0])
}

// buildEpisode reads the season from group 1 and the episode from group 2, either may be empty
func buildEpisode(groups []string) (any, error) {
	var ep Episode
	if len(groups) > 1 && groups[1] != "" {
		n, err := strconv.Atoi(groups[1])
		if err != nil {
			return nil, err
		}
		ep.Season = &n
	}
	if len(groups) > 2 && groups[2] != "" {
		n, err := strconv.Atoi(groups[2])
		if err != nil {
			return nil, err
		}
		ep.Episode = &n
	}
	return ep, nil
}

func defaultRules() []Rule {
	return []Rule{
		// video codec
		{Category: CategoryVideoCodec, Pattern: `divx`, Build: is(Divx)},
		{Category: CategoryVideoCodec, Pattern: `xvid`, Build: is(Xvid)},
		{Category: CategoryVideoCodec, Pattern: `vp9`, Build: is(Vp9)},
		{Category: CategoryVideoCodec, Pattern: `[hx].?264`, Build: is(H264)},
		{Category: CategoryVideoCodec, Pattern: `avc`, Boundary: Bound, Build: is(H264)},
		{Category: CategoryVideoCodec, Pattern: `[hx].?265|hevc`, Build: is(H265)},

		// video resolution
		{Category: CategoryVideoResolution, Pattern: `(?:480x)?360p`, Build: is(R360P)},
		{Category: CategoryVideoResolution, Pattern: `(?:640x)?480[pi]`, Build: is(R480P)},
		{Category: CategoryVideoResolution, Pattern: `(?:960x)?540p`, Build: is(R540P)},
		{Category: CategoryVideoResolution, Pattern: `(?:720x)?576[pi]`, Build: is(R576P)},
		{Category: CategoryVideoResolution, Pattern: `(?:1280x)?720[pi]?(?:x?[56]0)?`, Build: is(R720P)},
		{Category: CategoryVideoResolution, Pattern: `(?:1920x)?1080[pi]?(?:x?[56]0)?`, Build: is(R1080P)},
		{Category: CategoryVideoResolution, Pattern: `(?:3840x)?2160p?(?:x?[56]0)?`, Build: is(R2160P)},
		{Category: CategoryVideoResolution, Pattern: `4k|uhd`, Boundary: Bound, Build: is(R2160P)},

		// video source
		{Category: CategoryVideoSource, Pattern: `workprint|wp`, Boundary: Bound, Build: is(Workprint)},
		{Category: CategoryVideoSource, Pattern: `(?:hd)?cam(?:[\W_]?rip)?`, Boundary: Bound, Build: is(Cam)},
		{Category: CategoryVideoSource, Pattern: `(?:hd)?(?:ts|telesync|pdvd)`, Boundary: Bound, Build: is(Telesync)},
		{Category: CategoryVideoSource, Pattern: `(?:hd)?(?:tc|telecine)`, Boundary: Bound, Build: is(Telecine)},
		{Category: CategoryVideoSource, Pattern: `r5`, Boundary: Bound, Build: is(R5)},
		{Category: CategoryVideoSource, Pattern: `hd[\W_]?rip`, Build: is(HDRip)},
		{Category: CategoryVideoSource, Pattern: `ppv(?:[\W_]?rip)?`, Boundary: Bound, Build: is(PPVRip)},
		{Category: CategoryVideoSource, Pattern: `preair`, Build: is(Preair)},
		{Category: CategoryVideoSource, Pattern: `tv[\W_]?rip`, Build: is(TVRip)},
		{Category: CategoryVideoSource, Pattern: `dsr(?:ip)?|satrip|dthrip|dvbrip`, Boundary: Bound, Build: is(DSR)},
		{Category: CategoryVideoSource, Pattern: `sdtv|pdtv`, Build: is(SDTV)},
		{Category: CategoryVideoSource, Pattern: `dvd[\W_]?scr(?:eener)?`, Build: is(DVDscr)},
		{Category: CategoryVideoSource, Pattern: `scr(?:eener)?`, Boundary: Bound, Build: is(DVDscr)},
		{Category: CategoryVideoSource, Pattern: `b[dr][\W_]?scr(?:eener)?`, Build: is(BDscr)},
		{Category: CategoryVideoSource, Pattern: `web[\W_]?rip`, Build: is(Webrip)},
		{Category: CategoryVideoSource, Pattern: `hdtv`, Build: is(HDTV)},
		{Category: CategoryVideoSource, Pattern: `web(?:[\W_]?(?:dl|hd))?`, Build: is(Webdl)},
		{Category: CategoryVideoSource, Pattern: `dvd(?:[\W_]?rip|r)?`, Build: is(DVDrip)},
		{Category: CategoryVideoSource, Pattern: `remux`, Build: is(Remux)},
		{Category: CategoryVideoSource, Pattern: `b[dr][\W_]?rip|blu[\W_]?ray(?:[\W_]?rip)?`, Build: is(BluRay)},

		// color range
		{Category: CategoryVideoColorRange, Pattern: `8[\W_]?bits?|hi8p?`, Build: is(C8Bit)},
		{Category: CategoryVideoColorRange, Pattern: `10[\W_]?bits?|hi10p?`, Build: is(C10Bit)},
		{Category: CategoryVideoColorRange, Pattern: `hdr(?:10)?(?:\+|[\W_]?plus)`, Build: is(HDRplus)},
		{Category: CategoryVideoColorRange, Pattern: `hdr(?:10)?`, Boundary: BoundStart, Build: is(HDR)},
		{Category: CategoryVideoColorRange, Pattern: `dolby[\W_]?vision`, Build: is(DolbyVision)},
		{Category: CategoryVideoColorRange, Pattern: `dovi|dv`, Boundary: Bound, Build: is(DolbyVision)},

		// audio codec, dd+ variants come before plain dd
		{Category: CategoryAudioCodec, Pattern: `mp3`, Build: is(MP3)},
		{Category: CategoryAudioCodec, Pattern: `aac`, Build: is(AAC)},
		{Category: CategoryAudioCodec, Pattern: `dd(?:p|\+|[\W_]?plus)(?:[\W_]?5[\W_]?1)?`, Boundary: BoundStart, Build: is(DDPLUS51)},
		{Category: CategoryAudioCodec, Pattern: `e[\W_]?ac[\W_]?3`, Boundary: BoundStart, Build: is(DDPLUS51)},
		{Category: CategoryAudioCodec, Pattern: `dd[\W_]?5[\W_]?1`, Boundary: BoundStart, Build: is(DD51)},
		{Category: CategoryAudioCodec, Pattern: `ac[\W_]?3|dolby(?:[\W_]?digital)?`, Build: is(AC3)},
		{Category: CategoryAudioCodec, Pattern: `dd(?:[\W_]?2[\W_]?0)?`, Boundary: Bound, Build: is(AC3)},
		{Category: CategoryAudioCodec, Pattern: `flac`, Build: is(FLAC)},
		{Category: CategoryAudioCodec, Pattern: `dts[\W_]?hd(?:[\W_]?ma)?|dts[\W_]?ma`, Build: is(DTSHD)},
		{Category: CategoryAudioCodec, Pattern: `dts`, Build: is(DTS)},
		{Category: CategoryAudioCodec, Pattern: `true[\W_]?hd`, Build: is(TRUEHD)},

		// audio channels keep the raw text
		{Category: CategoryAudioChannels, Pattern: `[765][\W_]?[01]`},
		{Category: CategoryAudioChannels, Pattern: `2[\W_]0`, Boundary: Bound},
		{Category: CategoryAudioChannels, Pattern: `[2-8]ch|stereo|mono`, Boundary: Bound},

		{Category: CategoryYear, Pattern: `(?:19|20)\d{2}`, Boundary: Bound, Build: buildYear},

		// episode
		{Category: CategoryEpisode, Pattern: `s(\d{1,2})(?:[\W_]?e(\d{1,3}))?`, Boundary: BoundStart, Build: buildEpisode},
		{Category: CategoryEpisode, Pattern: `(\d{1,2})x(\d{1,3})`, Boundary: Bound, Build: buildEpisode},
		{Category: CategoryEpisode, Pattern: `season[\W_]?(\d+)`, Boundary: BoundStart, Build: buildEpisode},
		{Category: CategoryEpisode, Pattern: `ep(?:isode)?[\W_]?()(\d+)`, Boundary: BoundStart, Build: buildEpisode},
	}
}
