package parser

import (
	"fmt"
	"slices"
)

// VideoCodec is the video encoding detected in a filename
type VideoCodec int

const (
	Divx VideoCodec = iota
	Xvid
	Vp9
	H264
	H265
)

var videoCodecNames = []string{"Divx", "Xvid", "Vp9", "H264", "H265"}

// Resolution is the vertical video resolution detected in a filename
type Resolution int

const (
	R360P Resolution = iota
	R480P
	R540P
	R576P
	R720P
	R1080P
	R2160P
)

var resolutionNames = []string{"R360P", "R480P", "R540P", "R576P", "R720P", "R1080P", "R2160P"}

// Source is the release or rip type of the media
type Source int

const (
	Workprint Source = iota
	Cam
	Telesync
	Telecine
	R5
	HDRip
	PPVRip
	Preair
	TVRip
	DSR
	SDTV
	DVDscr
	BDscr
	Webrip
	HDTV
	Webdl
	DVDrip
	Remux
	BluRay
)

var sourceNames = []string{
	"Workprint", "Cam", "Telesync", "Telecine", "R5", "HDRip", "PPVRip", "Preair", "TVRip", "DSR",
	"SDTV", "DVDscr", "BDscr", "Webrip", "HDTV", "Webdl", "DVDrip", "Remux", "BluRay",
}

// ColorRange is the bit depth or dynamic range of the video
type ColorRange int

const (
	C8Bit ColorRange = iota
	C10Bit
	HDRplus
	HDR
	DolbyVision
)

var colorRangeNames = []string{"C8Bit", "C10Bit", "HDRplus", "HDR", "DolbyVision"}

// AudioCodec is the audio encoding detected in a filename
type AudioCodec int

const (
	MP3 AudioCodec = iota
	AAC
	DD51
	AC3
	DDPLUS51
	FLAC
	DTSHD
	DTS
	TRUEHD
)

var audioCodecNames = []string{"MP3", "AAC", "DD51", "AC3", "DDPLUS51", "FLAC", "DTSHD", "DTS", "TRUEHD"}

func (v VideoCodec) String() string { return enumName(videoCodecNames, int(v)) }
func (r Resolution) String() string { return enumName(resolutionNames, int(r)) }
func (s Source) String() string     { return enumName(sourceNames, int(s)) }
func (c ColorRange) String() string { return enumName(colorRangeNames, int(c)) }
func (a AudioCodec) String() string { return enumName(audioCodecNames, int(a)) }

func (v VideoCodec) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (r Resolution) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
func (s Source) MarshalText() ([]byte, error)     { return []byte(s.String()), nil }
func (c ColorRange) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
func (a AudioCodec) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (v *VideoCodec) UnmarshalText(b []byte) error {
	return unmarshalEnum(videoCodecNames, "video codec", b, (*int)(v))
}

func (r *Resolution) UnmarshalText(b []byte) error {
	return unmarshalEnum(resolutionNames, "resolution", b, (*int)(r))
}

func (s *Source) UnmarshalText(b []byte) error {
	return unmarshalEnum(sourceNames, "source", b, (*int)(s))
}

func (c *ColorRange) UnmarshalText(b []byte) error {
	return unmarshalEnum(colorRangeNames, "color range", b, (*int)(c))
}

func (a *AudioCodec) UnmarshalText(b []byte) error {
	return unmarshalEnum(audioCodecNames, "audio codec", b, (*int)(a))
}

// ParseVideoCodec returns the VideoCodec with the given identifier
func ParseVideoCodec(s string) (VideoCodec, error) {
	var v VideoCodec
	return v, v.UnmarshalText([]byte(s))
}

// ParseResolution returns the Resolution with the given identifier
func ParseResolution(s string) (Resolution, error) {
	var r Resolution
	return r, r.UnmarshalText([]byte(s))
}

// ParseSource returns the Source with the given identifier
func ParseSource(s string) (Source, error) {
	var src Source
	return src, src.UnmarshalText([]byte(s))
}

// ParseColorRange returns the ColorRange with the given identifier
func ParseColorRange(s string) (ColorRange, error) {
	var c ColorRange
	return c, c.UnmarshalText([]byte(s))
}

// ParseAudioCodec returns the AudioCodec with the given identifier
func ParseAudioCodec(s string) (AudioCodec, error) {
	var a AudioCodec
	return a, a.UnmarshalText([]byte(s))
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("Unknown(%d)", i)
	}
	return names[i]
}

func unmarshalEnum(names []string, kind string, b []byte, dst *int) error {
	i := slices.Index(names, string(b))
	if i < 0 {
		return fmt.Errorf("unknown %s %q", kind, string(b))
	}
	*dst = i
	return nil
}
