package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/kasuboski/vfp/pkg/parser"
	"github.com/kasuboski/vfp/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")

// Storage persists parse results. It is only used by the cli and server, parsing itself never touches it.
type Storage interface {
	RunMigrations(ctx context.Context) error
	Close() error
	ParseResultStorage
}

type ParseResultStorage interface {
	CreateParseResult(ctx context.Context, result model.ParseResult) (int64, error)
	GetParseResult(ctx context.Context, id int64) (*model.ParseResult, error)
	// ListParseResults returns newest first, a limit of 0 returns everything after offset
	ListParseResults(ctx context.Context, offset, limit int) ([]*model.ParseResult, error)
	CountParseResults(ctx context.Context) (int, error)
	DeleteParseResult(ctx context.Context, id int64) error
}

// FromMetadata converts parsed metadata into a storable row. path is optional.
func FromMetadata(path string, md parser.Metadata) model.ParseResult {
	m := model.ParseResult{
		FileName:        md.FileName,
		Title:           md.Title,
		VideoCodec:      stringer(md.VideoCodec),
		VideoResolution: stringer(md.VideoResolution),
		Source:          stringer(md.Source),
		ColorRange:      stringer(md.ColorRange),
		AudioCodec:      stringer(md.AudioCodec),
		AudioChannels:   md.AudioChannels,
		Year:            int64Ptr(md.Year),
		Season:          int64Ptr(md.Season),
		Episode:         int64Ptr(md.Episode),
	}
	if path != "" {
		m.Path = &path
	}

	return m
}

// ToMetadata converts a stored row back into parsed metadata
func ToMetadata(m model.ParseResult) (parser.Metadata, error) {
	md := parser.Metadata{
		Title:         m.Title,
		FileName:      m.FileName,
		AudioChannels: m.AudioChannels,
		Year:          intPtr(m.Year),
		Season:        intPtr(m.Season),
		Episode:       intPtr(m.Episode),
	}

	var err error
	if md.VideoCodec, err = parseEnum(m.VideoCodec, parser.ParseVideoCodec); err != nil {
		return md, err
	}
	if md.VideoResolution, err = parseEnum(m.VideoResolution, parser.ParseResolution); err != nil {
		return md, err
	}
	if md.Source, err = parseEnum(m.Source, parser.ParseSource); err != nil {
		return md, err
	}
	if md.ColorRange, err = parseEnum(m.ColorRange, parser.ParseColorRange); err != nil {
		return md, err
	}
	if md.AudioCodec, err = parseEnum(m.AudioCodec, parser.ParseAudioCodec); err != nil {
		return md, err
	}

	return md, nil
}

func stringer[T fmt.Stringer](v *T) *string {
	if v == nil {
		return nil
	}
	s := (*v).String()
	return &s
}

func parseEnum[T any](s *string, parse func(string) (T, error)) (*T, error) {
	if s == nil {
		return nil, nil
	}
	v, err := parse(*s)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored value: %w", err)
	}
	return &v, nil
}

func int64Ptr(v *int) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}

func intPtr(v *int64) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
