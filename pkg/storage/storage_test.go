package storage

import (
	"testing"

	"github.com/kasuboski/vfp/pkg/parser"
	"github.com/kasuboski/vfp/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMetadata(t *testing.T) {
	md := parser.Parse("Dune.Part.Two.2024.1080p.WEB-DL.DDP5.1.Atmos.H.264-FLUX.mkv")
	m := FromMetadata("movies/Dune.Part.Two.2024.1080p.WEB-DL.DDP5.1.Atmos.H.264-FLUX.mkv", md)

	assert.Equal(t, md.FileName, m.FileName)
	assert.Equal(t, md.Title, m.Title)
	require.NotNil(t, m.Path)
	assert.Equal(t, "movies/Dune.Part.Two.2024.1080p.WEB-DL.DDP5.1.Atmos.H.264-FLUX.mkv", *m.Path)
	require.NotNil(t, m.Year)
	assert.Equal(t, int64(2024), *m.Year)
	require.NotNil(t, m.Source)
	assert.Equal(t, "Webdl", *m.Source)
	assert.Nil(t, m.Season)
	assert.Nil(t, m.Episode)
}

func TestFromMetadataNoPath(t *testing.T) {
	m := FromMetadata("", parser.Parse("nothing here"))
	assert.Nil(t, m.Path)
	assert.Nil(t, m.VideoCodec)
	assert.Nil(t, m.Year)
}

func TestToMetadataRoundTrip(t *testing.T) {
	names := []string{
		"The.Mandalorian.S01E01.2160p.WEBRip.x265.mkv",
		"Blade.Runner.1982.Final.Cut.BluRay.1080p.DTS-HD.MA.5.1.HEVC.mkv",
		"plain name",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			md := parser.Parse(name)
			back, err := ToMetadata(FromMetadata("", md))
			require.NoError(t, err)
			assert.Equal(t, md, back)
		})
	}
}

func TestToMetadataInvalid(t *testing.T) {
	bad := "VHS"
	_, err := ToMetadata(model.ParseResult{Title: "x", FileName: "x", VideoCodec: &bad})
	assert.Error(t, err)
}
