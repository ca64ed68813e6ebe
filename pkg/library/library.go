package library

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/vfp/pkg/logger"
	"github.com/kasuboski/vfp/pkg/parser"
)

// ParsedFile is a video file found in the library along with the metadata parsed from its name
type ParsedFile struct {
	Path      string          `json:"path"`
	Size      int64           `json:"size"`
	SizeHuman string          `json:"sizeHuman"`
	Metadata  parser.Metadata `json:"metadata"`
}

func (pf ParsedFile) String() string {
	return fmt.Sprintf("path: %s, size: %s", pf.Path, pf.SizeHuman)
}

type MediaLibrary struct {
	fs         fs.FS
	extensions []string
	parse      func(string) parser.Metadata
}

type Option func(*MediaLibrary)

// WithExtensions replaces the video extensions that are scanned
func WithExtensions(exts ...string) Option {
	return func(l *MediaLibrary) {
		if len(exts) == 0 {
			return
		}
		l.extensions = make([]string, len(exts))
		for i, e := range exts {
			l.extensions[i] = strings.ToLower(e)
		}
	}
}

// WithTable parses names with a custom rule table
func WithTable(t *parser.Table) Option {
	return func(l *MediaLibrary) {
		l.parse = t.Parse
	}
}

func New(fsys fs.FS, opts ...Option) MediaLibrary {
	l := MediaLibrary{
		fs:         fsys,
		extensions: defaultVideoExtensions,
		parse:      parser.Parse,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Scan walks the library and parses the base name of every video file. Directories
// that can't be read are skipped.
func (l MediaLibrary) Scan(ctx context.Context) ([]ParsedFile, error) {
	log := logger.FromCtx(ctx)

	files := []ParsedFile{}
	err := fs.WalkDir(l.fs, ".", func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			// just skip this dir for now if there's an issue
			log.Debugw("skipping unreadable path", "path", p, "error", err)
			return fs.SkipDir
		}

		if d.IsDir() || !l.isVideoFile(p) {
			return nil
		}

		file := ParsedFile{
			Path:     p,
			Metadata: l.parse(d.Name()),
		}

		info, err := d.Info()
		if err == nil {
			file.Size = info.Size()
			file.SizeHuman = humanize.IBytes(uint64(info.Size()))
		}

		log.Debugw("parsed file", "path", p, "size", file.SizeHuman)
		files = append(files, file)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

func (l MediaLibrary) isVideoFile(name string) bool {
	return slices.Contains(l.extensions, strings.ToLower(path.Ext(name)))
}
