package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	"github.com/kasuboski/vfp/pkg/library"
	"github.com/kasuboski/vfp/pkg/logger"
	"github.com/kasuboski/vfp/pkg/parser"
	"github.com/kasuboski/vfp/pkg/storage"
	"github.com/spf13/cobra"
)

var (
	scanStore bool
	scanJSON  bool
	scanWatch bool
)

// scanCmd walks a library directory and parses every video file in it
var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "parse every video file in a library",
	Long: `Walk a library directory, parse the name of every video file found and
print the results. The directory defaults to library.dir from the configuration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		log := logger.Get()
		ctx = logger.WithCtx(ctx, log)

		dir := cfg.Library.Dir
		if len(args) > 0 {
			dir = args[0]
		}
		opts := []library.Option{library.WithExtensions(cfg.Library.Extensions...)}

		var store storage.Storage
		if scanStore {
			store, err = openStore(ctx, cfg.Storage)
			if err != nil {
				return err
			}
			defer store.Close()
		}

		files, err := library.New(os.DirFS(dir), opts...).Scan(ctx)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", dir, err)
		}
		log.Debugw("scanned library", "dir", dir, "files", len(files))

		out := cmd.OutOrStdout()
		if scanJSON {
			if err := json.NewEncoder(out).Encode(files); err != nil {
				return err
			}
		} else {
			writeScanTable(out, files)
		}

		if err := recordFiles(ctx, store, dir, files...); err != nil {
			return err
		}

		if !scanWatch {
			return nil
		}

		w, err := library.NewWatcher(dir, opts...)
		if err != nil {
			return err
		}
		log.Infow("watching for new files", "dir", dir)

		err = w.Run(ctx, func(pf library.ParsedFile) {
			if scanJSON {
				json.NewEncoder(out).Encode([]library.ParsedFile{pf})
			} else {
				writeScanTable(out, []library.ParsedFile{pf})
			}
			if err := recordFiles(ctx, store, dir, pf); err != nil {
				log.Errorw("failed to record parse result", "path", pf.Path, "error", err)
			}
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func recordFiles(ctx context.Context, store storage.Storage, dir string, files ...library.ParsedFile) error {
	if store == nil {
		return nil
	}
	for _, f := range files {
		_, err := store.CreateParseResult(ctx, storage.FromMetadata(filepath.Join(dir, f.Path), f.Metadata))
		if err != nil {
			return fmt.Errorf("failed to store parse result for %s: %w", f.Path, err)
		}
	}
	return nil
}

func writeScanTable(w io.Writer, files []library.ParsedFile) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tSIZE\tCODEC\tRESOLUTION\tSOURCE\tAUDIO\tYEAR\tEPISODE")
	for _, f := range files {
		md := f.Metadata
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			f.Path,
			f.SizeHuman,
			orDash(md.VideoCodec),
			orDash(md.VideoResolution),
			orDash(md.Source),
			orDash(md.AudioCodec),
			orDash(md.Year),
			episodeColumn(md),
		)
	}
	tw.Flush()
}

func episodeColumn(md parser.Metadata) string {
	if md.Season == nil && md.Episode == nil {
		return "-"
	}
	return parser.Episode{Season: md.Season, Episode: md.Episode}.String()
}

func orDash[T any](v *T) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanStore, "store", false, "record results in the parse history")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "print results as json")
	scanCmd.Flags().BoolVar(&scanWatch, "watch", false, "keep running and parse files as they are added")
}
