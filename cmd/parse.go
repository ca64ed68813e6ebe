package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kasuboski/vfp/pkg/logger"
	"github.com/kasuboski/vfp/pkg/parser"
	"github.com/kasuboski/vfp/pkg/storage"
	"github.com/spf13/cobra"
)

var (
	parseTokens bool
	parsePretty bool
	parseStore  bool
)

// parseCmd parses filenames given as arguments or read line by line from stdin
var parseCmd = &cobra.Command{
	Use:   "parse [filename...]",
	Short: "parse video filenames",
	Long: `Parse video filenames and print the extracted metadata as JSON, one
record per line. Filenames are read from stdin when none are given.`,
	Example: `  vfp parse "Tenet.2020.2160p.UHD.Webdl.dd5.1.x265-LEGi0N"
  ls /media/movies | vfp parse --tokens`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		log := logger.Get()
		ctx = logger.WithCtx(ctx, log)

		var store storage.Storage
		if parseStore {
			store, err = openStore(ctx, cfg.Storage)
			if err != nil {
				return err
			}
			defer store.Close()
		}

		out := cmd.OutOrStdout()
		enc := json.NewEncoder(out)
		if parsePretty {
			enc.SetIndent("", "  ")
		}

		return readNames(cmd.InOrStdin(), args, func(name string) error {
			if parseTokens {
				printTokens(out, parser.Tokens(name))
			}

			md := parser.Parse(name)
			if err := enc.Encode(md); err != nil {
				return err
			}

			if store != nil {
				id, err := store.CreateParseResult(ctx, storage.FromMetadata("", md))
				if err != nil {
					return fmt.Errorf("failed to store parse result: %w", err)
				}
				log.Debugw("stored parse result", "id", id, "name", name)
			}
			return nil
		})
	},
}

// readNames calls fn for every argument, or for every non-empty stdin line when there are none
func readNames(in io.Reader, args []string, fn func(string) error) error {
	if len(args) > 0 {
		for _, a := range args {
			if err := fn(a); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func printTokens(w io.Writer, tokens []parser.Token) {
	for _, t := range tokens {
		fmt.Fprintf(w, "# %s\n", t)
	}
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseTokens, "tokens", false, "print the token stream before each record")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "indent the json output")
	parseCmd.Flags().BoolVar(&parseStore, "store", false, "record results in the parse history")
}
