package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/kasuboski/vfp/pkg/logger"
	"github.com/kasuboski/vfp/pkg/pagination"
	"github.com/kasuboski/vfp/pkg/storage"
	"github.com/spf13/cobra"
)

var (
	historyPage     int
	historyPageSize int
)

// historyCmd lists stored parse results
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "list stored parse results",
	Long:  `List parse results recorded with --store or by the server, newest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		params := pagination.Params{Page: historyPage, PageSize: historyPageSize}
		if params.Page < 1 || params.PageSize < 0 || params.PageSize > pagination.MaxPageSize {
			return fmt.Errorf("invalid page %d or page size %d", params.Page, params.PageSize)
		}

		ctx := logger.WithCtx(cmd.Context(), logger.Get())
		store, err := openStore(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		defer store.Close()

		total, err := store.CountParseResults(ctx)
		if err != nil {
			return err
		}

		offset, limit := params.CalculateOffsetLimit()
		rows, err := store.ListParseResults(ctx, offset, limit)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCREATED\tFILE\tCODEC\tRESOLUTION\tSOURCE\tYEAR\tEPISODE")
		for _, row := range rows {
			md, err := storage.ToMetadata(*row)
			if err != nil {
				return fmt.Errorf("failed to read parse result %d: %w", row.ID, err)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				row.ID,
				row.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				md.FileName,
				orDash(md.VideoCodec),
				orDash(md.VideoResolution),
				orDash(md.Source),
				orDash(md.Year),
				episodeColumn(md),
			)
		}
		tw.Flush()

		meta := params.BuildMeta(total)
		fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d results)\n", meta.Page, meta.TotalPages, meta.TotalItems)
		return nil
	},
}

// historyRmCmd deletes stored parse results by id
var historyRmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "delete stored parse results",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ids := make([]int64, len(args))
		for i, a := range args {
			ids[i], err = strconv.ParseInt(a, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", a, err)
			}
		}

		ctx := logger.WithCtx(cmd.Context(), logger.Get())
		store, err := openStore(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		defer store.Close()

		for _, id := range ids {
			if err := store.DeleteParseResult(ctx, id); err != nil {
				return fmt.Errorf("failed to delete %d: %w", id, err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyRmCmd)
	historyCmd.Flags().IntVar(&historyPage, "page", 1, "page to show")
	historyCmd.Flags().IntVar(&historyPageSize, "page-size", 20, "results per page, 0 shows everything")
}
