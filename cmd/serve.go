package cmd

import (
	"github.com/kasuboski/vfp/pkg/logger"
	"github.com/kasuboski/vfp/server"

	"github.com/spf13/cobra"
)

var serveNoHistory bool

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the parse api server",
	Long:  `start the parse api server`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log := logger.Get()
		ctx := logger.WithCtx(cmd.Context(), log)

		opts := []server.Option{
			server.WithCacheSize(cfg.Cache.MaxEntries),
			server.WithRateLimit(cfg.Server.RateLimit, cfg.Server.Burst),
		}
		if !serveNoHistory && cfg.Storage.FilePath != "" {
			store, err := openStore(ctx, cfg.Storage)
			if err != nil {
				return err
			}
			defer store.Close()
			opts = append(opts, server.WithStorage(store))
		}

		srv := server.New(log, opts...)
		return srv.Serve(ctx, cfg.Server.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveNoHistory, "no-history", false, "do not record parse results")
}
