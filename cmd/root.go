package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kasuboski/vfp/config"
	"github.com/kasuboski/vfp/pkg/logger"
	"github.com/kasuboski/vfp/pkg/storage"
	"github.com/kasuboski/vfp/pkg/storage/sqlite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vfp",
	Short: "video filename parser",
	Long: `vfp extracts technical metadata such as codecs, resolution, source,
audio and episode numbering from video release filenames.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("VFP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.json", false)

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.rateLimit", 0)
	viper.SetDefault("server.burst", 20)

	viper.SetDefault("storage.filePath", "vfp.sqlite")

	viper.SetDefault("library.dir", ".")
	viper.SetDefault("library.extensions", []string{})

	viper.SetDefault("cache.maxEntries", 10000)
}

// loadConfig reads and validates the configuration then configures the logger from it
func loadConfig() (config.Config, error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return cfg, fmt.Errorf("failed to read configurations: %w", err)
	}

	logger.Configure(logger.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON,
	})

	return cfg, nil
}

// openStore opens the sqlite parse history and applies migrations
func openStore(ctx context.Context, cfg config.Storage) (storage.Storage, error) {
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("storage.filePath is not set")
	}

	store, err := sqlite.New(ctx, cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage connection: %w", err)
	}

	if err := store.RunMigrations(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}
