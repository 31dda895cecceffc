package cmd

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AbhishekDubey013/zkastro-proof/store"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:   "zkastro-proof",
	Short: "Commitment/proof protocol for private natal chart submission",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(exportCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// openStore selects the chart store backend: S3 when a bucket is given,
// the local data directory otherwise.
func openStore(ctx context.Context, dataDir, s3Bucket, s3Prefix string) (store.Store, error) {
	if s3Bucket != "" {
		return store.NewS3Store(ctx, s3Bucket, s3Prefix)
	}
	return store.NewFileStore(dataDir)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
