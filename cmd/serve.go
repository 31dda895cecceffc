package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/AbhishekDubey013/zkastro-proof/server"
	"github.com/AbhishekDubey013/zkastro-proof/zkproof"
)

var (
	serveCmdPort     string
	serveCmdDataDir  string
	serveCmdS3Bucket string
	serveCmdS3Prefix string
)

func init() {
	serveCmd.Flags().StringVar(&serveCmdPort, "port", envOr("PORT", "8080"), "listen port")
	serveCmd.Flags().StringVar(&serveCmdDataDir, "data", "data", "chart record directory")
	serveCmd.Flags().StringVar(&serveCmdS3Bucket, "s3-bucket", "", "store records in this S3 bucket instead of --data")
	serveCmd.Flags().StringVar(&serveCmdS3Prefix, "s3-prefix", "charts", "key prefix within the S3 bucket")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the chart submission server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Fail closed: without the hash primitive there is no verified
		// acceptance path, and an unverified one must never exist.
		hasher, err := zkproof.NewHasher()
		if err != nil {
			return errors.Wrap(err, "hash primitive unavailable, refusing to serve")
		}

		charts, err := openStore(cmd.Context(), serveCmdDataDir, serveCmdS3Bucket, serveCmdS3Prefix)
		if err != nil {
			return errors.Wrap(err, "opening chart store")
		}

		srv := server.New(zkproof.NewVerifier(hasher), charts, log)
		return srv.Start(serveCmdPort)
	},
}
