package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/AbhishekDubey013/zkastro-proof/ledger"
)

var (
	exportCmdID       string
	exportCmdDataDir  string
	exportCmdS3Bucket string
	exportCmdS3Prefix string
)

func init() {
	exportCmd.Flags().StringVar(&exportCmdID, "id", "", "chart identifier")
	exportCmd.Flags().StringVar(&exportCmdDataDir, "data", "data", "chart record directory")
	exportCmd.Flags().StringVar(&exportCmdS3Bucket, "s3-bucket", "", "read records from this S3 bucket instead of --data")
	exportCmd.Flags().StringVar(&exportCmdS3Prefix, "s3-prefix", "charts", "key prefix within the S3 bucket")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the chart registry entry for a stored chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportCmdID == "" {
			return errors.New("--id is required")
		}
		charts, err := openStore(cmd.Context(), exportCmdDataDir, exportCmdS3Bucket, exportCmdS3Prefix)
		if err != nil {
			return errors.Wrap(err, "opening chart store")
		}
		rec, err := charts.Get(cmd.Context(), exportCmdID)
		if err != nil {
			return errors.Wrap(err, "loading chart record")
		}

		entry := ledger.NewEntry(rec)
		out, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding registry entry")
		}
		fmt.Println(string(out))
		return nil
	},
}
