package cmd

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/AbhishekDubey013/zkastro-proof/zkproof"
)

var verifyCmdSubmissionPath string

func init() {
	verifyCmd.Flags().StringVar(&verifyCmdSubmissionPath, "submission", "", "JSON file with {commitment, proof, nonce, positions}")
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a submission artifact offline",
	RunE: func(cmd *cobra.Command, args []string) error {
		if verifyCmdSubmissionPath == "" {
			return errors.New("--submission is required")
		}
		data, err := os.ReadFile(verifyCmdSubmissionPath)
		if err != nil {
			return errors.Wrap(err, "reading submission file")
		}
		var sub zkproof.Submission
		if err := json.Unmarshal(data, &sub); err != nil {
			return errors.Wrap(err, "decoding submission file")
		}

		hasher, err := zkproof.NewHasher()
		if err != nil {
			return errors.Wrap(err, "initializing hash primitive")
		}
		if err := zkproof.NewVerifier(hasher).Verify(sub); err != nil {
			return zkproof.ErrProofInvalid
		}
		log.Info().Str("commitment", sub.Commitment).Msg("proof valid")
		return nil
	},
}
