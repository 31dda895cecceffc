package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/AbhishekDubey013/zkastro-proof/zkproof"
)

var (
	proveCmdDOB           string
	proveCmdTOB           string
	proveCmdTimezone      string
	proveCmdLatitude      float64
	proveCmdLongitude     float64
	proveCmdPositionsPath string
	proveCmdOutPath       string
	proveCmdSubmitURL     string
)

func init() {
	// Birth data arrives as flags, not a file: it must never be written to
	// disk by this tool.
	proveCmd.Flags().StringVar(&proveCmdDOB, "dob", "", "date of birth, e.g. 1990-01-15")
	proveCmd.Flags().StringVar(&proveCmdTOB, "tob", "", "time of birth, e.g. 14:30")
	proveCmd.Flags().StringVar(&proveCmdTimezone, "tz", "", "IANA timezone, e.g. America/New_York")
	proveCmd.Flags().Float64Var(&proveCmdLatitude, "lat", 0, "birth latitude")
	proveCmd.Flags().Float64Var(&proveCmdLongitude, "lon", 0, "birth longitude")
	proveCmd.Flags().StringVar(&proveCmdPositionsPath, "positions", "", "JSON file with the computed planetary positions")
	proveCmd.Flags().StringVar(&proveCmdOutPath, "out", "", "write the submission here instead of stdout")
	proveCmd.Flags().StringVar(&proveCmdSubmitURL, "submit", "", "POST the submission to this charts endpoint")
}

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Generate a submission artifact from private birth data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if proveCmdPositionsPath == "" {
			return errors.New("--positions is required")
		}
		data, err := os.ReadFile(proveCmdPositionsPath)
		if err != nil {
			return errors.Wrap(err, "reading positions file")
		}
		var pos zkproof.PublicPositions
		if err := json.Unmarshal(data, &pos); err != nil {
			return errors.Wrap(err, "decoding positions file")
		}

		hasher, err := zkproof.NewHasher()
		if err != nil {
			return errors.Wrap(err, "initializing hash primitive")
		}
		in := zkproof.BirthInput{
			DOB:       proveCmdDOB,
			TOB:       proveCmdTOB,
			Timezone:  proveCmdTimezone,
			Latitude:  proveCmdLatitude,
			Longitude: proveCmdLongitude,
		}
		art, err := zkproof.NewProver(hasher).Prove(in, pos)
		if err != nil {
			return errors.Wrap(err, "building proof")
		}

		sub := zkproof.Submission{
			Commitment: art.Commitment,
			Proof:      art.Proof,
			Nonce:      art.Nonce,
			Positions:  pos,
		}
		out, err := json.MarshalIndent(sub, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding submission")
		}

		if proveCmdOutPath != "" {
			if err := os.WriteFile(proveCmdOutPath, out, 0644); err != nil {
				return errors.Wrap(err, "writing submission")
			}
			log.Info().Str("path", proveCmdOutPath).Msg("submission written")
		} else {
			fmt.Println(string(out))
		}

		if proveCmdSubmitURL != "" {
			return submit(proveCmdSubmitURL, out)
		}
		return nil
	},
}

func submit(url string, body []byte) error {
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "posting submission")
	}
	defer resp.Body.Close()

	var reply struct {
		ChartID string `json:"chart_id"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return errors.Wrap(err, "decoding server response")
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("server rejected submission (%d): %s", resp.StatusCode, reply.Error)
	}
	log.Info().Str("chart_id", reply.ChartID).Msg("chart accepted")
	return nil
}
