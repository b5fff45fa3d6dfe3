package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mockround/internal/screens/report"
	"github.com/abhisek/mockround/internal/script"
)

var runCmd = &cobra.Command{
	Use:   "run --answers FILE",
	Short: "Run an interview from a scripted answer file and print the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		answersPath, _ := cmd.Flags().GetString("answers")
		asJSON, _ := cmd.Flags().GetBool("json")
		archive, _ := cmd.Flags().GetBool("archive")

		f, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		sc, err := script.Load(answersPath)
		if err != nil {
			return err
		}
		// Script values sit between the config file and explicit flags.
		if sc.Candidate != nil {
			f.Candidate = *sc.Candidate
		}
		if sc.Job != nil {
			f.Job = *sc.Job
		}
		if sc.Seed != nil {
			f.Seed = sc.Seed
		}
		if err := applySessionFlags(cmd, &f); err != nil {
			return err
		}

		logger, closeLog, err := newLogger(cmd, false)
		if err != nil {
			return err
		}
		defer closeLog()

		e, _, err := newEngine(cmd, f, logger)
		if err != nil {
			return err
		}
		res, err := script.Run(e, sc)
		if err != nil {
			return err
		}

		if archive {
			st, err := openStore(f)
			if err != nil {
				warn("report not saved: %v", err)
			} else {
				defer st.Close()
				if err := st.Results().Save(cmd.Context(), res, time.Now()); err != nil {
					warn("report not saved: %v", err)
				}
			}
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		_, err = lipgloss.Println(report.Render(res, 80))
		if err != nil {
			return fmt.Errorf("print report: %w", err)
		}
		return nil
	},
}

func init() {
	addSessionFlags(runCmd)
	runCmd.Flags().String("answers", "", "YAML answer script (required)")
	runCmd.Flags().Bool("json", false, "Print the report as JSON")
	runCmd.Flags().Bool("archive", false, "Save the report to the history database")
	_ = runCmd.MarkFlagRequired("answers")
}
