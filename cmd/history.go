package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/abhisek/mockround/internal/screens/report"
	"github.com/abhisek/mockround/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect archived interview reports",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived interviews, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		candidate, _ := cmd.Flags().GetString("candidate")

		st, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rows, err := st.Results().List(context.Background(), store.ListOpts{Limit: limit, Candidate: candidate})
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No interviews archived yet.")
			return nil
		}

		// Header.
		fmt.Printf("%-36s  %-16s  %-19s  %-16s  %5s  %3s  %s\n",
			"Session", "Candidate", "Finished", "Status", "Score", "Qs", "Readiness")
		fmt.Println(strings.Repeat("─", 130))

		for _, r := range rows {
			fmt.Printf("%-36s  %s  %-19s  %-16s  %5.1f  %3d  %s\n",
				r.SessionID,
				fitCell(r.Candidate, 16),
				r.FinishedAt.Local().Format("2006-01-02 15:04:05"),
				r.Status,
				r.FinalScore,
				r.Answered,
				r.Readiness,
			)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Print an archived report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showLog, _ := cmd.Flags().GetBool("log")
		asJSON, _ := cmd.Flags().GetBool("json")

		st, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		repo := st.Results()
		res, err := repo.Get(ctx, args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("interview %s not found", args[0])
		}
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		if _, err := lipgloss.Println(report.Render(*res, 80)); err != nil {
			return err
		}
		if showLog {
			lines, err := repo.DecisionLog(ctx, args[0])
			if err != nil {
				return fmt.Errorf("read decision log: %w", err)
			}
			if _, err := lipgloss.Println(report.RenderLog(lines)); err != nil {
				return err
			}
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete an archived report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		err = st.Results().Delete(context.Background(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("interview %s not found", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

// openHistory opens the archive named by settings.
func openHistory(cmd *cobra.Command) (*store.Store, error) {
	f, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	return openStore(f)
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of interviews to show")
	historyListCmd.Flags().String("candidate", "", "Only show this candidate")
	historyShowCmd.Flags().Bool("log", false, "Also print the decision log")
	historyShowCmd.Flags().Bool("json", false, "Print the report as JSON")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
}

// fitCell truncates s to width terminal cells, marking the cut with
// "...", and pads it to exactly width cells.
func fitCell(s string, width int) string {
	s = ansi.Truncate(s, width, "...")
	return s + strings.Repeat(" ", max(0, width-ansi.StringWidth(s)))
}
