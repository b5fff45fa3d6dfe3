package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mockround/internal/catalog"
	"github.com/abhisek/mockround/internal/interview"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse and validate question banks",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions (optionally filtered by difficulty or skill)",
	RunE: func(cmd *cobra.Command, args []string) error {
		diffVal, _ := cmd.Flags().GetString("difficulty")
		skill, _ := cmd.Flags().GetString("skill")
		path, _ := cmd.Flags().GetString("catalog")

		f, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if path == "" {
			path = f.Catalog
		}
		cat, err := loadCatalog(path)
		if err != nil {
			return err
		}

		var questions []interview.Question
		if diffVal != "" {
			d, err := interview.ParseDifficulty(diffVal)
			if err != nil {
				return err
			}
			questions = cat.Filter(d, skill)
		} else {
			for _, d := range interview.Difficulties {
				questions = append(questions, cat.Filter(d, skill)...)
			}
		}
		if len(questions) == 0 {
			return fmt.Errorf("no questions match")
		}

		// Header.
		fmt.Printf("%-8s  %-6s  %-16s  %5s  %s\n", "ID", "Tier", "Skill", "Limit", "Prompt")
		fmt.Println(strings.Repeat("─", 100))

		for _, q := range questions {
			prompt := q.Prompt
			if len(prompt) > 56 {
				prompt = prompt[:53] + "..."
			}
			fmt.Printf("%-8s  %-6s  %-16s  %4ds  %s\n",
				q.ID, q.Difficulty, q.Skill, q.TimeLimitSeconds, prompt)
		}

		fmt.Printf("\n%d questions from %s\n", len(questions), cat.Source())
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a question bank against the catalog schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(args[0])
		if err != nil {
			return err
		}

		counts := cat.CountByDifficulty()
		fmt.Printf("ok: %d questions (easy %d, medium %d, hard %d) across %d skills\n",
			cat.Len(),
			counts[interview.Easy], counts[interview.Medium], counts[interview.Hard],
			len(cat.Skills()))
		for _, d := range interview.Difficulties {
			if counts[d] == 0 {
				fmt.Printf("note: no %s questions; sessions reaching that tier will complete early\n", d)
			}
		}
		return nil
	},
}

func init() {
	catalogListCmd.Flags().StringP("difficulty", "d", "", "Filter by difficulty (easy, medium, hard)")
	catalogListCmd.Flags().StringP("skill", "s", "", "Filter by exact skill name")
	catalogListCmd.Flags().String("catalog", "", "Question bank JSON file (built-in bank when unset)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}
