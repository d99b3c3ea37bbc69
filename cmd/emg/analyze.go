package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/conornaught0n/emg-energy-demo/internal/analysis"
	"github.com/conornaught0n/emg-energy-demo/internal/cli"
	"github.com/conornaught0n/emg-energy-demo/internal/common"
	"github.com/conornaught0n/emg-energy-demo/internal/model"
)

func analyzeCmd() *cobra.Command {
	var (
		asJSON bool
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [survey-id]",
		Short: "Analyze survey notes against the checklist",
		Long: `Run the checklist analysis over a survey's voice notes: keyword
matching with confidence scoring, completion tracking, and suggestions
for checklist items no note has addressed yet.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			if all {
				surveys, err := store.ListSurveys(ctx)
				if err != nil {
					return fmt.Errorf("failed to list surveys: %w", err)
				}
				if len(surveys) == 0 {
					fmt.Println(cli.InfoStyle.Render("No surveys stored yet."))
					return nil
				}

				bar := progressbar.Default(int64(len(surveys)), "analyzing")
				results := make(map[string]model.ProjectAnalysis, len(surveys))
				for _, survey := range surveys {
					jt, ok := cat.Get(survey.JobTypeID)
					if !ok {
						_ = bar.Add(1)
						continue
					}
					results[survey.ID] = analysis.AnalyzeProject(survey.VoiceNotes, &jt)
					_ = bar.Add(1)
				}

				if asJSON {
					return json.NewEncoder(os.Stdout).Encode(results)
				}
				for _, survey := range surveys {
					result, ok := results[survey.ID]
					if !ok {
						fmt.Printf("%s: %s\n", survey.ID,
							cli.WarningStyle.Render("unknown job type "+survey.JobTypeID))
						continue
					}
					fmt.Printf("%s  %s  %d%% complete, %d suggestions\n",
						survey.ID, survey.ProjectReference,
						result.CompletionPercentage, len(result.Suggestions))
				}
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("survey id required (or use --all)")
			}

			survey, err := store.GetSurvey(ctx, args[0])
			if err != nil {
				return err
			}

			jt, ok := cat.Get(survey.JobTypeID)
			if !ok {
				return fmt.Errorf("survey %s: %w: %q", survey.ID, common.ErrUnknownJobType, survey.JobTypeID)
			}

			result := analysis.AnalyzeProject(survey.VoiceNotes, &jt)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			printAnalysis(survey, &jt, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output machine-readable JSON")
	cmd.Flags().BoolVar(&all, "all", false, "analyze every stored survey")

	return cmd
}

func printAnalysis(survey *model.Survey, jt *model.JobType, result model.ProjectAnalysis) {
	title := survey.ProjectReference
	if title == "" {
		title = survey.ID
	}
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s %s · %s", jt.Icon, title, jt.Name)))
	fmt.Printf("%d notes · %d of %d items checked · %d%% complete\n\n",
		len(survey.VoiceNotes), len(result.CheckedItems), jt.TotalItems(), result.CompletionPercentage)

	for _, cat := range jt.Checklist {
		fmt.Println(cli.BoldStyle.Render(cat.Name))
		for _, item := range cat.Items {
			if checked, ok := result.CheckedItems[item.ID]; ok {
				fmt.Printf("  %s %s (%d%%, note %d)\n",
					cli.SuccessStyle.Render("✓"), item.Name, checked.Confidence, checked.NoteIndex+1)
			} else {
				fmt.Printf("  %s %s\n", cli.SubtleStyle.Render("✗"), cli.SubtleStyle.Render(item.Name))
			}
		}
	}

	if len(result.Suggestions) == 0 {
		fmt.Println()
		fmt.Println(cli.SuccessStyle.Render("All checklist items addressed."))
		return
	}

	fmt.Println()
	fmt.Println(cli.BoldStyle.Render("Suggestions"))
	for _, suggestion := range result.Suggestions {
		style := cli.PriorityStyle(string(suggestion.Priority))
		fmt.Printf("%s %s\n", style.Render("["+string(suggestion.Priority)+"]"), suggestion.Message)
		for _, name := range suggestion.Items {
			fmt.Printf("    - %s\n", name)
		}
	}
}
