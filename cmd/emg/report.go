package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conornaught0n/emg-energy-demo/internal/cli"
	"github.com/conornaught0n/emg-energy-demo/internal/common"
	"github.com/conornaught0n/emg-energy-demo/internal/report"
)

func reportCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "report <survey-id>",
		Short: "Draft professional report text from survey notes",
		Long: `Group a survey's voice notes by checklist category and convert each
casual observation into professional assessment findings, ready for
embedding into the report document.`,
		Args: cobra.ExactArgs(1),
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

			survey, err := store.GetSurvey(ctx, args[0])
			if err != nil {
				return err
			}

			jt, ok := cat.Get(survey.JobTypeID)
			if !ok {
				return fmt.Errorf("survey %s: %w: %q", survey.ID, common.ErrUnknownJobType, survey.JobTypeID)
			}

			drafted := report.DraftProfessionalText(survey.VoiceNotes, &jt)

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(drafted), 0600); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				fmt.Println(cli.SuccessStyle.Render("Report draft written to " + outputPath))
				return nil
			}

			fmt.Print(drafted)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write drafted text to a file")

	return cmd
}
