package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/conornaught0n/emg-energy-demo/internal/cli"
	"github.com/conornaught0n/emg-energy-demo/internal/common"
	"github.com/conornaught0n/emg-energy-demo/internal/model"
)

func notesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage survey voice notes",
	}

	cmd.AddCommand(notesAddCmd())

	return cmd
}

func notesAddCmd() *cobra.Command {
	var (
		surveyRef string
		jobTypeID string
	)

	cmd := &cobra.Command{
		Use:   "add <survey-id> <transcription...>",
		Short: "Append a voice note transcription to a survey",
		Long: `Append a transcribed observation to a survey. If the survey does not
exist yet it is created, using --job-type (required in that case) and
--reference.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			surveyID := args[0]
			transcription := strings.Join(args[1:], " ")

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			note := model.VoiceNote{
				Transcription: transcription,
				CapturedAt:    time.Now().UTC(),
			}

			err = store.AddNote(ctx, surveyID, note)
			if err == nil {
				fmt.Println(cli.SuccessStyle.Render("Note added."))
				return nil
			}
			if !errors.Is(err, common.ErrNotFound) {
				return err
			}

			// Survey doesn't exist yet; create it if we know the job type.
			if jobTypeID == "" {
				return fmt.Errorf("survey %s does not exist; pass --job-type to create it", surveyID)
			}

			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			if _, ok := cat.Get(jobTypeID); !ok {
				return fmt.Errorf("%w: %q (use 'emg catalog list')", common.ErrUnknownJobType, jobTypeID)
			}

			survey := &model.Survey{
				ID:               surveyID,
				ProjectReference: surveyRef,
				JobTypeID:        jobTypeID,
				VoiceNotes:       []model.VoiceNote{note},
			}
			if err := store.SaveSurvey(ctx, survey); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Survey created and note added."))
			return nil
		},
	}

	cmd.Flags().StringVar(&jobTypeID, "job-type", "", "job type id when creating a new survey")
	cmd.Flags().StringVar(&surveyRef, "reference", "", "project reference when creating a new survey")

	return cmd
}
