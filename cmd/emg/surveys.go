package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conornaught0n/emg-energy-demo/internal/cli"
)

func surveysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "surveys",
		Short: "Manage stored surveys",
	}

	cmd.AddCommand(surveysListCmd())
	cmd.AddCommand(surveysShowCmd())
	cmd.AddCommand(surveysDeleteCmd())
	cmd.AddCommand(surveysStatsCmd())

	return cmd
}

func surveysListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored surveys, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			surveys, err := store.ListSurveys(ctx)
			if err != nil {
				return err
			}

			if len(surveys) == 0 {
				fmt.Println(cli.InfoStyle.Render("No surveys stored. Sync some with 'emg serve' or add notes with 'emg notes add'."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Reference"),
				cli.BoldStyle.Render("Job Type"),
				cli.BoldStyle.Render("Notes"),
				cli.BoldStyle.Render("Created"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 36), strings.Repeat("-", 16),
				strings.Repeat("-", 18), strings.Repeat("-", 5), strings.Repeat("-", 16))

			for _, survey := range surveys {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					survey.ID, survey.ProjectReference, survey.JobTypeID,
					len(survey.VoiceNotes), survey.CreatedAt.Format("2006-01-02 15:04"))
			}

			return nil
		},
	}
}

func surveysShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <survey-id>",
		Short: "Show a survey and its notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			survey, err := store.GetSurvey(ctx, args[0])
			if err != nil {
				return err
			}

			title := survey.ProjectReference
			if title == "" {
				title = survey.ID
			}
			fmt.Println(cli.TitleStyle.Render(title))
			fmt.Printf("Job type: %s\nCreated:  %s\nModified: %s\n\n",
				survey.JobTypeID,
				survey.CreatedAt.Format("2006-01-02 15:04"),
				survey.LastModified.Format("2006-01-02 15:04"))

			if len(survey.VoiceNotes) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No voice notes captured."))
				return nil
			}

			for i, note := range survey.VoiceNotes {
				fmt.Printf("%s %s\n", cli.BoldStyle.Render(fmt.Sprintf("Note %d", i+1)),
					cli.SubtleStyle.Render(note.CapturedAt.Format("2006-01-02 15:04")))
				fmt.Printf("  %s\n", note.Transcription)
			}

			return nil
		},
	}
}

func surveysDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <survey-id>",
		Short: "Delete a survey and its notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteSurvey(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Survey deleted."))
			return nil
		},
	}
}

func surveysStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show storage statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stats, err := store.GetStats(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("Surveys:     %d\n", stats.SurveyCount)
			fmt.Printf("Voice notes: %d\n", stats.NoteCount)
			return nil
		},
	}
}
