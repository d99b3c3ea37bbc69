package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/conornaught0n/emg-energy-demo/internal/cli"
	"github.com/conornaught0n/emg-energy-demo/internal/tui"
)

func reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Browse surveys and their analysis interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			surveys, err := store.ListSurveys(ctx)
			if err != nil {
				return err
			}
			if len(surveys) == 0 {
				fmt.Println(cli.InfoStyle.Render("No surveys to review."))
				return nil
			}

			program := tea.NewProgram(tui.NewReviewModel(surveys, cat), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("review UI failed: %w", err)
			}

			return nil
		},
	}
}
