package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conornaught0n/emg-energy-demo/internal/cli"
	"github.com/conornaught0n/emg-energy-demo/internal/common"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the job type catalog",
		Long:  `List job types, show their checklists, and validate catalog files.`,
	}

	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogShowCmd())
	cmd.AddCommand(catalogValidateCmd())

	return cmd
}

func catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all job types",
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Categories"),
				cli.BoldStyle.Render("Items"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 20), strings.Repeat("-", 30),
				strings.Repeat("-", 10), strings.Repeat("-", 5))

			for _, id := range cat.IDs() {
				jt := cat[id]
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", jt.ID, jt.Name, len(jt.Checklist), jt.TotalItems())
			}

			return nil
		},
	}
}

func catalogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <job-type-id>",
		Short: "Show a job type's checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			jt, ok := cat.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %q (use 'emg catalog list')", common.ErrUnknownJobType, args[0])
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s %s", jt.Icon, jt.Name)))
			fmt.Println(cli.SubtitleStyle.Render(jt.Description))

			for _, category := range jt.Checklist {
				fmt.Println(cli.BoldStyle.Render(category.Name) + cli.SubtleStyle.Render(" ("+category.ID+")"))
				for _, item := range category.Items {
					fmt.Printf("  %s\n", item.Name)
					fmt.Printf("    %s\n", cli.SubtleStyle.Render("keywords: "+strings.Join(item.Keywords, ", ")))
				}
			}

			return nil
		},
	}
}

func catalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configured catalog",
		Long: `Check the catalog invariants: unique item ids per job type and at least
one keyword per checklist item. Analysis must never see a catalog that
fails these checks.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			if err := cat.Validate(); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("Catalog OK: %d job types", len(cat))))
			return nil
		},
	}
}
