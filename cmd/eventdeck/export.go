package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eventdeck/eventdeck/internal/filter"
	"github.com/eventdeck/eventdeck/internal/model"
	"github.com/eventdeck/eventdeck/pkg/export"
)

var (
	exportSearch     string
	exportCategories []int64
	exportFormat     string
	exportOut        string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the visible set as a printable agenda (csv or pdf)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, reporter := newStore()
		if err := st.LoadAll(cmd.Context()); err != nil {
			printBanner(reporter)
			return err
		}

		visible := filter.Visible(st.Events(), model.FilterState{
			SearchQuery:         exportSearch,
			SelectedCategoryIDs: exportCategories,
		})

		agenda := export.Agenda{
			Events:     visible,
			Categories: st.Categories(),
			Users:      st.Users(),
		}

		var (
			raw []byte
			err error
		)
		out := exportOut
		switch exportFormat {
		case "csv":
			if out == "" {
				out = "agenda.csv"
			}
			raw, err = agenda.CSV()
		case "pdf":
			if out == "" {
				out = "agenda.pdf"
			}
			raw, err = agenda.PDF("Your Events")
		default:
			return fmt.Errorf("unsupported format %q (want csv or pdf)", exportFormat)
		}
		if err != nil {
			return err
		}

		if err := os.WriteFile(out, raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("wrote %d events to %s\n", len(visible), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "case-insensitive title search")
	exportCmd.Flags().Int64SliceVar(&exportCategories, "category", nil, "category id filter (repeatable)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv or pdf")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (defaults to agenda.<format>)")
	rootCmd.AddCommand(exportCmd)
}
