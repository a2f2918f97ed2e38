package main

import (
	"github.com/spf13/cobra"

	"github.com/eventdeck/eventdeck/internal/filter"
	"github.com/eventdeck/eventdeck/internal/model"
)

var (
	listSearch     string
	listCategories []int64
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List events, optionally filtered by search text and categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, reporter := newStore()
		if err := st.LoadAll(cmd.Context()); err != nil {
			printBanner(reporter)
			return err
		}

		state := model.FilterState{
			SearchQuery:         listSearch,
			SelectedCategoryIDs: listCategories,
		}
		visible := filter.Visible(st.Events(), state)
		if filter.NoMatches(visible, state) {
			reporter.Error("No events match your criteria")
		}

		printEvents(visible, st)
		printBanner(reporter)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "case-insensitive title search")
	listCmd.Flags().Int64SliceVar(&listCategories, "category", nil, "category id filter (repeatable)")
	rootCmd.AddCommand(listCmd)
}
