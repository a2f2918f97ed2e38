package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eventdeck/eventdeck/internal/form"
	"github.com/eventdeck/eventdeck/internal/model"
	appErrors "github.com/eventdeck/eventdeck/pkg/errors"
)

var (
	createTitle       string
	createDescription string
	createImage       string
	createStart       string
	createEnd         string
	createAuthor      int64
	createCategories  []int64
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new event",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, reporter := newStore()

		ctl := form.NewCreate(st)
		ctl.SetTitle(createTitle)
		ctl.SetDescription(createDescription)
		ctl.SetImage(createImage)
		ctl.SetAuthor(createAuthor)
		for _, id := range createCategories {
			ctl.ToggleCategory(id)
		}

		start, err := model.ParseTime(createStart)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		end, err := model.ParseTime(createEnd)
		if err != nil {
			return fmt.Errorf("--end: %w", err)
		}
		ctl.SetStartTime(start)
		ctl.SetEndTime(end)

		created, err := ctl.Submit(cmd.Context())
		if err != nil {
			if appErrors.IsValidation(err) {
				// Field-level failure; the global banner stays empty.
				return err
			}
			printBanner(reporter)
			return err
		}

		fmt.Printf("created event %d\n", created.ID)
		printBanner(reporter)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "event title")
	createCmd.Flags().StringVar(&createDescription, "description", "", "event description")
	createCmd.Flags().StringVar(&createImage, "image", "", "image reference")
	createCmd.Flags().StringVar(&createStart, "start", "", "start time (RFC3339 or YYYY-MM-DDTHH:MM)")
	createCmd.Flags().StringVar(&createEnd, "end", "", "end time (RFC3339 or YYYY-MM-DDTHH:MM)")
	createCmd.Flags().Int64Var(&createAuthor, "author", 0, "author user id")
	createCmd.Flags().Int64SliceVar(&createCategories, "category", nil, "category id (repeatable)")
	rootCmd.AddCommand(createCmd)
}
