package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eventdeck/eventdeck/internal/form"
	"github.com/eventdeck/eventdeck/internal/model"
	appErrors "github.com/eventdeck/eventdeck/pkg/errors"
)

var (
	editTitle       string
	editDescription string
	editImage       string
	editStart       string
	editEnd         string
	editAuthor      int64
	editCategories  []int64
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid event id %q", args[0])
		}

		st, reporter := newStore()
		event, err := st.LoadEvent(cmd.Context(), id)
		if err != nil {
			if appErrors.IsNotFound(err) {
				fmt.Println("Event not found")
				return nil
			}
			printBanner(reporter)
			return err
		}

		ctl := form.NewEdit(st, *event)
		flags := cmd.Flags()
		if flags.Changed("title") {
			ctl.SetTitle(editTitle)
		}
		if flags.Changed("description") {
			ctl.SetDescription(editDescription)
		}
		if flags.Changed("image") {
			ctl.SetImage(editImage)
		}
		if flags.Changed("author") {
			ctl.SetAuthor(editAuthor)
		}
		if flags.Changed("start") {
			start, err := model.ParseTime(editStart)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			ctl.SetStartTime(start)
		}
		if flags.Changed("end") {
			end, err := model.ParseTime(editEnd)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}
			ctl.SetEndTime(end)
		}
		if flags.Changed("category") {
			for _, cid := range editCategories {
				ctl.ToggleCategory(cid)
			}
		}

		if _, err := ctl.Submit(cmd.Context()); err != nil {
			if appErrors.IsValidation(err) {
				return err
			}
			printBanner(reporter)
			return err
		}

		printBanner(reporter)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "event title")
	editCmd.Flags().StringVar(&editDescription, "description", "", "event description")
	editCmd.Flags().StringVar(&editImage, "image", "", "image reference")
	editCmd.Flags().StringVar(&editStart, "start", "", "start time (RFC3339 or YYYY-MM-DDTHH:MM)")
	editCmd.Flags().StringVar(&editEnd, "end", "", "end time (RFC3339 or YYYY-MM-DDTHH:MM)")
	editCmd.Flags().Int64Var(&editAuthor, "author", 0, "author user id")
	editCmd.Flags().Int64SliceVar(&editCategories, "category", nil, "toggle category id (repeatable)")
	rootCmd.AddCommand(editCmd)
}
