package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	appErrors "github.com/eventdeck/eventdeck/pkg/errors"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single event with author and categories",
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
				// Terminal display state, not a retryable fault.
				fmt.Println("Event not found")
				return nil
			}
			printBanner(reporter)
			return err
		}

		fmt.Printf("%s\n%s\n\n", event.Title, event.Description)
		fmt.Printf("Start:      %s\n", event.StartTime)
		fmt.Printf("End:        %s\n", event.EndTime)
		fmt.Printf("Image:      %s\n", event.Image)

		var cats string
		for _, cid := range event.CategoryIDs {
			name, ok := st.CategoryName(cid)
			if !ok {
				continue
			}
			if cats != "" {
				cats += ", "
			}
			cats += name
		}
		fmt.Printf("Categories: %s\n", cats)
		fmt.Printf("Author:     %s\n", st.Author(event.CreatedBy).Name)

		printBanner(reporter)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
