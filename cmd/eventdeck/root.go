package main

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eventdeck/eventdeck/internal/gateway"
	"github.com/eventdeck/eventdeck/internal/model"
	"github.com/eventdeck/eventdeck/internal/status"
	"github.com/eventdeck/eventdeck/internal/store"
	"github.com/eventdeck/eventdeck/pkg/config"
	"github.com/eventdeck/eventdeck/pkg/logger"
)

var (
	cfg  *config.Config
	logr *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "eventdeck",
	Short:         "Browse and manage events against a REST backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logr, err = logger.New(cfg)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logr != nil {
			_ = logr.Sync()
		}
	},
}

// newStore wires a gateway-backed store with a fresh reporter, one per
// command invocation (the store is page-scoped by design).
func newStore() (*store.Store, *status.Reporter) {
	client := gateway.New(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout}, logr)
	reporter := status.NewReporter()
	return store.New(client, reporter, logr), reporter
}

// printBanner writes the reporter's current message, if any.
func printBanner(reporter *status.Reporter) {
	msg := reporter.Current()
	if msg == nil {
		return
	}
	out := os.Stdout
	if msg.Kind == status.KindError {
		out = os.Stderr
	}
	fmt.Fprintf(out, "[%s] %s\n", msg.Kind, msg.Text)
}

// printEvents renders an event table with category names resolved.
func printEvents(events []model.Event, st *store.Store) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTART\tEND\tCATEGORIES\tAUTHOR")
	for _, ev := range events {
		var cats string
		for _, id := range ev.CategoryIDs {
			name, ok := st.CategoryName(id)
			if !ok {
				continue
			}
			if cats != "" {
				cats += ", "
			}
			cats += name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			ev.ID, ev.Title, ev.StartTime, ev.EndTime, cats, st.Author(ev.CreatedBy).Name)
	}
	_ = w.Flush()
}
