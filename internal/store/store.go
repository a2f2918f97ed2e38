// Package store holds the authoritative in-memory event list plus the
// read-only category and user reference data, and keeps the list
// consistent with the backend after create, update and delete actions.
package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eventdeck/eventdeck/internal/model"
	"github.com/eventdeck/eventdeck/internal/status"
	appErrors "github.com/eventdeck/eventdeck/pkg/errors"
)

// Gateway is the remote data access the store depends on.
type Gateway interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
	GetEvent(ctx context.Context, id int64) (*model.Event, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateEvent(ctx context.Context, draft model.Event) (*model.Event, error)
	UpdateEvent(ctx context.Context, id int64, event model.Event) (*model.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

// Store is the single source of truth for event data once fetched.
// Mutations to the event list are applied strictly after the
// corresponding remote call succeeds.
type Store struct {
	gateway  Gateway
	reporter *status.Reporter
	logger   *zap.Logger

	events     []model.Event
	categories []model.Category
	users      []model.User
	loading    bool
}

// New constructs a Store.
func New(gateway Gateway, reporter *status.Reporter, logger *zap.Logger) *Store {
	if reporter == nil {
		reporter = status.NewReporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{gateway: gateway, reporter: reporter, logger: logger}
}

// LoadAll fetches events, categories and users concurrently and joins
// the three before applying any of them. On any failure the store stays
// empty, the error is reported, and loading is cleared; partial success
// is never applied.
func (s *Store) LoadAll(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	var (
		events     []model.Event
		categories []model.Category
		users      []model.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.gateway.ListEvents(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.gateway.ListCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.gateway.ListUsers(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("initial fetch failed", zap.Error(err))
		s.reporter.Error(fmt.Sprintf("Error fetching data: %s", err.Error()))
		return err
	}

	s.events = events
	s.categories = categories
	s.users = users
	return nil
}

// LoadEvent fetches a single event alongside the reference data needed
// to display it. The event itself is not retained in the list; the
// detail view owns it.
func (s *Store) LoadEvent(ctx context.Context, id int64) (*model.Event, error) {
	s.loading = true
	defer func() { s.loading = false }()

	var (
		event      *model.Event
		categories []model.Category
		users      []model.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		event, err = s.gateway.GetEvent(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.gateway.ListCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.gateway.ListUsers(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("event fetch failed", zap.Int64("id", id), zap.Error(err))
		s.reporter.Error("Could not load event data")
		return nil, err
	}

	s.categories = categories
	s.users = users
	return event, nil
}

// Create persists the draft remotely and appends the server-confirmed
// record. Nothing is inserted before the backend acknowledges.
func (s *Store) Create(ctx context.Context, draft model.Event) (*model.Event, error) {
	created, err := s.gateway.CreateEvent(ctx, draft)
	if err != nil {
		s.reporter.Error(fmt.Sprintf("We encountered an issue while adding the event. Please try again. Error: %s", err.Error()))
		return nil, err
	}

	s.events = append(s.events, *created)
	s.reporter.Success(fmt.Sprintf("Your event %s has been successfully added!", created.Title))
	return created, nil
}

// Update replaces the event remotely and overwrites the stored copy
// with the server-confirmed version.
func (s *Store) Update(ctx context.Context, id int64, event model.Event) (*model.Event, error) {
	updated, err := s.gateway.UpdateEvent(ctx, id, event)
	if err != nil {
		s.reporter.Error(appErrors.FromError(err).Message)
		return nil, err
	}

	replaced := false
	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i] = *updated
			replaced = true
			break
		}
	}
	if !replaced && len(s.events) > 0 {
		// Confirmed remotely but unknown locally; the list and the
		// backend have drifted.
		s.logger.Warn("updated event missing from store", zap.Int64("id", id))
	}

	s.reporter.Success("Event successfully updated")
	return updated, nil
}

// Delete removes the event remotely, then locally.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.gateway.DeleteEvent(ctx, id); err != nil {
		s.reporter.Error(fmt.Sprintf("Error deleting event: %s", err.Error()))
		return err
	}

	kept := s.events[:0]
	for _, ev := range s.events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	s.events = kept
	s.reporter.Success("Event deleted successfully!")
	return nil
}

// Events returns the canonical event list.
func (s *Store) Events() []model.Event { return s.events }

// Categories returns the category reference data.
func (s *Store) Categories() []model.Category { return s.categories }

// Users returns the user reference data.
func (s *Store) Users() []model.User { return s.users }

// Loading reports whether an initial fetch is in flight.
func (s *Store) Loading() bool { return s.loading }

// CategoryName resolves a category id, returning false for dangling
// references so callers can exclude them from display.
func (s *Store) CategoryName(id int64) (string, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}

// Author resolves an event's createdBy reference. A missing reference
// degrades to an empty placeholder, never an error.
func (s *Store) Author(id int64) model.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return model.User{}
}
