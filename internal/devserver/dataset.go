package devserver

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/eventdeck/eventdeck/internal/model"
)

// Dataset is the file-backed resource store behind the dev server. It
// mirrors the db.json layout the original backend keeps: one document
// with events, categories and users collections. Categories and users
// are read-only.
type Dataset struct {
	mu   sync.Mutex
	path string

	events     []model.Event
	categories []model.Category
	users      []model.User
}

type datasetFile struct {
	Events     []model.Event    `json:"events"`
	Categories []model.Category `json:"categories"`
	Users      []model.User     `json:"users"`
}

// OpenDataset loads the data file, seeding a fresh one when it does not
// exist yet.
func OpenDataset(path string) (*Dataset, error) {
	d := &Dataset{path: path}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		d.events, d.categories, d.users = seedData()
		if err := d.save(); err != nil {
			return nil, err
		}
		return d, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var file datasetFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", path, err)
	}
	d.events = file.Events
	d.categories = file.Categories
	d.users = file.Users
	return d, nil
}

// Events returns a copy of the event collection.
func (d *Dataset) Events() []model.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.Event(nil), d.events...)
}

// Event looks up a single event by id.
func (d *Dataset) Event(id int64) (model.Event, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, ev := range d.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return model.Event{}, false
}

// Categories returns a copy of the category collection.
func (d *Dataset) Categories() []model.Category {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.Category(nil), d.categories...)
}

// Users returns a copy of the user collection.
func (d *Dataset) Users() []model.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.User(nil), d.users...)
}

// CreateEvent appends the draft, assigning the next free id when the
// draft carries none. A duplicate non-zero id is a conflict.
func (d *Dataset) CreateEvent(draft model.Event) (model.Event, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if draft.ID == 0 {
		var max int64
		for _, ev := range d.events {
			if ev.ID > max {
				max = ev.ID
			}
		}
		draft.ID = max + 1
	} else {
		for _, ev := range d.events {
			if ev.ID == draft.ID {
				return model.Event{}, fmt.Errorf("event %d already exists", draft.ID)
			}
		}
	}

	d.events = append(d.events, draft)
	if err := d.save(); err != nil {
		d.events = d.events[:len(d.events)-1]
		return model.Event{}, err
	}
	return draft, nil
}

// ReplaceEvent overwrites the event with the given id. The second
// return value is false when the id is unknown.
func (d *Dataset) ReplaceEvent(id int64, event model.Event) (model.Event, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.events {
		if d.events[i].ID == id {
			previous := d.events[i]
			event.ID = id
			d.events[i] = event
			if err := d.save(); err != nil {
				d.events[i] = previous
				return model.Event{}, true, err
			}
			return event, true, nil
		}
	}
	return model.Event{}, false, nil
}

// DeleteEvent removes the event with the given id.
func (d *Dataset) DeleteEvent(id int64) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.events {
		if d.events[i].ID == id {
			removed := d.events[i]
			d.events = append(d.events[:i], d.events[i+1:]...)
			if err := d.save(); err != nil {
				d.events = append(d.events, removed)
				return true, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (d *Dataset) save() error {
	raw, err := json.MarshalIndent(datasetFile{
		Events:     d.events,
		Categories: d.categories,
		Users:      d.users,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	if err := os.WriteFile(d.path, raw, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	return nil
}

func seedData() ([]model.Event, []model.Category, []model.User) {
	start1, _ := model.ParseTime("2026-09-12T19:00:00Z")
	end1, _ := model.ParseTime("2026-09-12T23:00:00Z")
	start2, _ := model.ParseTime("2026-09-20T10:00")
	end2, _ := model.ParseTime("2026-09-20T17:00")

	categories := []model.Category{
		{ID: 1, Name: "sports"},
		{ID: 2, Name: "games"},
		{ID: 3, Name: "relaxation"},
	}
	users := []model.User{
		{ID: 1, Name: "Ignacio Doe", Image: "https://i.pravatar.cc/150?img=12"},
		{ID: 2, Name: "Jane Bennett", Image: "https://i.pravatar.cc/150?img=34"},
	}
	events := []model.Event{
		{
			ID:          1,
			CreatedBy:   1,
			Title:       "Indoor Climbing",
			Description: "Bouldering session for all levels.",
			Image:       "https://images.unsplash.com/photo-1564769625905-50e93615e769",
			CategoryIDs: []int64{1},
			StartTime:   start1,
			EndTime:     end1,
		},
		{
			ID:          2,
			CreatedBy:   2,
			Title:       "Board Game Afternoon",
			Description: "Bring your favourite game, coffee provided.",
			Image:       "https://images.unsplash.com/photo-1610890716171-6b1bb98ffd09",
			CategoryIDs: []int64{2, 3},
			StartTime:   start2,
			EndTime:     end2,
		},
	}
	return events, categories, users
}
