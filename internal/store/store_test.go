package store

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eventdeck/eventdeck/internal/model"
	"github.com/eventdeck/eventdeck/internal/status"
	appErrors "github.com/eventdeck/eventdeck/pkg/errors"
)

type mockGateway struct {
	events     []model.Event
	categories []model.Category
	users      []model.User

	listEventsErr error
	categoriesErr error
	usersErr      error

	getResp *model.Event
	getErr  error

	createResp *model.Event
	createErr  error
	updateResp *model.Event
	updateErr  error
	deleteErr  error

	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *mockGateway) ListEvents(ctx context.Context) ([]model.Event, error) {
	return m.events, m.listEventsErr
}

func (m *mockGateway) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	return m.getResp, m.getErr
}

func (m *mockGateway) ListCategories(ctx context.Context) ([]model.Category, error) {
	return m.categories, m.categoriesErr
}

func (m *mockGateway) ListUsers(ctx context.Context) ([]model.User, error) {
	return m.users, m.usersErr
}

func (m *mockGateway) CreateEvent(ctx context.Context, draft model.Event) (*model.Event, error) {
	m.createCalls++
	return m.createResp, m.createErr
}

func (m *mockGateway) UpdateEvent(ctx context.Context, id int64, event model.Event) (*model.Event, error) {
	m.updateCalls++
	return m.updateResp, m.updateErr
}

func (m *mockGateway) DeleteEvent(ctx context.Context, id int64) error {
	m.deleteCalls++
	return m.deleteErr
}

func TestLoadAllPopulatesStore(t *testing.T) {
	gw := &mockGateway{
		events:     []model.Event{{ID: 1, Title: "Jazz Night"}},
		categories: []model.Category{{ID: 10, Name: "music"}},
		users:      []model.User{{ID: 5, Name: "Jane"}},
	}
	reporter := status.NewReporter()
	s := New(gw, reporter, zap.NewNop())

	require.NoError(t, s.LoadAll(context.Background()))
	assert.Len(t, s.Events(), 1)
	assert.Len(t, s.Categories(), 1)
	assert.Len(t, s.Users(), 1)
	assert.False(t, s.Loading())
	assert.Nil(t, reporter.Current())
}

func TestLoadAllFailureLeavesStoreEmpty(t *testing.T) {
	gw := &mockGateway{
		events:     []model.Event{{ID: 1}},
		categories: []model.Category{{ID: 10}},
		usersErr:   appErrors.Clone(appErrors.ErrRemote, "users unavailable"),
	}
	reporter := status.NewReporter()
	s := New(gw, reporter, zap.NewNop())

	err := s.LoadAll(context.Background())
	require.Error(t, err)

	// Partial success is never applied.
	assert.Empty(t, s.Events())
	assert.Empty(t, s.Categories())
	assert.False(t, s.Loading())

	msg := reporter.Current()
	require.NotNil(t, msg)
	assert.Equal(t, status.KindError, msg.Kind)
	assert.Equal(t, "Error fetching data: users unavailable", msg.Text)
}

func TestLoadEvent(t *testing.T) {
	gw := &mockGateway{
		getResp:    &model.Event{ID: 3, Title: "Art Fair"},
		categories: []model.Category{{ID: 20, Name: "art"}},
		users:      []model.User{{ID: 2, Name: "Ignacio"}},
	}
	s := New(gw, nil, zap.NewNop())

	event, err := s.LoadEvent(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Art Fair", event.Title)
	assert.Len(t, s.Categories(), 1)
	assert.Len(t, s.Users(), 1)
}

func TestLoadEventNotFound(t *testing.T) {
	gw := &mockGateway{getErr: appErrors.Clone(appErrors.ErrNotFound, "Event not found")}
	reporter := status.NewReporter()
	s := New(gw, reporter, zap.NewNop())

	_, err := s.LoadEvent(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))

	msg := reporter.Current()
	require.NotNil(t, msg)
	assert.Equal(t, "Could not load event data", msg.Text)
}

func TestCreateAppendsConfirmedRecord(t *testing.T) {
	confirmed := &model.Event{ID: 7, Title: "Demo", Description: "D", CreatedBy: 5, CategoryIDs: []int64{10}}
	gw := &mockGateway{createResp: confirmed}
	reporter := status.NewReporter()
	s := New(gw, reporter, zap.NewNop())

	created, err := s.Create(context.Background(), model.Event{Title: "Demo"})
	require.NoError(t, err)
	assert.Equal(t, confirmed, created)

	require.Len(t, s.Events(), 1)
	assert.Equal(t, int64(7), s.Events()[0].ID)
	assert.Equal(t, "D", s.Events()[0].Description)

	msg := reporter.Current()
	require.NotNil(t, msg)
	assert.Equal(t, status.KindSuccess, msg.Kind)
	assert.Equal(t, "Your event Demo has been successfully added!", msg.Text)
}

func TestCreateFailureDoesNotMutateList(t *testing.T) {
	gw := &mockGateway{createErr: appErrors.Clone(appErrors.ErrRemote, "boom")}
	reporter := status.NewReporter()
	s := New(gw, reporter, zap.NewNop())

	_, err := s.Create(context.Background(), model.Event{Title: "Demo"})
	require.Error(t, err)
	assert.Empty(t, s.Events())

	msg := reporter.Current()
	require.NotNil(t, msg)
	assert.Equal(t, status.KindError, msg.Kind)
}

func TestUpdateReplacesStoredEvent(t *testing.T) {
	gw := &mockGateway{
		events:     []model.Event{{ID: 1, Title: "Old"}, {ID: 2, Title: "Other"}},
		categories: []model.Category{},
		users:      []model.User{},
		updateResp: &model.Event{ID: 1, Title: "New"},
	}
	reporter := status.NewReporter()
	s := New(gw, reporter, zap.NewNop())
	require.NoError(t, s.LoadAll(context.Background()))

	updated, err := s.Update(context.Background(), 1, model.Event{ID: 1, Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)

	require.Len(t, s.Events(), 2)
	assert.Equal(t, "New", s.Events()[0].Title)
	assert.Equal(t, "Other", s.Events()[1].Title)

	msg := reporter.Current()
	require.NotNil(t, msg)
	assert.Equal(t, "Event successfully updated", msg.Text)
}

func TestUpdateRejectedLeavesStoreUnchanged(t *testing.T) {
	gw := &mockGateway{
		events:    []model.Event{{ID: 1, Title: "Old"}},
		updateErr: appErrors.New(appErrors.ErrRemote.Code, http.StatusNotFound, "not found"),
	}
	reporter := status.NewReporter()
	s := New(gw, reporter, zap.NewNop())
	require.NoError(t, s.LoadAll(context.Background()))

	_, err := s.Update(context.Background(), 1, model.Event{ID: 1, Title: "New"})
	require.Error(t, err)
	assert.Equal(t, "Old", s.Events()[0].Title)

	msg := reporter.Current()
	require.NotNil(t, msg)
	assert.Equal(t, status.KindError, msg.Kind)
	assert.Equal(t, "not found", msg.Text)
}

func TestDeleteRemovesEvent(t *testing.T) {
	gw := &mockGateway{events: []model.Event{{ID: 1}, {ID: 2}}}
	reporter := status.NewReporter()
	s := New(gw, reporter, zap.NewNop())
	require.NoError(t, s.LoadAll(context.Background()))

	require.NoError(t, s.Delete(context.Background(), 1))
	require.Len(t, s.Events(), 1)
	assert.Equal(t, int64(2), s.Events()[0].ID)

	msg := reporter.Current()
	require.NotNil(t, msg)
	assert.Equal(t, "Event deleted successfully!", msg.Text)
}

func TestDeleteFailureKeepsEvent(t *testing.T) {
	gw := &mockGateway{
		events:    []model.Event{{ID: 1}},
		deleteErr: appErrors.Clone(appErrors.ErrRemote, "refused"),
	}
	reporter := status.NewReporter()
	s := New(gw, reporter, zap.NewNop())
	require.NoError(t, s.LoadAll(context.Background()))

	require.Error(t, s.Delete(context.Background(), 1))
	assert.Len(t, s.Events(), 1)
	assert.Equal(t, "Error deleting event: refused", reporter.Current().Text)
}

func TestReferenceLookups(t *testing.T) {
	gw := &mockGateway{
		events:     []model.Event{},
		categories: []model.Category{{ID: 10, Name: "music"}},
		users:      []model.User{{ID: 5, Name: "Jane"}},
	}
	s := New(gw, nil, zap.NewNop())
	require.NoError(t, s.LoadAll(context.Background()))

	name, ok := s.CategoryName(10)
	assert.True(t, ok)
	assert.Equal(t, "music", name)

	_, ok = s.CategoryName(99)
	assert.False(t, ok)

	assert.Equal(t, "Jane", s.Author(5).Name)
	assert.Equal(t, model.User{}, s.Author(99))
}
