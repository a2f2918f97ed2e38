// Package form manages the transient input state for the create and
// edit workflows and produces a validated event record for submission.
package form

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/eventdeck/eventdeck/internal/model"
	appErrors "github.com/eventdeck/eventdeck/pkg/errors"
)

// Submitter is the store-side persistence path the form invokes.
type Submitter interface {
	Create(ctx context.Context, draft model.Event) (*model.Event, error)
	Update(ctx context.Context, id int64, event model.Event) (*model.Event, error)
}

// Mode selects between the create and edit workflows.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// textFields carries the free-text inputs through struct validation.
type textFields struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Image       string `validate:"required"`
}

// Controller holds the in-progress field values. It performs no remote
// calls until Submit, and no upload: the image reference is handed
// through opaquely for the surrounding system to make durable.
type Controller struct {
	mode      Mode
	eventID   int64
	submitter Submitter
	validate  *validator.Validate

	title       string
	description string
	image       string
	startTime   model.Time
	endTime     model.Time
	categoryIDs []int64
	author      int64
}

// NewCreate builds a controller with all fields empty.
func NewCreate(submitter Submitter) *Controller {
	return &Controller{mode: ModeCreate, submitter: submitter, validate: validator.New()}
}

// NewEdit builds a controller pre-populated from an existing event.
func NewEdit(submitter Submitter, event model.Event) *Controller {
	c := &Controller{mode: ModeEdit, eventID: event.ID, submitter: submitter, validate: validator.New()}
	c.title = event.Title
	c.description = event.Description
	c.image = event.Image
	c.startTime = event.StartTime
	c.endTime = event.EndTime
	c.categoryIDs = append([]int64(nil), event.CategoryIDs...)
	c.author = event.CreatedBy
	return c
}

func (c *Controller) Mode() Mode { return c.mode }

func (c *Controller) SetTitle(title string) { c.title = title }

func (c *Controller) SetDescription(text string) { c.description = text }

func (c *Controller) SetStartTime(t model.Time) { c.startTime = t }

func (c *Controller) SetEndTime(t model.Time) { c.endTime = t }

func (c *Controller) SetAuthor(userID int64) { c.author = userID }

// SetImage replaces the image reference with the newly derived preview
// reference supplied by the asset-handling collaborator.
func (c *Controller) SetImage(ref string) { c.image = ref }

// ToggleCategory adds the id to the selection if absent, removes it if
// present.
func (c *Controller) ToggleCategory(id int64) {
	for i, existing := range c.categoryIDs {
		if existing == id {
			c.categoryIDs = append(c.categoryIDs[:i], c.categoryIDs[i+1:]...)
			return
		}
	}
	c.categoryIDs = append(c.categoryIDs, id)
}

// CategoryIDs returns the current selection.
func (c *Controller) CategoryIDs() []int64 { return c.categoryIDs }

// Submit validates the field state and invokes the create or update
// path. Invalid state fails with a validation error naming the missing
// fields and performs no remote call. On remote failure the field state
// is preserved so the user can retry; on success it resets.
func (c *Controller) Submit(ctx context.Context) (*model.Event, error) {
	if err := c.check(); err != nil {
		return nil, err
	}

	event := model.Event{
		ID:          c.eventID,
		Title:       c.title,
		Description: c.description,
		Image:       c.image,
		CreatedBy:   c.author,
		StartTime:   c.startTime,
		EndTime:     c.endTime,
		CategoryIDs: append([]int64(nil), c.categoryIDs...),
	}

	var (
		result *model.Event
		err    error
	)
	if c.mode == ModeEdit {
		result, err = c.submitter.Update(ctx, c.eventID, event)
	} else {
		result, err = c.submitter.Create(ctx, event)
	}
	if err != nil {
		return nil, err
	}

	c.reset()
	return result, nil
}

func (c *Controller) check() error {
	var missing []string

	if err := c.validate.Struct(textFields{Title: c.title, Description: c.description, Image: c.image}); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				missing = append(missing, strings.ToLower(fe.Field()[:1])+fe.Field()[1:])
			}
		} else {
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
		}
	}
	if c.startTime.IsZero() {
		missing = append(missing, "startTime")
	}
	if c.endTime.IsZero() {
		missing = append(missing, "endTime")
	}
	if len(c.categoryIDs) == 0 {
		missing = append(missing, "categoryIds")
	}
	if c.mode == ModeCreate && c.author == 0 {
		missing = append(missing, "createdBy")
	}

	if len(missing) > 0 {
		return appErrors.Clone(appErrors.ErrValidation, "missing required fields: "+strings.Join(missing, ", "))
	}

	if c.endTime.Before(c.startTime.Time) {
		return appErrors.Clone(appErrors.ErrValidation, "endTime must not precede startTime")
	}

	return nil
}

func (c *Controller) reset() {
	c.title = ""
	c.description = ""
	c.image = ""
	c.startTime = model.Time{}
	c.endTime = model.Time{}
	c.categoryIDs = nil
	c.author = 0
}
