package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-playground/validator/v10"

	"threeclick/internal/api"
	"threeclick/internal/domain"
)

// Step identifies the wizard position.
type Step int

const (
	StepBusinessInfo Step = 1
	StepServices     Step = 2
	StepReview       Step = 3
)

var (
	// ErrWrongStep is returned when an action is invoked outside the step
	// that owns it.
	ErrWrongStep = errors.New("action not available on this step")

	// ErrMissingFields blocks the step 1 -> 2 transition while any required
	// business-info field is empty.
	ErrMissingFields = errors.New("all business info fields are required")

	// ErrSubmitted is returned for any action after a successful submit.
	ErrSubmitted = errors.New("wizard already submitted")
)

const submitFailedMsg = "Failed to create website"

// BusinessInfo carries the step 1 fields.
type BusinessInfo struct {
	BusinessName string
	Phone        string
	Email        string
	Address      string
	Location     string
}

// Wizard drives one website creation. Create it, walk the steps, submit,
// throw it away.
type Wizard struct {
	creator  domain.WebsiteCreator
	validate *validator.Validate
	logger   *slog.Logger

	step      Step
	draft     domain.WebsiteDraft
	submitted bool
	created   domain.CreateWebsiteResponse
	err       string
}

// New returns a Wizard on step 1 with the default draft: empty business info,
// no services, Mon-Fri/Sat defaults with Sunday closed, and the stock
// template.
func New(creator domain.WebsiteCreator, logger *slog.Logger) *Wizard {
	return &Wizard{
		creator:  creator,
		validate: validator.New(),
		logger:   logger.With("component", "builder"),
		step:     StepBusinessInfo,
		draft:    domain.NewWebsiteDraft(),
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Draft returns a copy of the current draft for review rendering.
func (w *Wizard) Draft() domain.WebsiteDraft {
	d := w.draft
	d.Services = slices.Clone(w.draft.Services)
	hours := domain.BusinessHours{}
	for day, h := range w.draft.BusinessHours {
		hours[day] = h
	}
	d.BusinessHours = hours
	return d
}

// Err returns the last submit failure message, or "".
func (w *Wizard) Err() string { return w.err }

// Submitted reports whether the wizard reached its terminal state.
func (w *Wizard) Submitted() bool { return w.submitted }

// Created returns the server's creation response; only meaningful once
// Submitted is true.
func (w *Wizard) Created() domain.CreateWebsiteResponse { return w.created }

// SetBusinessInfo fills the step 1 fields. Step 1 only.
func (w *Wizard) SetBusinessInfo(info BusinessInfo) error {
	if w.submitted {
		return ErrSubmitted
	}
	if w.step != StepBusinessInfo {
		return ErrWrongStep
	}
	w.draft.BusinessName = info.BusinessName
	w.draft.Phone = info.Phone
	w.draft.Email = info.Email
	w.draft.Address = info.Address
	w.draft.Location = info.Location
	return nil
}

// AddService appends a service. Adding a value already present is a no-op,
// so the service list behaves as an ordered set. Step 2 only.
func (w *Wizard) AddService(service string) error {
	if w.submitted {
		return ErrSubmitted
	}
	if w.step != StepServices {
		return ErrWrongStep
	}
	if service == "" || slices.Contains(w.draft.Services, service) {
		return nil
	}
	w.draft.Services = append(w.draft.Services, service)
	return nil
}

// RemoveService deletes a service by exact value match. Step 2 only.
func (w *Wizard) RemoveService(service string) error {
	if w.submitted {
		return ErrSubmitted
	}
	if w.step != StepServices {
		return ErrWrongStep
	}
	w.draft.Services = slices.DeleteFunc(w.draft.Services, func(s string) bool {
		return s == service
	})
	return nil
}

// SetHours overwrites one weekday's open/close strings. The values are free
// text; "Closed" is a convention, not a validated format. Step 2 only.
func (w *Wizard) SetHours(day string, hours domain.DayHours) error {
	if w.submitted {
		return ErrSubmitted
	}
	if w.step != StepServices {
		return ErrWrongStep
	}
	if !slices.Contains(domain.Weekdays, day) {
		return fmt.Errorf("unknown weekday %q", day)
	}
	w.draft.BusinessHours[day] = hours
	return nil
}

// Next advances one step. Leaving step 1 requires every business-info field
// to be non-empty; no server call happens on any transition.
func (w *Wizard) Next() error {
	if w.submitted {
		return ErrSubmitted
	}
	switch w.step {
	case StepBusinessInfo:
		if err := w.validate.StructPartial(w.draft,
			"BusinessName", "Phone", "Email", "Address", "Location"); err != nil {
			return ErrMissingFields
		}
		w.step = StepServices
	case StepServices:
		w.step = StepReview
	default:
		return ErrWrongStep
	}
	return nil
}

// Back regresses one step. Previously entered data is kept.
func (w *Wizard) Back() error {
	if w.submitted {
		return ErrSubmitted
	}
	if w.step == StepBusinessInfo {
		return ErrWrongStep
	}
	w.step--
	return nil
}

// Submit sends the full draft plus the authenticated user's ID. On success
// the wizard is terminal and the creation response is available via Created.
// On failure the wizard stays on step 3 with Err set, ready for the user to
// resubmit; nothing is retried automatically.
func (w *Wizard) Submit(ctx context.Context, user domain.User) (domain.CreateWebsiteResponse, error) {
	if w.submitted {
		return domain.CreateWebsiteResponse{}, ErrSubmitted
	}
	if w.step != StepReview {
		return domain.CreateWebsiteResponse{}, ErrWrongStep
	}
	w.err = ""

	resp, err := w.creator.CreateWebsite(ctx, domain.CreateWebsiteRequest{
		WebsiteDraft: w.draft,
		UserID:       user.ID,
	})
	if err != nil {
		w.err = submitErrMessage(err)
		w.logger.Warn("create website failed", "error", err)
		return domain.CreateWebsiteResponse{}, err
	}

	w.submitted = true
	w.created = resp
	w.logger.Info("website created", "website_id", resp.ID)
	return resp, nil
}

func submitErrMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return submitFailedMsg
}
