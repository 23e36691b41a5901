package feedback

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"threeclick/internal/domain"
)

// statusTTL is how long an outcome message stays visible.
const statusTTL = 3 * time.Second

const (
	successMsg = "Thank you for your feedback!"
	failureMsg = "Failed to send feedback. Please try again."
)

// ErrInvalid is returned when the submission fails field validation; the
// form stays open with the entered values intact.
var ErrInvalid = errors.New("feedback submission is invalid")

// Form collects one feedback submission.
type Form struct {
	sink      domain.FeedbackSink
	validate  *validator.Validate
	logger    *slog.Logger
	userAgent string
	url       string
	now       func() time.Time

	open        bool
	status      string
	statusUntil time.Time
}

// New returns a closed form. userAgent and url are stamped on every
// submission.
func New(sink domain.FeedbackSink, userAgent, url string, logger *slog.Logger) *Form {
	return &Form{
		sink:      sink,
		validate:  validator.New(),
		logger:    logger.With("component", "feedback"),
		userAgent: userAgent,
		url:       url,
		now:       time.Now,
	}
}

// Open shows the form.
func (f *Form) Open() { f.open = true }

// Close hides the form.
func (f *Form) Close() { f.open = false }

// IsOpen reports whether the form is showing.
func (f *Form) IsOpen() bool { return f.open }

// Status returns the current outcome message, or "" once it has expired.
func (f *Form) Status() string {
	if f.now().After(f.statusUntil) {
		return ""
	}
	return f.status
}

// Submit validates and posts the submission. On success the form closes; on
// failure it stays open so the user can retry. Either way a transient status
// message is set.
func (f *Form) Submit(ctx context.Context, sub domain.FeedbackSubmission) error {
	sub.Timestamp = f.now()
	sub.UserAgent = f.userAgent
	sub.URL = f.url

	if err := f.validate.Struct(sub); err != nil {
		return ErrInvalid
	}

	if err := f.sink.SendFeedback(ctx, sub); err != nil {
		f.logger.Warn("send feedback failed", "error", err)
		f.setStatus(failureMsg)
		return err
	}

	f.setStatus(successMsg)
	f.open = false
	return nil
}

func (f *Form) setStatus(msg string) {
	f.status = msg
	f.statusUntil = f.now().Add(statusTTL)
}
