package contact

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is how submission times are written to row stores.
const TimestampLayout = "2006-01-02 15:04:05"

var (
	ErrSinkNotConfigured = errors.New("submission sink not configured")
	ErrSinkFailure       = errors.New("submission sink failure")
)

// Submission is a contact-form entry. It is immutable once created and is
// only ever appended to a Sink.
type Submission struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Subject     string
	Message     string
	SubmittedAt time.Time
}

// Row is the column order used by spreadsheet-like stores.
func (s Submission) Row() []any {
	return []any{
		s.SubmittedAt.Format(TimestampLayout),
		s.Name,
		s.Email,
		s.Subject,
		s.Message,
	}
}

type Sink interface {
	Append(ctx context.Context, s Submission) error
}
