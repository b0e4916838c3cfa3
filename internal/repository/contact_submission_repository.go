package repository

import (
	"context"
	"fmt"
	"time"

	"portfolio-api/internal/database"
	"portfolio-api/internal/domain/contact"

	"github.com/google/uuid"
)

// sqliteTimeLayout is fixed-width so that text ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

type ContactSubmissionRepository interface {
	contact.Sink
	ListRecent(ctx context.Context, limit int) ([]contact.Submission, error)
}

// SQLContactSubmissionRepository stores submissions in the contact_submissions
// table of either supported dialect.
type SQLContactSubmissionRepository struct {
	db database.DB
}

func NewSQLContactSubmissionRepository(db database.DB) *SQLContactSubmissionRepository {
	return &SQLContactSubmissionRepository{db: db}
}

func (r *SQLContactSubmissionRepository) Append(ctx context.Context, s contact.Submission) error {
	d := r.db.Dialect()
	q := fmt.Sprintf(
		`INSERT INTO contact_submissions (id, name, email, subject, message, submitted_at) VALUES (%s, %s, %s, %s, %s, %s)`,
		d.Placeholder(1), d.Placeholder(2), d.Placeholder(3), d.Placeholder(4), d.Placeholder(5), d.Placeholder(6),
	)

	var submittedAt any = s.SubmittedAt.UTC()
	if d == database.DialectSQLite {
		submittedAt = s.SubmittedAt.UTC().Format(sqliteTimeLayout)
	}

	if _, err := r.db.Exec(ctx, q, s.ID.String(), s.Name, s.Email, s.Subject, s.Message, submittedAt); err != nil {
		return fmt.Errorf("%w: insert contact submission: %v", contact.ErrSinkFailure, err)
	}
	return nil
}

// ListRecent returns up to limit submissions, newest first.
func (r *SQLContactSubmissionRepository) ListRecent(ctx context.Context, limit int) ([]contact.Submission, error) {
	if limit <= 0 {
		limit = 20
	}
	d := r.db.Dialect()
	q := `SELECT id, name, email, subject, message, submitted_at FROM contact_submissions ORDER BY submitted_at DESC LIMIT ` + d.Placeholder(1)

	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]contact.Submission, 0)
	for rows.Next() {
		var (
			s  contact.Submission
			id string
		)
		if d == database.DialectSQLite {
			var at string
			if err := rows.Scan(&id, &s.Name, &s.Email, &s.Subject, &s.Message, &at); err != nil {
				return nil, err
			}
			if s.SubmittedAt, err = time.Parse(sqliteTimeLayout, at); err != nil {
				return nil, fmt.Errorf("parse submitted_at: %w", err)
			}
		} else {
			if err := rows.Scan(&id, &s.Name, &s.Email, &s.Subject, &s.Message, &s.SubmittedAt); err != nil {
				return nil, err
			}
		}
		if s.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse submission id: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
