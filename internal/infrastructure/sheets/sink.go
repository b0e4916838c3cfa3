package sheets

import (
	"context"
	"fmt"
	"strings"

	"portfolio-api/internal/domain/contact"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const DefaultRange = "Sheet1!A:E"

type Config struct {
	SpreadsheetID   string
	Range           string
	CredentialsJSON string
}

// Sink appends contact submissions as rows of a Google spreadsheet.
type Sink struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	rng           string
	logger        *zap.Logger
}

// NewFromServiceAccount builds a Sink authenticated with service-account JSON.
// Missing settings yield contact.ErrSinkNotConfigured.
func NewFromServiceAccount(ctx context.Context, cfg Config, logger *zap.Logger) (*Sink, error) {
	var missing []string
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		missing = append(missing, "GOOGLE_SHEET_ID")
	}
	if strings.TrimSpace(cfg.CredentialsJSON) == "" {
		missing = append(missing, "GOOGLE_APPLICATION_CREDENTIALS_JSON")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", contact.ErrSinkNotConfigured, strings.Join(missing, ", "))
	}

	return New(ctx, cfg.SpreadsheetID, cfg.Range, logger,
		option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
}

func New(ctx context.Context, spreadsheetID, rng string, logger *zap.Logger, opts ...option.ClientOption) (*Sink, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(rng) == "" {
		rng = DefaultRange
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: sheets service: %v", contact.ErrSinkNotConfigured, err)
	}
	return &Sink{svc: svc, spreadsheetID: strings.TrimSpace(spreadsheetID), rng: rng, logger: logger}, nil
}

func (s *Sink) Append(ctx context.Context, sub contact.Submission) error {
	body := &sheetsapi.ValueRange{Values: [][]any{sub.Row()}}

	res, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.rng, body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: sheets append: %v", contact.ErrSinkFailure, err)
	}

	updated := ""
	if res != nil && res.Updates != nil {
		updated = res.Updates.UpdatedRange
	}
	s.logger.Info("contact submission appended to sheet",
		zap.String("submission_id", sub.ID.String()),
		zap.String("updated_range", updated),
	)
	return nil
}
