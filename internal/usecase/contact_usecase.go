package usecase

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"strings"
	"time"

	"portfolio-api/internal/domain/contact"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

type ContactAck struct {
	ID          uuid.UUID
	SubmittedAt time.Time
}

// ValidationError lists the offending fields by their JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return "invalid input: " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

type ContactUsecase interface {
	Submit(ctx context.Context, in ContactInput) (ContactAck, error)
}

type Contact struct {
	sink    contact.Sink
	timeout time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

var contactValidate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}()

func NewContactUsecase(sink contact.Sink, timeout time.Duration, logger *zap.Logger) *Contact {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Contact{sink: sink, timeout: timeout, now: time.Now, logger: logger}
}

func (u *Contact) Submit(ctx context.Context, in ContactInput) (ContactAck, error) {
	in = ContactInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
	if err := contactValidate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return ContactAck{}, ErrInvalidInput
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return ContactAck{}, &ValidationError{Fields: fields}
	}

	if u.sink == nil {
		u.logger.Error("contact submission rejected: no sink configured")
		return ContactAck{}, ErrSinkUnavailable
	}

	sub := contact.Submission{
		ID:          uuid.New(),
		Name:        in.Name,
		Email:       in.Email,
		Subject:     in.Subject,
		Message:     in.Message,
		SubmittedAt: u.now().UTC(),
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	if err := u.sink.Append(ctx, sub); err != nil {
		u.logger.Error("contact submission append failed",
			zap.String("submission_id", sub.ID.String()),
			zap.Error(err),
		)
		if errors.Is(err, contact.ErrSinkNotConfigured) {
			return ContactAck{}, ErrSinkUnavailable
		}
		return ContactAck{}, ErrSinkFailure
	}

	u.logger.Info("contact submission stored", zap.String("submission_id", sub.ID.String()))
	return ContactAck{ID: sub.ID, SubmittedAt: sub.SubmittedAt}, nil
}
