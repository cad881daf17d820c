package problem

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/kbukum/errkit/errors"
	"github.com/kbukum/errkit/logger"
	"github.com/kbukum/errkit/observability"
	"github.com/kbukum/errkit/requestid"
)

// ContentType is the media type for problem documents (RFC 7807).
const ContentType = "application/problem+json"

// Problem is the RFC 7807 document sent to clients when a request fails.
// A fresh value is built for every failure; instances are never reused.
type Problem struct {
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Status    int                    `json:"status"`
	Detail    string                 `json:"detail"`
	Instance  string                 `json:"instance,omitempty"`
	RequestID string                 `json:"request_id"`
	Timestamp string                 `json:"timestamp"`
	Errors    []apperrors.FieldError `json:"errors,omitempty"`
}

// mapping fixes the HTTP status, title, and type slug for one error code.
type mapping struct {
	status int
	title  string
	slug   string
}

// mappings must stay total over the closed code set. VALIDATION_ERROR and
// VALIDATION_FIELD share the validation-error type so clients dispatch on a
// single URI for both shapes.
var mappings = map[apperrors.ErrorCode]mapping{
	apperrors.ErrCodeNotFound:           {404, "Not Found", "not-found"},
	apperrors.ErrCodeValidation:         {400, "Validation Error", "validation-error"},
	apperrors.ErrCodeValidationField:    {400, "Validation Error", "validation-error"},
	apperrors.ErrCodeBadRequest:         {400, "Bad Request", "bad-request"},
	apperrors.ErrCodeUnauthorized:       {401, "Unauthorized", "unauthorized"},
	apperrors.ErrCodeForbidden:          {403, "Forbidden", "forbidden"},
	apperrors.ErrCodeConflict:           {409, "Conflict", "conflict"},
	apperrors.ErrCodeDatabaseError:      {500, "Database Error", "database-error"},
	apperrors.ErrCodeConfigError:        {500, "Configuration Error", "config-error"},
	apperrors.ErrCodeExternalService:    {502, "External Service Error", "external-service-error"},
	apperrors.ErrCodeInternal:           {500, "Internal Server Error", "internal-error"},
	apperrors.ErrCodeServiceUnavailable: {503, "Service Unavailable", "service-unavailable"},
}

// Config contains problem document configuration.
type Config struct {
	// TypeBase is the URI prefix for problem type identifiers.
	TypeBase string `yaml:"type_base" mapstructure:"type_base"`
}

// ApplyDefaults applies default values to problem configuration.
func (c *Config) ApplyDefaults() {
	if c.TypeBase == "" {
		c.TypeBase = "/problems"
	}
}

var typeBase = "/problems"

// Init sets the package configuration. Call once at startup, before serving.
func Init(cfg Config) {
	cfg.ApplyDefaults()
	typeBase = strings.TrimSuffix(cfg.TypeBase, "/")
}

// TypeURI returns the problem type identifier for an error code.
func TypeURI(code apperrors.ErrorCode) string {
	return typeBase + "/" + mappings[code].slug
}

// From converts err into a Problem using the correlation id bound to ctx.
// Errors outside the taxonomy are normalized to INTERNAL_ERROR first. The
// conversion emits exactly one diagnostic record and one metric sample, so
// it must run only at the HTTP boundary, never on intermediate layers.
//
// Instance is left empty; the transport layer fills it with the request path.
func From(ctx context.Context, err error) Problem {
	appErr := apperrors.Wrap(err)
	if appErr == nil {
		appErr = apperrors.Internal("nil error")
	}

	m := mappings[appErr.Code()]
	p := Problem{
		Type:      typeBase + "/" + m.slug,
		Title:     m.title,
		Status:    m.status,
		Detail:    appErr.Error(),
		RequestID: requestid.CurrentOrNew(ctx),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Errors:    appErr.Fields(),
	}

	logProblem(appErr, p)
	observability.RecordProblem(ctx, string(appErr.Code()), p.Status)
	if p.Status >= 500 {
		observability.SetSpanError(ctx, appErr)
	}

	return p
}

// StatusCode returns the HTTP status err maps to without building the full
// document. A nil error maps to 200.
func StatusCode(err error) int {
	appErr := apperrors.Wrap(err)
	if appErr == nil {
		return 200
	}
	return mappings[appErr.Code()].status
}

// logProblem emits the single diagnostic record for a converted failure.
// Server faults log at error level, client faults at warn.
func logProblem(appErr *apperrors.AppError, p Problem) {
	fields := map[string]interface{}{
		logger.FieldStatus:    p.Status,
		logger.FieldType:      p.Type,
		"code":                string(appErr.Code()),
		logger.FieldError:     p.Detail,
		logger.FieldRequestID: p.RequestID,
	}
	if cause := appErr.Unwrap(); cause != nil {
		fields["cause"] = cause.Error()
	}

	log := logger.Get("problem")
	if p.Status >= 500 {
		log.Error("Error occurred", fields)
	} else {
		log.Warn("Error occurred", fields)
	}
}
