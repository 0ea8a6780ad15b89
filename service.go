package itemservice

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/dmitrymomot/itemservice/pkg/binder"
	"github.com/dmitrymomot/itemservice/pkg/logger"
	"github.com/dmitrymomot/itemservice/pkg/messages"
	"github.com/dmitrymomot/itemservice/pkg/validator"
	"github.com/dmitrymomot/itemservice/svc/item"
)

//go:embed messages.yaml
var defaultMessages string

// Option configures a Service.
type Option func(*Service)

// WithLogger replaces the logger built from Config. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLogOutput sends the Config-built logger to w. Nil is ignored.
func WithLogOutput(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.logOutput = w
		}
	}
}

// WithMessages merges table over the built-in and file messages.
func WithMessages(table *messages.Table) Option {
	return func(s *Service) {
		if table != nil {
			s.extra = table
		}
	}
}

// Service binds raw item input, validates it under a profile and renders
// the recorded violations as messages.
type Service struct {
	engine    *validator.Engine
	table     *messages.Table
	logger    *slog.Logger
	logOutput io.Writer
	extra     *messages.Table
}

// New wires the engine, the message table and the logger from cfg.
func New(ctx context.Context, cfg Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = newLogger(cfg, s.logOutput)
	}

	resolver, err := cfg.resolver()
	if err != nil {
		return nil, err
	}

	shape, err := item.NewShape(
		item.WithTotalPriceFloor(cfg.TotalPriceFloor),
		item.WithTotalPriceRule(cfg.TotalPriceRule),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	s.engine, err = validator.NewEngine(
		validator.WithShape(shape),
		validator.WithResolver(resolver),
		validator.WithLogger(s.logger),
	)
	if err != nil {
		return nil, err
	}

	s.table, err = loadMessages(ctx, cfg.MessagesFile)
	if err != nil {
		return nil, err
	}
	s.table = s.table.Merge(s.extra)

	s.logger.InfoContext(ctx, "item service ready",
		slog.Int64("total_price_floor", cfg.TotalPriceFloor),
		slog.Bool("total_price_rule", cfg.TotalPriceRule != ""),
		slog.Int("messages", s.table.Len()),
	)
	return s, nil
}

func newLogger(cfg Config, out io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(out),
		logger.WithContextValue("validation_id", validationIDKey{}),
	)
}

func loadMessages(ctx context.Context, path string) (*messages.Table, error) {
	table, err := messages.Parse(ctx, defaultMessages, "yaml")
	if err != nil {
		return nil, fmt.Errorf("default messages: %w", err)
	}
	if path == "" {
		return table, nil
	}
	override, err := messages.LoadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("messages file %s: %w", path, err)
	}
	return table.Merge(override), nil
}

// Bind decodes form values into a new Item and validates it under profile.
// Values that cannot be converted are recorded as binding failures on the
// report and keep their raw input for redisplay. The error is non-nil only
// for misconfiguration.
func (s *Service) Bind(ctx context.Context, values url.Values, profile validator.Profile) (*item.Item, *validator.Report, error) {
	ctx, _ = ensureValidationID(ctx)

	it := &item.Item{}
	report := s.engine.NewReport(it)
	if err := binder.Form(values, it, report); err != nil {
		s.logger.ErrorContext(ctx, "bind item", logger.Error(err))
		return nil, nil, errors.Join(ErrBinding, err)
	}
	if err := s.engine.ValidateReport(report, profile); err != nil {
		s.logger.ErrorContext(ctx, "validate item", logger.Profile(string(profile)), logger.Error(err))
		return nil, nil, err
	}

	s.logResult(ctx, report, profile)
	return it, report, nil
}

// BindJSON decodes a JSON body into a new Item and validates it. A body
// that does not decode is returned as an error and nothing is validated.
func (s *Service) BindJSON(ctx context.Context, r io.Reader, profile validator.Profile) (*item.Item, *validator.Report, error) {
	ctx, _ = ensureValidationID(ctx)

	it := &item.Item{}
	if err := binder.JSON(r, it); err != nil {
		s.logger.DebugContext(ctx, "decode item", logger.Error(err))
		return nil, nil, errors.Join(ErrBinding, err)
	}
	report, err := s.Validate(ctx, it, profile)
	if err != nil {
		return nil, nil, err
	}
	return it, report, nil
}

// Validate runs the item rules for profile against it.
func (s *Service) Validate(ctx context.Context, it *item.Item, profile validator.Profile) (*validator.Report, error) {
	ctx, _ = ensureValidationID(ctx)

	report, err := s.engine.Validate(it, profile)
	if err != nil {
		s.logger.ErrorContext(ctx, "validate item", logger.Profile(string(profile)), logger.Error(err))
		return nil, err
	}
	s.logResult(ctx, report, profile)
	return report, nil
}

func (s *Service) logResult(ctx context.Context, report *validator.Report, profile validator.Profile) {
	s.logger.DebugContext(ctx, "item validated",
		logger.ObjectName(report.ObjectName()),
		logger.Profile(string(profile)),
		logger.ErrorCount(report.ErrorCount()),
	)
}

// Messages renders every error in report, in order. Field messages are keyed
// by field name and object messages by ObjectKey. Codes without a table
// entry fall back to the bare code.
func (s *Service) Messages(report *validator.Report) ValidationError {
	out := NewValidationError()
	if report == nil {
		return out
	}
	for _, e := range report.Errors() {
		key := ObjectKey
		if fe, ok := e.(validator.FieldError); ok {
			key = fe.Field
		}
		msg, err := s.table.Resolve(e)
		if err != nil {
			msg = e.Code()
			s.logger.Warn("missing message", logger.Code(msg), logger.Field(key))
		}
		out.Add(key, msg)
	}
	return out
}

// Message returns the first message for field, or "" when it has none.
func (s *Service) Message(report *validator.Report, field string) string {
	if report == nil {
		return ""
	}
	fe, ok := report.FieldError(field)
	if !ok {
		return ""
	}
	msg, err := s.table.Resolve(fe)
	if err != nil {
		return fe.Code()
	}
	return msg
}

// Engine exposes the configured validation engine.
func (s *Service) Engine() *validator.Engine { return s.engine }
