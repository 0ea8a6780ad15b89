package validator

import (
	"context"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/itemservice/pkg/logger"
	"github.com/dmitrymomot/itemservice/pkg/msgcodes"
)

// Shape binds a target shape, identified by its object name, to the rules
// that apply to it and to the cross-field checks its rules reference.
type Shape struct {
	Name    string
	Catalog *Catalog
	Checks  map[string]CrossFieldCheck
}

// Option configures an Engine.
type Option func(*Engine)

// WithShape registers a target shape. A later shape with the same name replaces
// the earlier one.
func WithShape(s Shape) Option {
	return func(e *Engine) {
		e.pending = append(e.pending, s)
	}
}

// WithResolver sets the message code resolver used by reports. Nil is ignored.
func WithResolver(r *msgcodes.Resolver) Option {
	return func(e *Engine) {
		if r != nil {
			e.resolver = r
		}
	}
}

// WithLogger sets the diagnostics logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l.With(logger.Component("validator"))
		}
	}
}

// Engine runs catalog rules against targets. It is read-only after NewEngine
// returns and may be shared by concurrent callers; each call gets its own Report.
type Engine struct {
	shapes   map[string]Shape
	pending  []Shape
	resolver *msgcodes.Resolver
	logger   *slog.Logger
}

// NewEngine creates an engine and checks every registered shape: it must have
// a name and a catalog, and every cross-field rule must have a check.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		shapes:   make(map[string]Shape),
		resolver: msgcodes.New(),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, s := range e.pending {
		if err := checkShape(s); err != nil {
			return nil, err
		}
		s.Checks = maps.Clone(s.Checks)
		e.shapes[s.Name] = s
	}
	e.pending = nil

	return e, nil
}

func checkShape(s Shape) error {
	if s.Name == "" {
		return configError(ErrInvalidShape, "empty name")
	}
	if s.Catalog == nil {
		return configError(ErrInvalidShape, "%s: nil catalog", s.Name)
	}
	for _, r := range s.Catalog.Rules() {
		if !r.IsCrossField() {
			if r.Field == "" {
				return configError(ErrInvalidShape, "%s: %s rule without field", s.Name, r.Kind)
			}
			continue
		}
		if check, ok := s.Checks[r.Name]; !ok || check == nil {
			return configError(ErrUnknownCheck, "%s: %s", s.Name, r.Name)
		}
	}
	return nil
}

// NewReport creates an empty report for target using the engine's resolver.
// Binding collaborators use it to record binding failures before ValidateReport.
func (e *Engine) NewReport(target Target) *Report {
	return NewReport(target, e.resolver)
}

// Validate runs every rule of the target's shape that applies to profile and
// returns the populated report. Violations are recorded in the report; an
// error is returned only for configuration mistakes.
func (e *Engine) Validate(target Target, profile Profile) (*Report, error) {
	if target == nil {
		return nil, configError(ErrNilTarget, "validate %s", profile)
	}
	report := e.NewReport(target)
	if err := e.ValidateReport(report, profile); err != nil {
		return nil, err
	}
	return report, nil
}

// ValidateReport runs the rules for the report's target and appends violations
// to report. Field rules run first in catalog order, then cross-field rules.
// Fields that already carry a binding failure are not checked again.
func (e *Engine) ValidateReport(report *Report, profile Profile) error {
	if report == nil || report.Target() == nil {
		return configError(ErrNilTarget, "validate %s", profile)
	}
	target := report.Target()
	name := report.ObjectName()

	shape, ok := e.shapes[name]
	if !ok {
		return configError(ErrUnknownShape, "%q", name)
	}

	rules := shape.Catalog.RulesFor(profile)
	before := report.ErrorCount()

	for _, rule := range rules {
		if rule.IsCrossField() {
			continue
		}
		if err := e.validateField(target, rule, report); err != nil {
			return err
		}
	}

	for _, rule := range rules {
		if !rule.IsCrossField() {
			continue
		}
		if err := e.validateCrossField(target, shape, rule, report); err != nil {
			return err
		}
	}

	e.logger.Debug("validation finished",
		logger.ObjectName(name),
		logger.Profile(string(profile)),
		slog.Int("rules", len(rules)),
		logger.ErrorCount(report.ErrorCount()-before),
	)
	return nil
}

func (e *Engine) validateField(target Target, rule Rule, report *Report) error {
	name := report.ObjectName()
	f, ok := lookupField(target, rule.Field)
	if !ok {
		return configError(ErrUnknownField, "%s.%s", name, rule.Field)
	}
	if report.hasBindingFailure(rule.Field) {
		return nil
	}

	failed, args, err := rule.evaluate(f.Value)
	if err != nil {
		return configError(err, "%s.%s: %s", name, rule.Field, rule)
	}
	if !failed {
		return nil
	}

	report.AddFieldError(rule.Field, f.Value, false,
		e.resolver.FieldCodes(rule.Code(), name, rule.Field, f.Type), args)
	e.logViolation(name, rule)
	return nil
}

func (e *Engine) validateCrossField(target Target, shape Shape, rule Rule, report *Report) error {
	check, ok := shape.Checks[rule.Name]
	if !ok || check == nil {
		return configError(ErrUnknownCheck, "%s: %s", shape.Name, rule.Name)
	}

	before := report.ErrorCount()
	if err := check(target, rule, report); err != nil {
		return configError(err, "%s: %s", shape.Name, rule.Name)
	}
	if report.ErrorCount() > before {
		e.logViolation(shape.Name, rule)
	}
	return nil
}

func (e *Engine) logViolation(object string, rule Rule) {
	if !e.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	e.logger.Debug("constraint violated",
		logger.ObjectName(object),
		slog.String("rule", rule.String()),
		logger.Code(rule.Code()),
	)
}
