// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent key names for validation logs.
//
// New picks a text or JSON handler, applies static attributes, and wraps the
// result in a ContextHandler that copies values out of the record's context:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "itemservice"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextValue("validation_id", validationIDKey{}),
//	)
//	log.DebugContext(ctx, "validation finished",
//	    logger.ObjectName("item"),
//	    logger.ErrorCount(report.ErrorCount()),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
