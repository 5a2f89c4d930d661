// Package logger builds configured slog.Logger instances and provides
// attribute helpers for consistent log keys across the module.
//
// The factory supports JSON and text output, static attributes, and
// context extractors that inject request-scoped values (request ID, user
// ID) into every record logged with a context.
//
//	log := logger.New(
//	    logger.WithJSONFormatter(),
//	    logger.WithAttr(slog.String("service", "exauth")),
//	)
//	log.Error("failed to persist session", logger.UserID(id), logger.Error(err))
package logger
