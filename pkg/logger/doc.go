// Package logger builds *slog.Logger values from functional options and
// keeps attribute names consistent across frostal.
//
// New selects a JSON or text handler and wraps it with LogHandlerDecorator,
// which runs the registered ContextExtractor callbacks on every record so
// request-scoped values such as the request id show up without passing them
// around explicitly.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "frostal"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.WarnContext(ctx, "request failed",
//	    logger.Status(http.StatusUnprocessableEntity),
//	    logger.Field("address.city"),
//	)
package logger
