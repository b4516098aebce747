// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// Every formkit component accepts a *slog.Logger. When none is given the
// component logs to Discard, so the library stays silent unless wired.
//
// # Architecture
//
// New determines the concrete slog.Handler implementation (text or JSON)
// from the configured Format and, when extractors are registered, wraps it so
// every handled record gets the attributes they derive from the context.
//
// Helper constructors in attr.go (Field, Constraint, Hook, Version, Error, ...)
// keep attribute naming consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("billing-form"),
//	    logger.WithContextExtractors(logger.FormNameExtractor()),
//	)
//
//	ctx := logger.WithFormName(context.Background(), "invoice")
//	log.ErrorContext(ctx, "value hook failed", logger.Field("amount"), logger.Error(err))
package logger
