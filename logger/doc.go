// Package logger provides structured logging on top of zerolog.
//
// Loggers are built from Config (level, console or json format, stderr by
// default) and tagged per component:
//
//	log := logger.Get("solver").WithContext(ctx)
//	log.Info("part 2 solved", logger.Fields(logger.FieldResult, 46))
//
// WithContext adds the run id placed in the context by ContextWithRunID.
package logger
