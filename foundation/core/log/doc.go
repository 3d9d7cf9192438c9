// Package log provides structured logging for the sparrow tools.
//
// Package: log
// Title: sparrow Structured Logging
// Description: Leveled, structured logging with persistent context fields, request IDs,
//              JSON/text/console/logfmt output and integration with the coded error
//              package. The CLI writes diagnostics through this package to stderr so
//              conversion results on stdout stay machine-readable.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-14 v0.2.0: Removed async queue and user/correlation IDs, deterministic field order
//
// Usage:
//   import mdwlog "github.com/msto63/sparrow/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{
//     Level:  mdwlog.LevelDebug,
//     Format: mdwlog.FormatLogfmt,
//     Output: os.Stderr,
//     Name:   "sparrow",
//   })
//
//   logger.WithRequestID(id).Info("pattern compiled", mdwlog.Fields{"engine": "icu"})
//
//   timer := logger.StartTimer("regex.extract")
//   defer timer.Stop()
package log
