// Package error provides structured, coded errors for the sparrow conversion helpers.
//
// Package: error
// Title: sparrow Error Handling
// Description: Coded errors with severity, operation context, details and a captured
//              stack trace. The helper surface reports "absent" results as (zero, false);
//              this package is used where a backing resource cannot be constructed:
//              bundles, locales, time zones, configuration and digest algorithms.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Narrowed codes to conversion, resource and configuration failures
//
// Usage:
//   import mdwerror "github.com/msto63/sparrow/foundation/core/error"
//
//   err := mdwerror.New("unknown time zone").
//     WithCode(mdwerror.CodeUnknownTimezone).
//     WithOperation("i18n.NewContext").
//     WithDetail("timezone", name)
//
//   if mdwerror.HasCode(err, mdwerror.CodeUnknownTimezone) {
//     // fall back to UTC
//   }
package error
