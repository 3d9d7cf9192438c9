// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities to
//              log levels when an error is logged through LogError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-14 v0.2.0: Severity mapping for conversion and resource codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates rejected input the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure with a usable fallback
	SeverityMedium

	// SeverityHigh indicates a missing or unreadable resource
	SeverityHigh

	// SeverityCritical indicates the program cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should be surfaced to the user
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeResourceUnavailable, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeInvalidFormat, CodeInvalidPattern, CodeNotFound,
		CodeUnsupportedAlgorithm, CodeUnknownLocale, CodeUnknownTimezone:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
