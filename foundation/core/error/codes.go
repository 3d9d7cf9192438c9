// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the sparrow packages to classify
//              construction failures of resources, locales and configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: Replaced service codes with conversion and resource codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Conversion
	CodeInvalidFormat        Code = "INVALID_FORMAT"
	CodeInvalidPattern       Code = "INVALID_PATTERN"
	CodeUnsupportedAlgorithm Code = "UNSUPPORTED_ALGORITHM"

	// Locale and time zone
	CodeUnknownLocale   Code = "UNKNOWN_LOCALE"
	CodeUnknownTimezone Code = "UNKNOWN_TIMEZONE"

	// Resources
	CodeResourceUnavailable Code = "RESOURCE_UNAVAILABLE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidFormat, CodeInvalidPattern, CodeUnsupportedAlgorithm,
		CodeUnknownLocale, CodeUnknownTimezone,
		CodeResourceUnavailable,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidFormat, CodeInvalidPattern, CodeUnsupportedAlgorithm:
		return "conversion"
	case CodeUnknownLocale, CodeUnknownTimezone:
		return "locale"
	case CodeNotFound, CodeResourceUnavailable:
		return "resource"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for the CLI.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "conversion", "locale":
		return 2
	case "resource":
		return 3
	case "configuration":
		return 4
	default:
		return 1
	}
}
