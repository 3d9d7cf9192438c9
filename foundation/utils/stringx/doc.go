// Package stringx provides string helpers: blank checks, hex scanning, clamped
// substrings, path manipulation and URL conversion.
//
// Package: stringx
// Title: String Utilities
// Description: Helpers that adapt argument shapes over the standard library.
//              Substring operations count user-visible runes and clamp their
//              bounds instead of panicking. Path helpers follow the classic
//              slash-path rules (leading "/" is a component, trailing "/" is
//              ignored, hidden files have no extension).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-14 v0.2.0: Hex scanning, substrings, path components, URL parsing
package stringx
