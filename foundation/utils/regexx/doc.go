// Package regexx offers regex convenience over two engines: an ICU-style
// backtracking engine (github.com/dlclark/regexp2) supporting lookaround,
// backreferences and free-spacing patterns, and the linear-time RE2 engine
// of the standard library.
//
// Package: regexx
// Title: Regular Expression Helpers
// Description: MatchExact tests whether a whole text is one match, MatchAny
//              whether any match exists, ExtractAll lists the whole match and
//              the participating groups of every match, and ReplaceAll
//              substitutes with $n and ${name} references. A malformed pattern
//              behaves as no match. Offsets in Match are byte offsets into the
//              text for both engines.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Usage:
//   regexx.MatchExact("2024-01-05", `\d{4}-\d{2}-\d{2}`)        // true
//   regexx.ExtractAll("a1b2", `([a-z])(\d)`)                   // a1 a 1 b2 b 2
//   m := regexx.NewMatcher(regexx.RE2{})
//   m.MatchAny("Hello", "hello", regexx.CaseInsensitive)       // true
package regexx
