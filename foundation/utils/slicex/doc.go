// Package slicex implements generic slice helpers.
//
// Package: slicex
// Title: Slice Utilities
// Description: Search and removal by value. Remove deletes only the first
//              occurrence of a value, RemoveAll the first occurrence of each
//              given value. Inputs are never modified; results are fresh slices.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2026-10-14 v0.2.0: Reduced to search and value removal
package slicex
