// File: slicex.go
// Title: Slice Search and Removal
// Description: Generic search and remove-by-value helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Remove and RemoveAll by value

package slicex

// Contains reports whether element is in slice
func Contains[T comparable](slice []T, element T) bool {
	return IndexOf(slice, element) >= 0
}

// IndexOf returns the index of the first occurrence of element, or -1
func IndexOf[T comparable](slice []T, element T) int {
	for i, item := range slice {
		if item == element {
			return i
		}
	}
	return -1
}

// IndexOfBy returns the index of the first element matching predicate, or -1
func IndexOfBy[T any](slice []T, predicate func(T) bool) int {
	if predicate == nil {
		return -1
	}
	for i, item := range slice {
		if predicate(item) {
			return i
		}
	}
	return -1
}

// Remove returns a copy of slice without the first occurrence of element
func Remove[T comparable](slice []T, element T) []T {
	out := make([]T, len(slice))
	copy(out, slice)

	if i := IndexOf(out, element); i >= 0 {
		out = append(out[:i], out[i+1:]...)
	}
	return out
}

// RemoveAll returns a copy of slice without the first occurrence of each of elements.
// A value listed twice in elements removes two occurrences.
func RemoveAll[T comparable](slice []T, elements []T) []T {
	out := make([]T, len(slice))
	copy(out, slice)

	for _, element := range elements {
		if i := IndexOf(out, element); i >= 0 {
			out = append(out[:i], out[i+1:]...)
		}
	}
	return out
}

// Unique returns the elements of slice in first-seen order without duplicates
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	out := make([]T, 0, len(slice))
	for _, item := range slice {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
