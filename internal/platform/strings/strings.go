// Package strings provides string and slice helpers shared by adapters and services
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a root path like /reviews or /meta
// ensures a single leading slash and no trailing slash except for the root itself
// panics if the input is empty after trimming
func MustPrefix(s string) string {
	s = std.TrimSpace(s)
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Index returns the position of v in in, or -1
func Index(in []string, v string) int {
	for i, s := range in {
		if s == v {
			return i
		}
	}
	return -1
}

// InsertAfter returns a copy of in with v placed right after anchor.
// When anchor is absent v is appended
func InsertAfter(in []string, anchor, v string) []string {
	out := make([]string, 0, len(in)+1)
	at := Index(in, anchor)
	if at < 0 {
		return append(append(out, in...), v)
	}
	out = append(out, in[:at+1]...)
	out = append(out, v)
	return append(out, in[at+1:]...)
}

// Rename returns a copy of in with every entry found in renames replaced
func Rename(in []string, renames map[string]string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		if to, ok := renames[s]; ok {
			out[i] = to
			continue
		}
		out[i] = s
	}
	return out
}
