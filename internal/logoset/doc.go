// Package logoset defines the logo data model consumed by the ticker widget.
//
// External data arrives as a JSON-encoded array of entries. Parsing is
// strict and all-or-nothing: a payload that fails to decode, or that
// contains a single invalid entry, is rejected wholesale so callers can fall
// back to the built-in set without ever rendering a half-applied list.
package logoset
