// Package entries lists directory children for display.
//
// Read performs a non-recursive scan, tags each entry with its registry id
// and passes the result through an injected Filter and Sorter. Scans that
// fail degrade to an empty listing, so callers cannot tell an empty
// directory from an unreadable one.
package entries
