// Package extract projects a [record.Record] into the flat, typed sections
// used by CV templates.
//
// Every function is total: absent fields degrade to empty strings, empty
// slices or zero, and nothing here returns an error.
package extract
