// Package template declares the renderer contract used for textual reports.
// The pongo2-backed implementation lives in the gotemplate subpackage.
package template
