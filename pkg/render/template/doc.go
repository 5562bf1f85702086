// Package template defines the seam between hosts and the template engine that
// exposes the field builders to page templates.
package template
