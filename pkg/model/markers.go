package model

import "strings"

const (
	// DisabledMarker disables an option when it ends the label.
	DisabledMarker = " --disabled"
	// SelectedMarker preselects an option when it ends the label, after any
	// DisabledMarker has been stripped.
	SelectedMarker = " --selected"
)

// Option is a parsed select option.
type Option struct {
	Value    string
	Label    string
	Disabled bool
	Selected bool
}

// ParseOption strips the trailing marker suffixes from a raw label. The
// disabled marker is checked first, so "x --selected --disabled" yields both
// flags while "x --disabled --selected" only yields Selected with the label
// "x --disabled". Value is left empty for the caller to assign.
func ParseOption(raw string) Option {
	option := Option{Label: raw}
	if label, ok := strings.CutSuffix(option.Label, DisabledMarker); ok {
		option.Label = label
		option.Disabled = true
	}
	if label, ok := strings.CutSuffix(option.Label, SelectedMarker); ok {
		option.Label = label
		option.Selected = true
	}
	return option
}

// MarkSelected appends the selected marker to a raw label.
func MarkSelected(raw string) string {
	return raw + SelectedMarker
}
