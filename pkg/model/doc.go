// Package model defines the transient values passed to the field builders:
// the control Kind, ordered HTML Attributes, and the Options union consumed by
// select fields. Option labels may carry the trailing marker suffixes
// ` --disabled` and ` --selected`; ParseOption strips them into flags so the
// renderer never has to inspect label text itself. Attributes and Keyed
// options keep insertion order because attribute placement in the rendered
// markup is observable by callers.
package model
