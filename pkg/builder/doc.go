// Package builder renders sticky HTML form controls. A Builder is bound to the
// values posted with the previous request and repopulates inputs, selects and
// textareas from them, so a form redisplayed after a failed submission keeps
// what the user typed. Password inputs and inputs with an explicit value are
// never repopulated.
//
// Every method returns a markup fragment terminated by a newline. Attribute
// values are escaped exactly once through Clean; option labels are emitted
// verbatim unless a label policy is configured with WithLabelPolicy.
//
// A Builder holds no mutable state and is safe for concurrent use.
package builder
