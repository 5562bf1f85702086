// Package submitted adapts the values posted with the previous request into
// the read-only lookup the field builders consult when repopulating a form.
package submitted

import (
	"fmt"
	"net/http"
	"net/url"
)

// Values is the last submission for a form. Implementations must be safe for
// concurrent reads; builders never write to them.
type Values interface {
	Has(name string) bool
	Get(name string) string
}

// None is a Values with no submission.
var None Values = Map(nil)

// Map is a Values backed by a plain map.
type Map map[string]string

// Has reports whether name was submitted.
func (m Map) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Get returns the submitted value for name, or "" when absent.
func (m Map) Get(name string) string {
	return m[name]
}

// URLValues exposes decoded form values. Multi-valued fields report their
// first value.
type URLValues url.Values

// Has reports whether name was submitted, even with an empty value.
func (v URLValues) Has(name string) bool {
	return url.Values(v).Has(name)
}

// Get returns the first submitted value for name.
func (v URLValues) Get(name string) string {
	return url.Values(v).Get(name)
}

// Func adapts a lookup function.
type Func func(name string) (string, bool)

// Has reports whether the lookup knows name.
func (f Func) Has(name string) bool {
	if f == nil {
		return false
	}
	_, ok := f(name)
	return ok
}

// Get returns the looked up value or "".
func (f Func) Get(name string) string {
	if f == nil {
		return ""
	}
	value, _ := f(name)
	return value
}

// FromRequest parses the request body and returns its posted values. Query
// string parameters are ignored so that GET requests behave as an empty
// submission.
func FromRequest(r *http.Request) (Values, error) {
	if r == nil {
		return None, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("submitted: parse form: %w", err)
	}
	return URLValues(r.PostForm), nil
}

// Parse decodes an application/x-www-form-urlencoded payload.
func Parse(encoded string) (Values, error) {
	values, err := url.ParseQuery(encoded)
	if err != nil {
		return nil, fmt.Errorf("submitted: parse query: %w", err)
	}
	return URLValues(values), nil
}
