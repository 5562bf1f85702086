package model

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Attributes is an insertion-ordered set of HTML attributes. Setting a key that
// already exists overwrites its value without moving it. The zero value and a
// nil pointer are both valid empty sets for reading.
type Attributes struct {
	om *orderedmap.OrderedMap[string, string]
}

// Attrs builds Attributes from alternating name/value pairs. A trailing name
// without a value is set to the empty string.
func Attrs(pairs ...string) *Attributes {
	attrs := &Attributes{om: orderedmap.New[string, string]()}
	for i := 0; i < len(pairs); i += 2 {
		value := ""
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}
		attrs.om.Set(pairs[i], value)
	}
	return attrs
}

// Set assigns value to name, appending the name when it is new.
func (a *Attributes) Set(name, value string) *Attributes {
	if a.om == nil {
		a.om = orderedmap.New[string, string]()
	}
	a.om.Set(name, value)
	return a
}

// Get returns the value stored under name.
func (a *Attributes) Get(name string) (string, bool) {
	if a == nil || a.om == nil {
		return "", false
	}
	return a.om.Get(name)
}

// Has reports whether name is present, even with an empty value.
func (a *Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Delete removes name and returns its previous value.
func (a *Attributes) Delete(name string) (string, bool) {
	if a == nil || a.om == nil {
		return "", false
	}
	return a.om.Delete(name)
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil || a.om == nil {
		return 0
	}
	return a.om.Len()
}

// All iterates attributes in insertion order.
func (a *Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if a == nil || a.om == nil {
			return
		}
		for pair := a.om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Names returns attribute names in insertion order.
func (a *Attributes) Names() []string {
	names := make([]string, 0, a.Len())
	for name := range a.All() {
		names = append(names, name)
	}
	return names
}

// Clone returns an independent copy that preserves order. Cloning nil yields an
// empty, writable set.
func (a *Attributes) Clone() *Attributes {
	out := &Attributes{om: orderedmap.New[string, string]()}
	for name, value := range a.All() {
		out.om.Set(name, value)
	}
	return out
}
