package model

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type optionsShape uint8

const (
	shapeList optionsShape = iota
	shapeKeyed
	shapeRecords
)

// Entry is a raw keyed option before marker parsing.
type Entry struct {
	Value string
	Label string
}

// Options is the set of choices offered by a select field. Build it with List
// when each label doubles as its submitted value, with Keyed or KeyedMap when
// values and labels differ, or with Records when flags are already known.
type Options struct {
	shape   optionsShape
	labels  []string
	keyed   *orderedmap.OrderedMap[string, string]
	records []Option
}

// List returns options whose value is the label left after marker parsing.
func List(labels ...string) Options {
	return Options{shape: shapeList, labels: append([]string(nil), labels...)}
}

// Keyed returns value→label options in the given order. A repeated value keeps
// its first position and takes the later label.
func Keyed(entries ...Entry) Options {
	om := orderedmap.New[string, string]()
	for _, entry := range entries {
		om.Set(entry.Value, entry.Label)
	}
	return Options{shape: shapeKeyed, keyed: om}
}

// KeyedMap wraps an existing ordered map. The map is copied.
func KeyedMap(src *orderedmap.OrderedMap[string, string]) Options {
	om := orderedmap.New[string, string]()
	if src != nil {
		for pair := src.Oldest(); pair != nil; pair = pair.Next() {
			om.Set(pair.Key, pair.Value)
		}
	}
	return Options{shape: shapeKeyed, keyed: om}
}

// Records returns options whose flags are already structured. Labels are not
// scanned for marker suffixes.
func Records(records ...Option) Options {
	return Options{shape: shapeRecords, records: append([]Option(nil), records...)}
}

// IsKeyed reports whether option values come from explicit keys.
func (o Options) IsKeyed() bool {
	return o.shape == shapeKeyed
}

// Len returns the number of options.
func (o Options) Len() int {
	switch o.shape {
	case shapeKeyed:
		if o.keyed == nil {
			return 0
		}
		return o.keyed.Len()
	case shapeRecords:
		return len(o.records)
	default:
		return len(o.labels)
	}
}

// Entries returns the raw value/label pairs, markers included. For List
// options the value is the raw label.
func (o Options) Entries() []Entry {
	out := make([]Entry, 0, o.Len())
	switch o.shape {
	case shapeKeyed:
		if o.keyed == nil {
			return out
		}
		for pair := o.keyed.Oldest(); pair != nil; pair = pair.Next() {
			out = append(out, Entry{Value: pair.Key, Label: pair.Value})
		}
	case shapeRecords:
		for _, record := range o.records {
			out = append(out, Entry{Value: record.Value, Label: record.Label})
		}
	default:
		for _, label := range o.labels {
			out = append(out, Entry{Value: label, Label: label})
		}
	}
	return out
}

// Resolve parses markers and assigns values, returning one Option per entry in
// order.
func (o Options) Resolve() []Option {
	switch o.shape {
	case shapeRecords:
		return append([]Option(nil), o.records...)
	case shapeKeyed:
		entries := o.Entries()
		out := make([]Option, 0, len(entries))
		for _, entry := range entries {
			option := ParseOption(entry.Label)
			option.Value = entry.Value
			out = append(out, option)
		}
		return out
	default:
		out := make([]Option, 0, len(o.labels))
		for _, label := range o.labels {
			option := ParseOption(label)
			option.Value = option.Label
			out = append(out, option)
		}
		return out
	}
}
