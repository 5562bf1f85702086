package pongo

import (
	"fmt"
	"sort"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/optionset"
)

type namedHelper func(name *pongo2.Value, pairs ...*pongo2.Value) *pongo2.Value

// Helpers returns the template functions bound to b. Attribute arguments are
// alternating name/value pairs:
//
//	{{ text("email", "class", "form-control") }}
//	{{ select("country", "countries", "class", "form-control") }}
//
// field renders a whole model.Field. The options argument of select accepts a
// model.Options value, a list of labels, a map (rendered keyed, sorted by key)
// or the name of a set in sets.
func Helpers(b *builder.Builder, sets *optionset.Store) pongo2.Context {
	input := func(render func(string, *model.Attributes) string) namedHelper {
		return func(name *pongo2.Value, pairs ...*pongo2.Value) *pongo2.Value {
			return pongo2.AsSafeValue(render(valueString(name), attrsFrom(pairs)))
		}
	}

	return pongo2.Context{
		"text":         input(b.Text),
		"password":     input(b.Password),
		"email":        input(b.Email),
		"checkbox":     input(b.Checkbox),
		"textarea":     input(b.Textarea),
		"select_day":   input(b.SelectDay),
		"select_month": input(b.SelectMonth),
		"select_year":  input(b.SelectYear),
		"select_month_name": func(name *pongo2.Value, pairs ...*pongo2.Value) *pongo2.Value {
			return pongo2.AsSafeValue(b.SelectMonthName(valueString(name), attrsFrom(pairs)))
		},
		"select_month_name_locale": func(name, locale *pongo2.Value, pairs ...*pongo2.Value) *pongo2.Value {
			return pongo2.AsSafeValue(b.SelectMonthNameLocale(valueString(name), attrsFrom(pairs), valueString(locale)))
		},
		"input": func(kind, name *pongo2.Value, pairs ...*pongo2.Value) *pongo2.Value {
			return pongo2.AsSafeValue(b.Input(model.Kind(valueString(kind)), valueString(name), attrsFrom(pairs)))
		},
		"hidden": func(name, value *pongo2.Value) *pongo2.Value {
			return pongo2.AsSafeValue(b.Hidden(valueString(name), valueString(value)))
		},
		"submit": func(value *pongo2.Value, pairs ...*pongo2.Value) *pongo2.Value {
			return pongo2.AsSafeValue(b.Submit(valueString(value), attrsFrom(pairs)))
		},
		"select": func(name, options *pongo2.Value, pairs ...*pongo2.Value) *pongo2.Value {
			return pongo2.AsSafeValue(b.Select(valueString(name), optionsFrom(options, sets), attrsFrom(pairs)))
		},
		"field": func(field *pongo2.Value) *pongo2.Value {
			if field == nil {
				return pongo2.AsSafeValue("")
			}
			switch f := field.Interface().(type) {
			case model.Field:
				return pongo2.AsSafeValue(b.Field(f))
			case *model.Field:
				if f != nil {
					return pongo2.AsSafeValue(b.Field(*f))
				}
			}
			return pongo2.AsSafeValue("")
		},
	}
}

func valueString(v *pongo2.Value) string {
	if v == nil || v.IsNil() {
		return ""
	}
	return v.String()
}

func attrsFrom(pairs []*pongo2.Value) *model.Attributes {
	raw := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		raw = append(raw, valueString(pair))
	}
	return model.Attrs(raw...)
}

func optionsFrom(v *pongo2.Value, sets *optionset.Store) model.Options {
	if v == nil || v.IsNil() {
		return model.Options{}
	}
	switch typed := v.Interface().(type) {
	case model.Options:
		return typed
	case string:
		options, _ := sets.Get(typed)
		return options
	case []string:
		return model.List(typed...)
	case []any:
		labels := make([]string, 0, len(typed))
		for _, item := range typed {
			labels = append(labels, fmt.Sprint(item))
		}
		return model.List(labels...)
	case map[string]string:
		return keyedFromMap(len(typed), func(yield func(string, string)) {
			for key, label := range typed {
				yield(key, label)
			}
		})
	case map[string]any:
		return keyedFromMap(len(typed), func(yield func(string, string)) {
			for key, label := range typed {
				yield(key, fmt.Sprint(label))
			}
		})
	default:
		return model.Options{}
	}
}

func keyedFromMap(size int, each func(func(string, string))) model.Options {
	entries := make([]model.Entry, 0, size)
	each(func(key, label string) {
		entries = append(entries, model.Entry{Value: key, Label: label})
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Value < entries[j].Value })
	return model.Keyed(entries...)
}
