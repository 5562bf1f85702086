package prompt

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/submitted"
)

// ErrNoDriver is returned when Collect is called without a driver.
var ErrNoDriver = errors.New("prompt: driver is required")

// Option configures Collect.
type Option func(*config)

type config struct {
	previous submitted.Values
	pageSize int
}

// WithPrevious seeds prompt defaults from an earlier submission. Password
// fields never reuse earlier answers.
func WithPrevious(values submitted.Values) Option {
	return func(c *config) {
		if values != nil {
			c.previous = values
		}
	}
}

// WithPageSize limits how many select choices are shown at once.
func WithPageSize(size int) Option {
	return func(c *config) {
		c.pageSize = size
	}
}

// Collect asks for one answer per field and returns them as a form
// submission. Hidden fields contribute their value attribute, submit buttons
// are skipped, and an unchecked checkbox is omitted the way a browser would.
func Collect(ctx context.Context, driver Driver, fields []model.Field, options ...Option) (url.Values, error) {
	if driver == nil {
		return nil, ErrNoDriver
	}
	cfg := config{previous: submitted.None}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := url.Values{}
	for _, field := range fields {
		if field.Name == "" {
			continue
		}
		value, ok, err := cfg.ask(ctx, driver, field)
		if err != nil {
			return nil, fmt.Errorf("prompt: field %q: %w", field.Name, err)
		}
		if ok {
			out.Set(field.Name, value)
		}
	}
	return out, nil
}

func (c config) ask(ctx context.Context, driver Driver, field model.Field) (string, bool, error) {
	input := InputConfig{
		Message:  message(field),
		Help:     attr(field, "placeholder"),
		Required: field.Attributes.Has("required"),
	}
	previous, seen := c.previousValue(field)
	if seen {
		input.Default = previous
	} else {
		input.Default = attr(field, "value")
	}

	switch field.Kind {
	case model.KindSubmit:
		return "", false, nil
	case model.KindHidden:
		value, ok := field.Attributes.Get("value")
		if !ok {
			value, ok = previous, seen
		}
		return value, ok, nil
	case model.KindPassword:
		input.Default = ""
		value, err := driver.Password(ctx, input)
		return value, err == nil, err
	case model.KindTextarea:
		value, err := driver.TextArea(ctx, input)
		return value, err == nil, err
	case model.KindCheckbox:
		checked := field.Attributes.Has("checked")
		if seen {
			checked = previous == "on"
		}
		yes, err := driver.Confirm(ctx, ConfirmConfig{
			Message: input.Message,
			Default: checked,
			Help:    input.Help,
		})
		if err != nil {
			return "", false, err
		}
		if !yes {
			return "", false, nil
		}
		return "on", true, nil
	case model.KindSelect:
		return c.choose(ctx, driver, field, input, previous, seen)
	default:
		value, err := driver.Input(ctx, input)
		return value, err == nil, err
	}
}

func (c config) choose(ctx context.Context, driver Driver, field model.Field, input InputConfig, previous string, seen bool) (string, bool, error) {
	var (
		values []string
		labels []string
	)
	forcedAt, previousAt, markedAt := -1, -1, -1
	override, _ := field.Attributes.Get("value")
	for _, option := range field.Options.Resolve() {
		if option.Disabled {
			continue
		}
		index := len(values)
		rendered := builder.Clean(option.Value)
		if override != "" && forcedAt < 0 && rendered == builder.Clean(override) {
			forcedAt = index
		}
		if seen && previousAt < 0 && rendered == builder.Clean(previous) {
			previousAt = index
		}
		if option.Selected && markedAt < 0 {
			markedAt = index
		}
		values = append(values, html.UnescapeString(rendered))
		labels = append(labels, option.Label)
	}
	if len(values) == 0 {
		return "", false, nil
	}

	defaultIndex := 0
	switch {
	case override != "":
		defaultIndex = max(forcedAt, 0)
	case previousAt >= 0:
		defaultIndex = previousAt
	case markedAt >= 0:
		defaultIndex = markedAt
	}

	index, err := driver.Select(ctx, SelectConfig{
		Message:      input.Message,
		Options:      labels,
		DefaultIndex: defaultIndex,
		Help:         input.Help,
		PageSize:     c.pageSize,
	})
	if err != nil {
		return "", false, err
	}
	if index < 0 || index >= len(values) {
		return "", false, fmt.Errorf("choice %d out of range", index)
	}
	return values[index], true, nil
}

func (c config) previousValue(field model.Field) (string, bool) {
	if !c.previous.Has(field.Name) {
		return "", false
	}
	return c.previous.Get(field.Name), true
}

func message(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func attr(field model.Field, name string) string {
	value, _ := field.Attributes.Get(name)
	return value
}
