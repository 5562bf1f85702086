package prompt_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/prompt"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

type scriptedDriver struct {
	inputs   map[string]string
	confirms map[string]bool
	choices  map[string]int
	err      error

	seenInputs  map[string]prompt.InputConfig
	seenSelects map[string]prompt.SelectConfig
	seenConfirm map[string]prompt.ConfirmConfig
}

func newScriptedDriver() *scriptedDriver {
	return &scriptedDriver{
		inputs:      map[string]string{},
		confirms:    map[string]bool{},
		choices:     map[string]int{},
		seenInputs:  map[string]prompt.InputConfig{},
		seenSelects: map[string]prompt.SelectConfig{},
		seenConfirm: map[string]prompt.ConfirmConfig{},
	}
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.seenInputs[cfg.Message] = cfg
	return d.inputs[cfg.Message], d.err
}

func (d *scriptedDriver) Password(ctx context.Context, cfg prompt.InputConfig) (string, error) {
	return d.Input(ctx, cfg)
}

func (d *scriptedDriver) TextArea(ctx context.Context, cfg prompt.InputConfig) (string, error) {
	return d.Input(ctx, cfg)
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	d.seenConfirm[cfg.Message] = cfg
	return d.confirms[cfg.Message], d.err
}

func (d *scriptedDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	d.seenSelects[cfg.Message] = cfg
	return d.choices[cfg.Message], d.err
}

func signupFields() []model.Field {
	return []model.Field{
		{Kind: model.KindText, Name: "username", Label: "Username", Attributes: model.Attrs("required", "required")},
		{Kind: model.KindPassword, Name: "secret"},
		{Kind: model.KindCheckbox, Name: "newsletter"},
		{Kind: model.KindCheckbox, Name: "terms"},
		{Kind: model.KindSelect, Name: "plan", Options: model.List("free", "legacy --disabled", "pro --selected", "team")},
		{Kind: model.KindTextarea, Name: "bio"},
		{Kind: model.KindHidden, Name: "token", Attributes: model.Attrs("value", "abc")},
		{Kind: model.KindSubmit, Attributes: model.Attrs("value", "Save")},
	}
}

func TestCollectBuildsSubmission(t *testing.T) {
	driver := newScriptedDriver()
	driver.inputs["Username"] = "ada"
	driver.inputs["secret"] = "hunter2"
	driver.inputs["bio"] = "hello"
	driver.confirms["newsletter"] = true
	driver.choices["plan"] = 2

	got, err := prompt.Collect(context.Background(), driver, signupFields())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	want := url.Values{
		"username":   {"ada"},
		"secret":     {"hunter2"},
		"newsletter": {"on"},
		"plan":       {"team"},
		"bio":        {"hello"},
		"token":      {"abc"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("submission mismatch (-want +got):\n%s", diff)
	}

	plan := driver.seenSelects["plan"]
	if diff := cmp.Diff([]string{"free", "pro", "team"}, plan.Options); diff != "" {
		t.Fatalf("select choices mismatch (-want +got):\n%s", diff)
	}
	if plan.DefaultIndex != 1 {
		t.Fatalf("expected marked option as default, got %d", plan.DefaultIndex)
	}
	if !driver.seenInputs["Username"].Required {
		t.Fatalf("expected required attribute to reach the prompt")
	}
}

func TestCollectSeedsDefaultsFromPrevious(t *testing.T) {
	driver := newScriptedDriver()
	previous := testsupport.Submission(
		"username", "grace",
		"secret", "leaked",
		"newsletter", "on",
		"plan", "team",
	)

	if _, err := prompt.Collect(context.Background(), driver, signupFields(), prompt.WithPrevious(previous)); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if got := driver.seenInputs["Username"].Default; got != "grace" {
		t.Fatalf("username default = %q, want grace", got)
	}
	if got := driver.seenInputs["secret"].Default; got != "" {
		t.Fatalf("password default leaked: %q", got)
	}
	if !driver.seenConfirm["newsletter"].Default {
		t.Fatalf("expected newsletter to default to checked")
	}
	if got := driver.seenSelects["plan"].DefaultIndex; got != 2 {
		t.Fatalf("plan default = %d, want 2", got)
	}
}

func TestCollectForcedValueWinsForSelect(t *testing.T) {
	driver := newScriptedDriver()
	fields := []model.Field{{
		Kind:       model.KindSelect,
		Name:       "plan",
		Options:    model.Keyed(model.Entry{Value: "f", Label: "Free --selected"}, model.Entry{Value: "p", Label: "Pro"}),
		Attributes: model.Attrs("value", "p"),
	}}

	if _, err := prompt.Collect(context.Background(), driver, fields, prompt.WithPrevious(testsupport.Submission("plan", "f"))); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if got := driver.seenSelects["plan"].DefaultIndex; got != 1 {
		t.Fatalf("plan default = %d, want 1", got)
	}
}

func TestCollectWrapsDriverErrors(t *testing.T) {
	driver := newScriptedDriver()
	driver.err = prompt.ErrAborted

	_, err := prompt.Collect(context.Background(), driver, signupFields())
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestCollectRequiresDriver(t *testing.T) {
	if _, err := prompt.Collect(context.Background(), nil, nil); !errors.Is(err, prompt.ErrNoDriver) {
		t.Fatalf("expected ErrNoDriver, got %v", err)
	}
}

func TestCollectSelectDefaultsMatchRenderedSelection(t *testing.T) {
	tests := []struct {
		name     string
		attrs    *model.Attributes
		previous map[string]string
		want     int
	}{
		{name: "empty value attribute is ignored", attrs: model.Attrs("value", ""), previous: map[string]string{"show": "Other"}, want: 1},
		{name: "stale answer falls back to marker", previous: map[string]string{"show": "retired"}, want: 2},
		{name: "entity value matches decoded answer", previous: map[string]string{"show": "Tom & Jerry"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := newScriptedDriver()
			driver.choices["show"] = 0
			fields := []model.Field{{
				Kind:       model.KindSelect,
				Name:       "show",
				Options:    model.List("Tom &amp; Jerry", "Other", "Later --selected"),
				Attributes: tt.attrs,
			}}
			var pairs []string
			for name, value := range tt.previous {
				pairs = append(pairs, name, value)
			}

			got, err := prompt.Collect(context.Background(), driver, fields, prompt.WithPrevious(testsupport.Submission(pairs...)))
			if err != nil {
				t.Fatalf("Collect: %v", err)
			}
			if index := driver.seenSelects["show"].DefaultIndex; index != tt.want {
				t.Fatalf("default index = %d, want %d", index, tt.want)
			}
			if diff := cmp.Diff("Tom & Jerry", got.Get("show")); diff != "" {
				t.Fatalf("answer mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
