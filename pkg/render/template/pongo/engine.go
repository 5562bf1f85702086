// Package pongo renders pongo2 templates with the sticky field builders
// available as template functions. See Helpers for the function set.
package pongo

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/optionset"
	"github.com/goliatone/go-formbuilder/pkg/render/template"
)

// Option configures an Engine.
type Option func(*settings)

type settings struct {
	loaders []pongo2.TemplateLoader
	sets    *optionset.Store
	err     error
}

// WithDir resolves template names against a directory on disk. Repeated
// sources are searched in the order given.
func WithDir(dir string) Option {
	return func(s *settings) {
		loader, err := pongo2.NewLocalFileSystemLoader(strings.TrimSpace(dir))
		if err != nil {
			s.err = errors.Join(s.err, fmt.Errorf("pongo: template dir %q: %w", dir, err))
			return
		}
		s.loaders = append(s.loaders, loader)
	}
}

// WithTemplates resolves template names inside fsys.
func WithTemplates(fsys fs.FS) Option {
	return func(s *settings) {
		if fsys != nil {
			s.loaders = append(s.loaders, pongo2.NewFSLoader(fsys))
		}
	}
}

// WithOptionSets lets the select helper take the name of a set in store.
func WithOptionSets(store *optionset.Store) Option {
	return func(s *settings) {
		s.sets = store
	}
}

// Engine renders templates whose globals are the field helpers of one Builder.
// Parsed template files are cached by the underlying pongo2 set.
type Engine struct {
	set *pongo2.TemplateSet
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New returns an Engine whose helpers render with b. Without WithDir or
// WithTemplates, names resolve against the working directory.
func New(b *builder.Builder, options ...Option) (*Engine, error) {
	if b == nil {
		return nil, errors.New("pongo: builder is required")
	}
	var s settings
	for _, opt := range options {
		if opt != nil {
			opt(&s)
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	if len(s.loaders) == 0 {
		WithDir("")(&s)
		if s.err != nil {
			return nil, s.err
		}
	}

	set := pongo2.NewSet("formbuilder", s.loaders...)
	set.Globals = Helpers(b, s.sets)
	if !pongo2.FilterExists("clean") {
		if err := pongo2.RegisterFilter("clean", cleanFilter); err != nil {
			return nil, fmt.Errorf("pongo: register clean filter: %w", err)
		}
	}
	return &Engine{set: set}, nil
}

// RenderTemplate renders the template file called name.
func (e *Engine) RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	tpl, err := e.set.FromCache(name)
	if err != nil {
		return "", fmt.Errorf("pongo: load template %q: %w", name, err)
	}
	return render(tpl, data, out, "template "+name)
}

// RenderString renders inline template source.
func (e *Engine) RenderString(source string, data map[string]any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	tpl, err := e.set.FromString(source)
	if err != nil {
		return "", fmt.Errorf("pongo: parse inline template: %w", err)
	}
	return render(tpl, data, out, "inline template")
}

func render(tpl *pongo2.Template, data map[string]any, out []io.Writer, what string) (string, error) {
	rendered, err := tpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("pongo: execute %s: %w", what, err)
	}
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", fmt.Errorf("pongo: write %s: %w", what, err)
		}
	}
	return rendered, nil
}

// cleanFilter exposes builder.Clean as {{ value|clean }}.
func cleanFilter(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(builder.Clean(in.String())), nil
}
