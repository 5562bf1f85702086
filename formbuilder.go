package formbuilder

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/optionset"
	"github.com/goliatone/go-formbuilder/pkg/render/template/pongo"
	"github.com/goliatone/go-formbuilder/pkg/submitted"
)

// Builder renders sticky form controls; alias of builder.Builder.
type Builder = builder.Builder

// Values is the read-only view of a prior submission.
type Values = submitted.Values

// Field describes one form control.
type Field = model.Field

// Options is the choice list of a select.
type Options = model.Options

// New returns a Builder repopulating fields from values.
func New(values Values, options ...builder.Option) *Builder {
	return builder.New(values, options...)
}

// Attrs builds ordered attributes from alternating name/value pairs.
func Attrs(pairs ...string) *model.Attributes {
	return model.Attrs(pairs...)
}

// List returns options whose labels double as values.
func List(labels ...string) Options {
	return model.List(labels...)
}

// Keyed returns value→label options.
func Keyed(entries ...model.Entry) Options {
	return model.Keyed(entries...)
}

// Clean escapes s exactly once.
func Clean(s string) string {
	return builder.Clean(s)
}

// Request describes a form generated from an OpenAPI operation.
type Request struct {
	// Source is a file path or http(s) URL of the OpenAPI document.
	Source      string
	OperationID string
	Values      Values
	OptionSets  *optionset.Store
	Action      string
	Method      string
	SubmitLabel string
}

// GenerateHTML loads the OpenAPI source, derives the fields of the requested
// operation, and renders them inside the embedded form template.
func GenerateHTML(ctx context.Context, req Request, options ...builder.Option) ([]byte, error) {
	doc, err := openapi.Load(ctx, req.Source)
	if err != nil {
		return nil, err
	}
	return GenerateHTMLFromDocument(doc, req, options...)
}

// GenerateHTMLFromDocument renders a form from a pre-loaded document.
func GenerateHTMLFromDocument(doc *openapi.Document, req Request, options ...builder.Option) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("formbuilder: document is required")
	}
	fields, err := doc.Fields(req.OperationID, openapi.WithOptionSets(req.OptionSets))
	if err != nil {
		return nil, err
	}

	b := builder.New(req.Values, options...)
	engine, err := pongo.New(b,
		pongo.WithTemplates(EmbeddedTemplates()),
		pongo.WithOptionSets(req.OptionSets),
	)
	if err != nil {
		return nil, err
	}

	submitLabel := req.SubmitLabel
	if submitLabel == "" {
		submitLabel = "Submit"
	}
	out, err := engine.RenderTemplate(DefaultTemplate, map[string]any{
		"fields":       fields,
		"action":       req.Action,
		"method":       req.Method,
		"submit_label": submitLabel,
	})
	if err != nil {
		return nil, fmt.Errorf("formbuilder: render %s: %w", req.OperationID, err)
	}
	return []byte(out), nil
}
