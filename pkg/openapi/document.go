package openapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrOperationNotFound is returned when no operation carries the requested id.
var ErrOperationNotFound = errors.New("openapi: operation not found")

// Document is a loaded and validated OpenAPI document.
type Document struct {
	spec *openapi3.T
}

// Parse loads a document from raw JSON or YAML.
func Parse(ctx context.Context, data []byte) (*Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return newDocument(ctx, spec)
}

// Load reads a document from a file path or an http(s) URL.
func Load(ctx context.Context, location string) (*Document, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.New("openapi: document location is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	var (
		spec *openapi3.T
		err  error
	)
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		var uri *url.URL
		uri, err = url.ParseRequestURI(location)
		if err != nil {
			return nil, fmt.Errorf("openapi: invalid URL %q: %w", location, err)
		}
		loader.IsExternalRefsAllowed = true
		spec, err = loader.LoadFromURI(uri)
	} else {
		spec, err = loader.LoadFromFile(location)
	}
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", location, err)
	}
	return newDocument(ctx, spec)
}

func newDocument(ctx context.Context, spec *openapi3.T) (*Document, error) {
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate: %w", err)
	}
	return &Document{spec: spec}, nil
}

// OperationIDs lists every operation id in the document, sorted.
func (d *Document) OperationIDs() []string {
	var ids []string
	d.eachOperation(func(op *openapi3.Operation) bool {
		if op.OperationID != "" {
			ids = append(ids, op.OperationID)
		}
		return true
	})
	sort.Strings(ids)
	return ids
}

func (d *Document) operation(id string) (*openapi3.Operation, error) {
	var found *openapi3.Operation
	d.eachOperation(func(op *openapi3.Operation) bool {
		if op.OperationID == id {
			found = op
			return false
		}
		return true
	})
	if found == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, id)
	}
	return found, nil
}

func (d *Document) eachOperation(fn func(*openapi3.Operation) bool) {
	if d == nil || d.spec == nil || d.spec.Paths == nil {
		return
	}
	for _, item := range d.spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op == nil {
				continue
			}
			if !fn(op) {
				return
			}
		}
	}
}
