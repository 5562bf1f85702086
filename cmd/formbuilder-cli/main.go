package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/optionset"
	"github.com/goliatone/go-formbuilder/pkg/prompt"
	"github.com/goliatone/go-formbuilder/pkg/render/template/pongo"
	"github.com/goliatone/go-formbuilder/pkg/submitted"
)

func main() {
	source := flag.String("source", "", "OpenAPI document path or URL")
	opID := flag.String("operation", "", "operation ID whose request body becomes the form")
	values := flag.String("values", "", "prior submission, urlencoded (a=1&b=2)")
	interactive := flag.Bool("interactive", false, "prompt for each field before rendering")
	templatePath := flag.String("template", "", "pongo2 template rendered with the field helpers")
	optionsDir := flag.String("options", "", "directory of YAML/JSON option sets")
	submitLabel := flag.String("submit", "Submit", "submit button caption")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	prior, err := submitted.Parse(*values)
	if err != nil {
		log.Fatalf("Invalid -values: %v", err)
	}

	var sets *optionset.Store
	if *optionsDir != "" {
		sets, err = optionset.LoadDir(*optionsDir)
		if err != nil {
			log.Fatalf("Failed to load option sets: %v", err)
		}
	}

	var fields []model.Field
	if *source != "" {
		fields, err = loadFields(ctx, *source, *opID, sets)
		if err != nil {
			log.Fatalf("Failed to derive fields: %v", err)
		}
	}

	if *interactive {
		if len(fields) == 0 {
			log.Fatalf("-interactive needs -source and -operation")
		}
		answers, err := prompt.Collect(ctx, prompt.NewSurveyDriver(), fields, prompt.WithPrevious(prior))
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		if err != nil {
			log.Fatalf("Failed to collect values: %v", err)
		}
		prior = submitted.URLValues(answers)
	}

	b := builder.New(prior)

	var markup string
	switch {
	case *templatePath != "":
		markup, err = renderTemplate(b, sets, *templatePath, fields, *submitLabel)
		if err != nil {
			log.Fatalf("Failed to render template: %v", err)
		}
	case len(fields) > 0:
		markup = openapi.Render(b, fields, *submitLabel)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(markup), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Print(markup)
	}
}

func loadFields(ctx context.Context, source, operationID string, sets *optionset.Store) ([]model.Field, error) {
	doc, err := openapi.Load(ctx, strings.TrimSpace(source))
	if err != nil {
		return nil, err
	}
	if operationID == "" {
		ids := doc.OperationIDs()
		if len(ids) != 1 {
			return nil, fmt.Errorf("-operation is required, available: %s", strings.Join(ids, ", "))
		}
		operationID = ids[0]
	}
	return doc.Fields(operationID, openapi.WithOptionSets(sets))
}

// renderTemplate exposes the derived fields to the template as "fields" and
// the default rendering as "form" (print it with {{ form|safe }}).
func renderTemplate(b *builder.Builder, sets *optionset.Store, path string, fields []model.Field, submitLabel string) (string, error) {
	engine, err := pongo.New(b,
		pongo.WithDir(filepath.Dir(path)),
		pongo.WithOptionSets(sets),
	)
	if err != nil {
		return "", err
	}
	data := map[string]any{
		"fields": fields,
		"form":   openapi.Render(b, fields, submitLabel),
	}
	return engine.RenderTemplate(filepath.Base(path), data)
}
