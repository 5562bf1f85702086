package openapi

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/optionset"
)

const (
	widgetExtensionKey  = "x-formbuilder-widget"
	optionsExtensionKey = "x-formbuilder-options"
	textareaThreshold   = 255
)

// FieldsOption configures field derivation.
type FieldsOption func(*fieldsConfig)

type fieldsConfig struct {
	sets *optionset.Store
}

// WithOptionSets resolves x-formbuilder-options names against store. A
// property naming a known set becomes a select offering that set.
func WithOptionSets(store *optionset.Store) FieldsOption {
	return func(c *fieldsConfig) {
		c.sets = store
	}
}

var preferredMediaTypes = []string{
	"application/x-www-form-urlencoded",
	"multipart/form-data",
	"application/json",
}

// Fields maps the request body schema of operationID onto form fields. An
// operation without a request body yields no fields.
func (d *Document) Fields(operationID string, options ...FieldsOption) ([]model.Field, error) {
	cfg := fieldsConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	op, err := d.operation(operationID)
	if err != nil {
		return nil, err
	}

	schema := requestSchema(op.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return nil, nil
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]model.Field, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, isRequired := required[name]
		field := fieldFromSchema(name, ref.Value, isRequired)
		if setName, ok := ref.Value.Extensions[optionsExtensionKey].(string); ok {
			if set, found := cfg.sets.Get(strings.TrimSpace(setName)); found {
				field.Kind = model.KindSelect
				field.Options = set
				field.Attributes.Delete("maxlength")
			}
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// Render writes every field followed by a submit button captioned
// submitLabel.
func Render(b *builder.Builder, fields []model.Field, submitLabel string) string {
	return b.Fields(fields...) + b.Submit(submitLabel, nil)
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range preferredMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldFromSchema(name string, schema *openapi3.Schema, required bool) model.Field {
	field := model.Field{
		Kind:       model.KindText,
		Name:       name,
		Label:      name,
		Attributes: model.Attrs(),
	}
	if title := strings.TrimSpace(schema.Title); title != "" {
		field.Label = title
	}

	typ := schemaType(schema.Type)
	switch {
	case schema.ReadOnly:
		field.Kind = model.KindHidden
		if schema.Default != nil {
			field.Attributes.Set("value", fmt.Sprint(schema.Default))
		}
	case len(schema.Enum) > 0:
		field.Kind = model.KindSelect
		field.Options = enumOptions(schema.Enum, schema.Default)
	case typ == "boolean":
		field.Kind = model.KindCheckbox
	case typ == "integer" || typ == "number":
		field.Kind = model.Kind("number")
		if schema.Min != nil {
			field.Attributes.Set("min", formatNumber(*schema.Min))
		}
		if schema.Max != nil {
			field.Attributes.Set("max", formatNumber(*schema.Max))
		}
	case schema.Format == "password":
		field.Kind = model.KindPassword
	case schema.Format == "email":
		field.Kind = model.KindEmail
	case schema.MaxLength != nil && *schema.MaxLength > textareaThreshold:
		field.Kind = model.KindTextarea
	}

	if schema.MaxLength != nil && field.Kind.IsInput() && field.Kind != model.KindHidden {
		field.Attributes.Set("maxlength", strconv.FormatUint(*schema.MaxLength, 10))
	}
	if widget, ok := schema.Extensions[widgetExtensionKey].(string); ok && strings.TrimSpace(widget) != "" {
		field.Kind = model.Kind(strings.TrimSpace(widget))
	}
	if required && field.Kind != model.KindHidden {
		field.Attributes.Set("required", "required")
	}
	return field
}

func enumOptions(values []any, defaultValue any) model.Options {
	fallback := ""
	if defaultValue != nil {
		fallback = fmt.Sprint(defaultValue)
	}
	labels := make([]string, 0, len(values))
	for _, value := range values {
		label := fmt.Sprint(value)
		if defaultValue != nil && label == fallback {
			label = model.MarkSelected(label)
		}
		labels = append(labels, label)
	}
	return model.List(labels...)
}

func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
