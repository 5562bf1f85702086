// Package openapi derives sticky form fields from the request body of an
// OpenAPI 3 operation. Documents are loaded and validated with kin-openapi;
// each top-level property of the request schema becomes one model.Field,
// ordered by property name.
//
// Mapping:
//
//	readOnly                     hidden input carrying the default
//	enum                         select (List, default value preselected)
//	boolean                      checkbox
//	integer, number              number input with min/max
//	format: password | email     password / email input
//	maxLength > 255              textarea
//	x-formbuilder-widget         explicit kind override
//	x-formbuilder-options        select fed by a named option set
//	anything else                text input
//
// Cases are checked top to bottom, so a readOnly property is hidden whatever
// its type. Required properties carry required="required".
package openapi
