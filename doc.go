// Package formbuilder renders sticky HTML forms: controls repopulated from the
// values posted with the previous request.
//
// The root package re-exports the common entry points of pkg/builder and adds
// GenerateHTML, which derives a complete form from an OpenAPI operation:
//
//	html, err := formbuilder.GenerateHTML(ctx, formbuilder.Request{
//		Source:      "openapi.yaml",
//		OperationID: "createAccount",
//		Values:      submitted.URLValues(r.PostForm),
//	})
//
// Lower level packages:
//
//	pkg/builder                 field builders bound to a submission
//	pkg/model                   fields, ordered attributes, option lists
//	pkg/submitted               submission adapters (map, url.Values, gin)
//	pkg/optionset               YAML/JSON option catalogs
//	pkg/openapi                 field lists from OpenAPI request bodies
//	pkg/render/template/pongo   pongo2 template helpers
//	pkg/prompt                  terminal collection of submissions
package formbuilder
