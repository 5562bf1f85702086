package formbuilder_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	formbuilder "github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestEmbeddedTemplatesContainDefaultForm(t *testing.T) {
	data, err := fs.ReadFile(formbuilder.EmbeddedTemplates(), formbuilder.DefaultTemplate)
	if err != nil {
		t.Fatalf("expected default template to be readable: %v", err)
	}
	if !strings.Contains(string(data), "field(f)") {
		t.Fatalf("expected default template to render fields, got %q", data)
	}
}

func TestGenerateHTMLFromDocument(t *testing.T) {
	doc, err := openapi.Parse(context.Background(), []byte(testsupport.SignupDocument))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := formbuilder.GenerateHTMLFromDocument(doc, formbuilder.Request{
		OperationID: "createAccount",
		Values:      testsupport.Submission("username", `a"b`, "newsletter", "on"),
		Action:      "/signup?a=1&b=2",
		SubmitLabel: "Create",
	})
	if err != nil {
		t.Fatalf("GenerateHTMLFromDocument: %v", err)
	}
	got := string(out)

	for _, fragment := range []string{
		"<form method=\"post\" action=\"/signup?a=1&amp;b=2\">\n",
		`<input type="text" name="username" maxlength="32" required="required" value="a&#34;b">`,
		`<input type="checkbox" name="newsletter" checked="checked" value="on">`,
		`<input type="hidden" name="token" value="abc">`,
		"<input type=\"submit\" value=\"Create\">\n</form>\n",
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in form:\n%s", fragment, got)
		}
	}
}

func TestGenerateHTMLFromDocumentUnknownOperation(t *testing.T) {
	doc, err := openapi.Parse(context.Background(), []byte(testsupport.SignupDocument))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := formbuilder.GenerateHTMLFromDocument(doc, formbuilder.Request{OperationID: "missing"}); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
	if _, err := formbuilder.GenerateHTMLFromDocument(nil, formbuilder.Request{}); err == nil {
		t.Fatalf("expected error for nil document")
	}
}

func TestFacadeRendersStickyField(t *testing.T) {
	b := formbuilder.New(testsupport.Submission("city", " Paris "))
	got := b.Text("city", formbuilder.Attrs("class", "wide"))
	testsupport.AssertMarkup(t, "<input type=\"text\" name=\"city\" class=\"wide\" value=\"Paris\">\n", got)

	if got := formbuilder.Clean(formbuilder.Clean("<b>")); got != "&lt;b&gt;" {
		t.Fatalf("Clean not idempotent: %q", got)
	}
}
