package testsupport

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/submitted"
)

// ReferenceDate is the fixed "today" used by date picker tests.
var ReferenceDate = time.Date(2024, time.March, 9, 10, 30, 0, 0, time.UTC)

// FixedClock returns a clock that always reports at.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// Submission builds a submitted.Map from alternating name/value pairs.
func Submission(pairs ...string) submitted.Map {
	out := make(submitted.Map, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out[pairs[i]] = pairs[i+1]
	}
	return out
}

// AssertMarkup fails the test when got differs from want.
func AssertMarkup(t *testing.T, want, got string) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

// CountOptions returns the number of <option> elements in markup.
func CountOptions(markup string) int {
	return strings.Count(markup, "<option ")
}

// SignupDocument is a small OpenAPI document exercising every field mapping.
const SignupDocument = `{
  "openapi": "3.0.3",
  "info": { "title": "Signup", "version": "1.0.0" },
  "paths": {
    "/signup": {
      "post": {
        "operationId": "createAccount",
        "requestBody": {
          "content": {
            "application/x-www-form-urlencoded": {
              "schema": { "$ref": "#/components/schemas/Account" }
            }
          }
        },
        "responses": { "201": { "description": "created" } }
      }
    },
    "/ping": {
      "get": {
        "operationId": "ping",
        "responses": { "200": { "description": "ok" } }
      }
    }
  },
  "components": {
    "schemas": {
      "Account": {
        "type": "object",
        "required": ["email", "username"],
        "properties": {
          "username": { "type": "string", "title": "Username", "maxLength": 32 },
          "email": { "type": "string", "format": "email" },
          "secret": { "type": "string", "format": "password" },
          "plan": { "type": "string", "enum": ["free", "pro", "team"] },
          "newsletter": { "type": "boolean" },
          "bio": { "type": "string", "maxLength": 2000 },
          "token": { "type": "string", "readOnly": true, "default": "abc" }
        }
      }
    }
  }
}`
