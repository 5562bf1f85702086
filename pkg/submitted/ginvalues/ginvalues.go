// Package ginvalues exposes a gin request's posted form as submitted.Values.
package ginvalues

import (
	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-formbuilder/pkg/submitted"
)

// FromContext returns a lookup over the POST form of the current request. A
// nil context yields submitted.None.
func FromContext(c *gin.Context) submitted.Values {
	if c == nil || c.Request == nil {
		return submitted.None
	}
	return submitted.Func(c.GetPostForm)
}
