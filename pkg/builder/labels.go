package builder

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

func (b *Builder) label(raw string) string {
	if b.labels == nil {
		return raw
	}
	return b.labels.Sanitize(raw)
}

func strictLabelPolicy() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
