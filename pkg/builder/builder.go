package builder

import (
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbuilder/pkg/submitted"
)

// Option configures a Builder.
type Option func(*Builder)

// WithClock overrides the date source used by the date pickers.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithLabelPolicy sanitises option labels through policy before they are
// written. Without a policy labels are written verbatim.
func WithLabelPolicy(policy *bluemonday.Policy) Option {
	return func(b *Builder) {
		b.labels = policy
	}
}

// WithStrictLabels strips all markup from option labels.
func WithStrictLabels() Option {
	return WithLabelPolicy(strictLabelPolicy())
}

// Builder renders form controls against a fixed submission.
type Builder struct {
	values submitted.Values
	now    func() time.Time
	labels *bluemonday.Policy
}

// New returns a Builder reading prior input from values. A nil values behaves
// as an empty submission.
func New(values submitted.Values, options ...Option) *Builder {
	if values == nil {
		values = submitted.None
	}
	b := &Builder{
		values: values,
		now:    time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Values returns the submission the builder repopulates from.
func (b *Builder) Values() submitted.Values {
	return b.values
}

func (b *Builder) lookup(name string) (string, bool) {
	if name == "" || !b.values.Has(name) {
		return "", false
	}
	return b.values.Get(name), true
}
