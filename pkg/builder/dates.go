package builder

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// YearSpan is how many years before the current one SelectYear offers.
const YearSpan = 150

// SelectDay renders days "01" to "31" with today's day of month preselected
// unless a matching value was submitted for name.
func (b *Builder) SelectDay(name string, attrs *model.Attributes) string {
	now := b.now()
	days := paddedRange(1, 31, 2)
	days[now.Day()-1] = model.MarkSelected(days[now.Day()-1])
	return b.Select(name, model.List(days...), attrs)
}

// SelectMonth renders months "01" to "12" with the current month preselected
// unless a matching value was submitted for name.
func (b *Builder) SelectMonth(name string, attrs *model.Attributes) string {
	now := b.now()
	months := paddedRange(1, 12, 2)
	months[now.Month()-1] = model.MarkSelected(months[now.Month()-1])
	return b.Select(name, model.List(months...), attrs)
}

// SelectMonthName renders month names keyed "01" to "12". labels replaces the
// English names when it holds exactly twelve entries and is ignored otherwise.
func (b *Builder) SelectMonthName(name string, attrs *model.Attributes, labels ...string) string {
	if len(labels) != 12 {
		labels = englishMonths[:]
	}
	keys := paddedRange(1, 12, 2)
	months := make([]model.Entry, 0, 12)
	for i, key := range keys {
		months = append(months, model.Entry{Value: key, Label: labels[i]})
	}
	return b.SelectMonthNameEntries(name, attrs, months...)
}

// SelectMonthNameEntries renders a month select from a caller supplied
// mapping, which fully replaces the default "01".."12" English one when it
// holds exactly twelve entries. The entry in the current month's position is
// preselected unless a matching value was submitted for name.
func (b *Builder) SelectMonthNameEntries(name string, attrs *model.Attributes, months ...model.Entry) string {
	if len(months) != 12 {
		return b.SelectMonthName(name, attrs)
	}
	now := b.now()
	entries := append([]model.Entry(nil), months...)
	current := int(now.Month()) - 1
	entries[current].Label = model.MarkSelected(entries[current].Label)
	return b.Select(name, model.Keyed(entries...), attrs)
}

// SelectMonthNameLocale renders SelectMonthName with the month names of the
// closest supported locale. locale may be a BCP 47 tag or an Accept-Language
// header value.
func (b *Builder) SelectMonthNameLocale(name string, attrs *model.Attributes, locale string) string {
	return b.SelectMonthName(name, attrs, MonthNames(locale)...)
}

// SelectYear renders the four digit years from YearSpan years ago up to the
// current year, ascending, preselecting the current year unless a matching
// value was submitted for name.
func (b *Builder) SelectYear(name string, attrs *model.Attributes) string {
	now := b.now()
	years := paddedRange(now.Year()-YearSpan, now.Year(), 4)
	years[YearSpan] = model.MarkSelected(years[YearSpan])
	return b.Select(name, model.List(years...), attrs)
}

func paddedRange(from, to, width int) []string {
	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprintf("%0*d", width, i))
	}
	return out
}
