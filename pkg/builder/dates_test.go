package builder_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/submitted"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func newDateBuilder(values submitted.Values) *builder.Builder {
	return builder.New(values, builder.WithClock(testsupport.FixedClock(testsupport.ReferenceDate)))
}

func TestSelectDayPreselectsToday(t *testing.T) {
	got := newDateBuilder(nil).SelectDay("day", nil)

	if n := testsupport.CountOptions(got); n != 31 {
		t.Fatalf("expected 31 options, got %d", n)
	}
	if !strings.Contains(got, `<option value="01">01</option>`) || !strings.Contains(got, `<option value="31">31</option>`) {
		t.Fatalf("expected zero padded day range, got:\n%s", got)
	}
	if !strings.Contains(got, `<option value="09" selected="selected">09</option>`) {
		t.Fatalf("expected today preselected, got:\n%s", got)
	}
}

func TestSelectDayHonoursSubmission(t *testing.T) {
	got := newDateBuilder(testsupport.Submission("day", "15")).SelectDay("day", nil)

	if !strings.Contains(got, `<option value="15" selected="selected">15</option>`) {
		t.Fatalf("expected submitted day selected, got:\n%s", got)
	}
	if n := strings.Count(got, "selected="); n != 1 {
		t.Fatalf("expected one selected option, got %d", n)
	}
}

func TestSelectMonthPreselectsCurrentMonth(t *testing.T) {
	got := newDateBuilder(nil).SelectMonth("month", nil)

	if n := testsupport.CountOptions(got); n != 12 {
		t.Fatalf("expected 12 options, got %d", n)
	}
	if !strings.Contains(got, `<option value="03" selected="selected">03</option>`) {
		t.Fatalf("expected current month preselected, got:\n%s", got)
	}
}

func TestSelectMonthNameLabels(t *testing.T) {
	b := newDateBuilder(nil)

	english := b.SelectMonthName("m", nil)
	if !strings.Contains(english, `<option value="03" selected="selected">March</option>`) {
		t.Fatalf("expected English March preselected, got:\n%s", english)
	}

	custom := b.SelectMonthName("m", nil, "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII")
	if !strings.Contains(custom, `<option value="12">XII</option>`) {
		t.Fatalf("expected custom labels, got:\n%s", custom)
	}

	fallback := b.SelectMonthName("m", nil, "only", "three", "labels")
	if !strings.Contains(fallback, `<option value="01">January</option>`) {
		t.Fatalf("expected English fallback for wrong label count, got:\n%s", fallback)
	}
}

func TestSelectMonthNameLocale(t *testing.T) {
	b := newDateBuilder(testsupport.Submission("m", "08"))

	got := b.SelectMonthNameLocale("m", nil, "fr-CA,fr;q=0.9")
	if !strings.Contains(got, `<option value="08" selected="selected">août</option>`) {
		t.Fatalf("expected French labels with submitted month, got:\n%s", got)
	}
	if strings.Contains(got, `value="03" selected`) {
		t.Fatalf("current month must not be preselected when a value was submitted:\n%s", got)
	}
}

func TestMonthNamesFallsBackToEnglish(t *testing.T) {
	for _, locale := range []string{"", "ja", "%%%"} {
		names := builder.MonthNames(locale)
		if diff := cmp.Diff("January", names[0]); diff != "" {
			t.Fatalf("locale %q: first month mismatch (-want +got):\n%s", locale, diff)
		}
	}
	if got := builder.MonthNames("de-AT")[2]; got != "März" {
		t.Fatalf("expected German month names, got %q", got)
	}
}

func TestSelectYearSpansOneHundredFiftyYears(t *testing.T) {
	got := newDateBuilder(nil).SelectYear("y", nil)

	if n := testsupport.CountOptions(got); n != builder.YearSpan+1 {
		t.Fatalf("expected %d options, got %d", builder.YearSpan+1, n)
	}
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if lines[1] != `<option value="1874">1874</option>` {
		t.Fatalf("expected first year 1874, got %q", lines[1])
	}
	if lines[len(lines)-2] != `<option value="2024" selected="selected">2024</option>` {
		t.Fatalf("expected current year last and selected, got %q", lines[len(lines)-2])
	}
	if n := strings.Count(got, "selected="); n != 1 {
		t.Fatalf("expected one selected year, got %d", n)
	}
}

func TestSelectMonthNameEntriesReplacesMapping(t *testing.T) {
	b := newDateBuilder(nil)

	months := make([]model.Entry, 0, 12)
	for i := 1; i <= 12; i++ {
		months = append(months, model.Entry{Value: fmt.Sprintf("m%d", i), Label: fmt.Sprintf("Month %d", i)})
	}

	got := b.SelectMonthNameEntries("m", nil, months...)
	if !strings.Contains(got, `<option value="m3" selected="selected">Month 3</option>`) {
		t.Fatalf("expected caller keys with current month preselected, got:\n%s", got)
	}
	if strings.Contains(got, `value="03"`) {
		t.Fatalf("expected default keys to be replaced, got:\n%s", got)
	}

	fallback := b.SelectMonthNameEntries("m", nil, months[:5]...)
	if !strings.Contains(fallback, `<option value="03" selected="selected">March</option>`) {
		t.Fatalf("expected English mapping for a short mapping, got:\n%s", fallback)
	}
}

func TestDatePickersIgnoreStaleSubmission(t *testing.T) {
	got := newDateBuilder(testsupport.Submission("day", "45")).SelectDay("day", nil)

	if !strings.Contains(got, `<option value="09" selected="selected">09</option>`) {
		t.Fatalf("expected today preselected for an unknown day, got:\n%s", got)
	}
}
