package dates

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/goodsign/monday"
)

var fixedNow = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

func clearOverrides(t *testing.T) {
	t.Helper()
	t.Setenv("DATE_FORMAT", "")
	t.Setenv("TIME_FORMAT", "")
	t.Setenv("DATETIME_FORMAT", "")
}

func newTestFormatter(systemLocale string) *Formatter {
	return NewFormatter(
		WithClock(func() time.Time { return fixedNow }),
		WithSystemLocale(func() string { return systemLocale }),
	)
}

func TestCurrentDateOverrideIgnoresLocale(t *testing.T) {
	clearOverrides(t)
	t.Setenv("DATE_FORMAT", "yyyy-MM-dd")
	f := newTestFormatter("en-US")

	for _, loc := range []string{"", "en-US", "de_DE", "fr-FR"} {
		got, err := f.CurrentDate(loc)
		if err != nil {
			t.Fatalf("current date %q: %v", loc, err)
		}
		if got != "2024-03-05" {
			t.Fatalf("CurrentDate(%q) = %q, want pattern output", loc, got)
		}
	}
}

func TestCurrentTimeAndDateTimeOverrides(t *testing.T) {
	clearOverrides(t)
	t.Setenv("TIME_FORMAT", "HH.mm")
	t.Setenv("DATETIME_FORMAT", "dd/MM/yyyy HH:mm")
	f := newTestFormatter("en-US")

	gotTime, err := f.CurrentTime("en-US")
	if err != nil {
		t.Fatalf("current time: %v", err)
	}
	if gotTime != "14.07" {
		t.Fatalf("expected time override, got %q", gotTime)
	}
	gotDateTime, err := f.CurrentDateTime("de-DE")
	if err != nil {
		t.Fatalf("current date time: %v", err)
	}
	if gotDateTime != "05/03/2024 14:07" {
		t.Fatalf("expected date time override, got %q", gotDateTime)
	}
}

func TestOverridesAreOperationSpecific(t *testing.T) {
	clearOverrides(t)
	t.Setenv("TIME_FORMAT", "HH.mm")
	f := newTestFormatter("en-US")

	got, err := f.CurrentDate("en-US")
	if err != nil {
		t.Fatalf("current date: %v", err)
	}
	if strings.Contains(got, "14.07") {
		t.Fatalf("expected date to ignore the time override, got %q", got)
	}
}

func TestOverridesAreReadOnEveryCall(t *testing.T) {
	clearOverrides(t)
	f := newTestFormatter("en-US")

	t.Setenv("DATE_FORMAT", "yyyy")
	first, err := f.CurrentDate("")
	if err != nil {
		t.Fatalf("current date: %v", err)
	}
	t.Setenv("DATE_FORMAT", "MM")
	second, err := f.CurrentDate("")
	if err != nil {
		t.Fatalf("current date: %v", err)
	}
	if first != "2024" || second != "03" {
		t.Fatalf("expected live configuration, got %q then %q", first, second)
	}
}

func TestCurrentDateInvalidOverrideReturnsError(t *testing.T) {
	clearOverrides(t)
	t.Setenv("DATE_FORMAT", "yyyy-MM-DD")
	f := newTestFormatter("en-US")

	if _, err := f.CurrentDate("en-US"); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}

var fourDigitYear = regexp.MustCompile(`\b2024\b`)

func TestCurrentDateLocaleFallbackHasYearMonthNameAndDay(t *testing.T) {
	clearOverrides(t)
	f := newTestFormatter("en-US")

	for _, loc := range []string{"", "en-US", "en_GB", "de-DE", "fr_FR", "es-ES", "not-a-locale"} {
		got, err := f.CurrentDate(loc)
		if err != nil {
			t.Fatalf("current date %q: %v", loc, err)
		}
		res := f.Resolve(loc)
		monthName := monday.Format(fixedNow, "January", res.Locale)
		if !fourDigitYear.MatchString(got) {
			t.Fatalf("CurrentDate(%q) = %q: missing 4-digit year", loc, got)
		}
		if !strings.Contains(strings.ToLower(got), strings.ToLower(monthName)) {
			t.Fatalf("CurrentDate(%q) = %q: missing month name %q", loc, got, monthName)
		}
		if !strings.Contains(got, "5") {
			t.Fatalf("CurrentDate(%q) = %q: missing day", loc, got)
		}
	}
}

func TestCurrentDateUsesSystemLocaleWhenNoneGiven(t *testing.T) {
	clearOverrides(t)
	f := newTestFormatter("de-DE")

	got, err := f.CurrentDate("")
	if err != nil {
		t.Fatalf("current date: %v", err)
	}
	if want := monday.Format(fixedNow, "January", monday.LocaleDeDE); !strings.Contains(got, want) {
		t.Fatalf("expected German month %q in %q", want, got)
	}
}

func TestCurrentTimeFollowsRegionClock(t *testing.T) {
	clearOverrides(t)
	f := newTestFormatter("en-US")

	us, err := f.CurrentTime("en-US")
	if err != nil {
		t.Fatalf("current time: %v", err)
	}
	if us != "2:07 PM" {
		t.Fatalf("expected 12-hour clock for en-US, got %q", us)
	}
	de, err := f.CurrentTime("de-DE")
	if err != nil {
		t.Fatalf("current time: %v", err)
	}
	if de != "14:07" {
		t.Fatalf("expected 24-hour clock for de-DE, got %q", de)
	}
}

func TestCurrentTimeUsesRequestedRegionClock(t *testing.T) {
	clearOverrides(t)
	f := newTestFormatter("en-US")

	for _, loc := range []string{"en-AU", "en_CA"} {
		got, err := f.CurrentTime(loc)
		if err != nil {
			t.Fatalf("current time %q: %v", loc, err)
		}
		if !strings.HasPrefix(got, "2:07") {
			t.Fatalf("CurrentTime(%q) = %q, want 12-hour clock", loc, got)
		}
	}
}

func TestCurrentTimeKeepsLatinDayPeriodForTwelveHourLocales(t *testing.T) {
	clearOverrides(t)
	f := newTestFormatter("en-US")

	got, err := f.CurrentTime("zh-TW")
	if err != nil {
		t.Fatalf("current time: %v", err)
	}
	if got != "2:07 PM" {
		t.Fatalf("expected shared 12-hour layout, got %q", got)
	}
}

func TestCurrentDateTimeCombinesDateAndTime(t *testing.T) {
	clearOverrides(t)
	f := newTestFormatter("en-US")

	date, err := f.CurrentDate("de-DE")
	if err != nil {
		t.Fatalf("current date: %v", err)
	}
	clock, err := f.CurrentTime("de-DE")
	if err != nil {
		t.Fatalf("current time: %v", err)
	}
	got, err := f.CurrentDateTime("de-DE")
	if err != nil {
		t.Fatalf("current date time: %v", err)
	}
	if got != date+" "+clock {
		t.Fatalf("expected %q, got %q", date+" "+clock, got)
	}
}

func TestPackageLevelHelpersReadTheClock(t *testing.T) {
	clearOverrides(t)
	t.Setenv("DATE_FORMAT", "yyyy")

	got, err := CurrentDate("")
	if err != nil {
		t.Fatalf("current date: %v", err)
	}
	if got != time.Now().Format("2006") {
		t.Fatalf("expected current year, got %q", got)
	}
	if _, err := CurrentTime("en-US"); err != nil {
		t.Fatalf("current time: %v", err)
	}
	if _, err := CurrentDateTime("en-US"); err != nil {
		t.Fatalf("current date time: %v", err)
	}
}
