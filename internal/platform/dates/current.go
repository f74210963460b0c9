package dates

import (
	"strings"
	"time"

	"github.com/goodsign/monday"

	"github.com/louisbranch/localdate/internal/platform/config"
	"github.com/louisbranch/localdate/internal/platform/i18n/locale"
)

// The 12-hour layout is shared by every locale; monday does not translate
// the day period for all of them (zh_TW keeps "PM").
const (
	layout12Hour = "3:04 PM"
	layout24Hour = "15:04"
)

type display int

const (
	displayDate display = iota
	displayTime
	displayDateTime
)

func (d display) override(formats config.DisplayFormats) string {
	switch d {
	case displayDate:
		return formats.Date
	case displayTime:
		return formats.Time
	default:
		return formats.DateTime
	}
}

func (d display) layout(res locale.Resolution) string {
	timeLayout := layout24Hour
	if res.TwelveHour {
		timeLayout = layout12Hour
	}
	switch d {
	case displayDate:
		return longDateLayout(res.Locale)
	case displayTime:
		return timeLayout
	default:
		return longDateLayout(res.Locale) + " " + timeLayout
	}
}

func longDateLayout(l monday.Locale) string {
	if layout, ok := monday.LongFormatsByLocale[l]; ok && layout != "" {
		return layout
	}
	return monday.DefaultFormatEnUSLong
}

// Formatter renders the current instant for display. The zero value is not
// usable; construct one with NewFormatter.
type Formatter struct {
	now          func() time.Time
	systemLocale func() string
}

// Option customizes a Formatter.
type Option func(*Formatter)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}

// WithSystemLocale overrides how the locale is picked when callers pass none.
func WithSystemLocale(systemLocale func() string) Option {
	return func(f *Formatter) {
		if systemLocale != nil {
			f.systemLocale = systemLocale
		}
	}
}

// NewFormatter returns a Formatter reading the system clock and OS locale.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		now:          time.Now,
		systemLocale: locale.System,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CurrentDate renders today's date. DATE_FORMAT, when set, takes precedence
// and the locale is ignored; otherwise the locale's long date (year, month
// name, day) is used. An empty locale means the OS locale.
func (f *Formatter) CurrentDate(loc string) (string, error) {
	return f.current(displayDate, loc)
}

// CurrentTime renders the current hour and minute, honouring TIME_FORMAT.
func (f *Formatter) CurrentTime(loc string) (string, error) {
	return f.current(displayTime, loc)
}

// CurrentDateTime renders the current date and time, honouring
// DATETIME_FORMAT.
func (f *Formatter) CurrentDateTime(loc string) (string, error) {
	return f.current(displayDateTime, loc)
}

func (f *Formatter) current(d display, loc string) (string, error) {
	formats, err := config.LoadDisplayFormats()
	if err != nil {
		return "", err
	}
	now := f.now()
	if pattern := d.override(formats); pattern != "" {
		return FormatPattern(now, pattern)
	}
	res := f.Resolve(loc)
	return monday.Format(now, d.layout(res), res.Locale), nil
}

// Resolve picks the locale the fallback path renders with.
func (f *Formatter) Resolve(loc string) locale.Resolution {
	if strings.TrimSpace(loc) == "" {
		loc = f.systemLocale()
	}
	return locale.Resolve(loc)
}

var defaultFormatter = NewFormatter()

// CurrentDate renders today's date with the default Formatter.
func CurrentDate(loc string) (string, error) {
	return defaultFormatter.CurrentDate(loc)
}

// CurrentTime renders the current time with the default Formatter.
func CurrentTime(loc string) (string, error) {
	return defaultFormatter.CurrentTime(loc)
}

// CurrentDateTime renders the current date and time with the default
// Formatter.
func CurrentDateTime(loc string) (string, error) {
	return defaultFormatter.CurrentDateTime(loc)
}
