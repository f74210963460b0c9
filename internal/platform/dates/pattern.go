package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// ErrInvalidPattern reports an override pattern that cannot be rendered.
var ErrInvalidPattern = errors.New("invalid format pattern")

// FormatPattern renders t using a Unicode date-field pattern such as
// "yyyy-MM-dd HH:mm", "EEEE, MMMM do" or the "PPP" / "p" presets. Text inside
// single quotes is copied verbatim and '' is a literal quote. Patterns with a
// '%' outside quoted text are treated as strftime patterns instead.
func FormatPattern(t time.Time, pattern string) (string, error) {
	if isStrftime(pattern) {
		return strftime.Format(pattern, t), nil
	}
	return formatFields(t, pattern)
}

func isStrftime(pattern string) bool {
	quoted := false
	for _, r := range pattern {
		switch r {
		case '\'':
			quoted = !quoted
		case '%':
			if !quoted {
				return true
			}
		}
	}
	return false
}

func formatFields(t time.Time, pattern string) (string, error) {
	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			i = copyQuoted(&b, runes, i)
		case r == 'P' || r == 'p':
			preset, next := expandPreset(runes, i)
			field, err := formatFields(t, preset)
			if err != nil {
				return "", err
			}
			b.WriteString(field)
			i = next
		case isPatternLetter(r):
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			if j-i == 1 && j < len(runes) && runes[j] == 'o' {
				if value, ok := ordinalField(t, r); ok {
					b.WriteString(ordinal(value))
					i = j + 1
					continue
				}
			}
			field, err := formatField(t, r, j-i)
			if err != nil {
				return "", err
			}
			b.WriteString(field)
			i = j
		default:
			b.WriteRune(r)
			i++
		}
	}
	return b.String(), nil
}

// Presets indexed by width - 1: short, medium, long, full (en-US).
var (
	datePresets = [4]string{"MM/dd/yyyy", "MMM d, y", "MMMM do, y", "EEEE, MMMM do, y"}
	timePresets = [4]string{"h:mm a", "h:mm:ss a", "h:mm:ss a z", "h:mm:ss a zzzz"}
)

// expandPreset consumes a P+, p+ or P+p+ run starting at runes[start] and
// returns the pattern it stands for and the index after it.
func expandPreset(runes []rune, start int) (string, int) {
	i := start
	dateWidth := 0
	for i < len(runes) && runes[i] == 'P' {
		dateWidth++
		i++
	}
	timeWidth := 0
	for i < len(runes) && runes[i] == 'p' {
		timeWidth++
		i++
	}
	if dateWidth == 0 {
		return timePresets[min(timeWidth, 4)-1], i
	}
	datePart := datePresets[min(dateWidth, 4)-1]
	switch {
	case timeWidth == 0:
		return datePart, i
	case dateWidth >= 3:
		return datePart + " 'at' " + timePresets[min(timeWidth, 4)-1], i
	default:
		return datePart + ", " + timePresets[min(timeWidth, 4)-1], i
	}
}

// ordinalField returns the numeric value a single letter renders as when it
// is followed by the ordinal marker 'o'.
func ordinalField(t time.Time, letter rune) (int, bool) {
	switch letter {
	case 'y':
		return t.Year(), true
	case 'Y':
		return localWeekYear(t), true
	case 'Q', 'q':
		return quarterOf(t), true
	case 'M', 'L':
		return int(t.Month()), true
	case 'w':
		return localWeek(t), true
	case 'I':
		_, week := t.ISOWeek()
		return week, true
	case 'd':
		return t.Day(), true
	case 'D':
		return t.YearDay(), true
	case 'e', 'c':
		return localWeekday(t), true
	case 'i':
		return isoWeekday(t), true
	case 'h':
		return hour12(t), true
	case 'H':
		return t.Hour(), true
	case 'K':
		return t.Hour() % 12, true
	case 'k':
		return hour24(t), true
	case 'm':
		return t.Minute(), true
	case 's':
		return t.Second(), true
	default:
		return 0, false
	}
}

// copyQuoted writes the literal starting at runes[start] and returns the
// index after it. An unterminated literal runs to the end of the pattern.
func copyQuoted(b *strings.Builder, runes []rune, start int) int {
	i := start + 1
	if i < len(runes) && runes[i] == '\'' {
		b.WriteRune('\'')
		return i + 1
	}
	for i < len(runes) {
		if runes[i] == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			return i + 1
		}
		b.WriteRune(runes[i])
		i++
	}
	return i
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func formatField(t time.Time, letter rune, n int) (string, error) {
	switch letter {
	case 'G':
		switch {
		case n <= 3:
			return era(t, "AD", "BC"), nil
		case n == 4:
			return era(t, "Anno Domini", "Before Christ"), nil
		default:
			return era(t, "A", "B"), nil
		}
	case 'y':
		if n == 2 {
			return pad(t.Year()%100, 2), nil
		}
		return pad(t.Year(), n), nil
	case 'Y':
		if n == 2 || n == 4 {
			return "", fmt.Errorf("%w: use y instead of Y for the calendar year", ErrInvalidPattern)
		}
		return pad(localWeekYear(t), n), nil
	case 'R':
		year, _ := t.ISOWeek()
		return pad(year, n), nil
	case 'Q', 'q':
		return quarter(t, n), nil
	case 'M', 'L':
		return month(t, n), nil
	case 'w':
		return pad(localWeek(t), n), nil
	case 'I':
		_, week := t.ISOWeek()
		return pad(week, n), nil
	case 'd':
		return pad(t.Day(), n), nil
	case 'D':
		if n < 3 {
			return "", fmt.Errorf("%w: use d instead of D for the day of the month", ErrInvalidPattern)
		}
		return pad(t.YearDay(), n), nil
	case 'E':
		return weekday(t, n), nil
	case 'e', 'c':
		if n <= 2 {
			return pad(localWeekday(t), n), nil
		}
		return weekday(t, n), nil
	case 'i':
		if n <= 2 {
			return pad(isoWeekday(t), n), nil
		}
		return weekday(t, n), nil
	case 'a':
		return dayPeriod(t, n), nil
	case 'h':
		return pad(hour12(t), n), nil
	case 'H':
		return pad(t.Hour(), n), nil
	case 'K':
		return pad(t.Hour()%12, n), nil
	case 'k':
		return pad(hour24(t), n), nil
	case 'm':
		return pad(t.Minute(), n), nil
	case 's':
		return pad(t.Second(), n), nil
	case 'S':
		return fraction(t, n), nil
	case 'X':
		if _, offset := t.Zone(); offset == 0 {
			return "Z", nil
		}
		return isoOffset(t, n), nil
	case 'x':
		return isoOffset(t, n), nil
	case 'O':
		return gmtOffset(t, n), nil
	case 'z':
		return gmtOffset(t, n), nil
	case 't':
		return strconv.FormatInt(t.Unix(), 10), nil
	case 'T':
		return strconv.FormatInt(t.UnixMilli(), 10), nil
	default:
		return "", fmt.Errorf("%w: unsupported field %q", ErrInvalidPattern, strings.Repeat(string(letter), n))
	}
}

func pad(value, width int) string {
	if value < 0 {
		return "-" + pad(-value, width)
	}
	s := strconv.Itoa(value)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func era(t time.Time, ad, bc string) string {
	if t.Year() > 0 {
		return ad
	}
	return bc
}

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

func quarter(t time.Time, n int) string {
	q := quarterOf(t)
	switch n {
	case 2:
		return pad(q, 2)
	case 3:
		return "Q" + strconv.Itoa(q)
	case 4:
		return ordinal(q) + " quarter"
	default:
		return strconv.Itoa(q)
	}
}

func month(t time.Time, n int) string {
	name := t.Month().String()
	switch n {
	case 1:
		return strconv.Itoa(int(t.Month()))
	case 2:
		return pad(int(t.Month()), 2)
	case 3:
		return name[:3]
	case 4:
		return name
	default:
		return name[:1]
	}
}

func weekday(t time.Time, n int) string {
	name := t.Weekday().String()
	switch {
	case n <= 3:
		return name[:3]
	case n == 4:
		return name
	case n == 5:
		return name[:1]
	default:
		return name[:2]
	}
}

func hour12(t time.Time) int {
	if hour := t.Hour() % 12; hour != 0 {
		return hour
	}
	return 12
}

func hour24(t time.Time) int {
	if t.Hour() == 0 {
		return 24
	}
	return t.Hour()
}

// localWeekday numbers days from Sunday = 1.
func localWeekday(t time.Time) int {
	return int(t.Weekday()) + 1
}

// Local weeks start on Sunday and week 1 is the week containing January 1.

func civilDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func startOfWeek(day time.Time) time.Time {
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func startOfWeekYear(year int) time.Time {
	return startOfWeek(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
}

func localWeekYear(t time.Time) int {
	day := civilDay(t)
	if !day.Before(startOfWeekYear(day.Year() + 1)) {
		return day.Year() + 1
	}
	return day.Year()
}

func localWeek(t time.Time) int {
	day := civilDay(t)
	days := int(startOfWeek(day).Sub(startOfWeekYear(localWeekYear(t))).Hours()) / 24
	return days/7 + 1
}

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

func dayPeriod(t time.Time, n int) string {
	pm := t.Hour() >= 12
	switch {
	case n <= 2:
		if pm {
			return "PM"
		}
		return "AM"
	case n == 3:
		if pm {
			return "pm"
		}
		return "am"
	case n == 4:
		if pm {
			return "p.m."
		}
		return "a.m."
	default:
		if pm {
			return "p"
		}
		return "a"
	}
}

func fraction(t time.Time, n int) string {
	digits := pad(t.Nanosecond(), 9)
	if n <= len(digits) {
		return digits[:n]
	}
	return digits + strings.Repeat("0", n-len(digits))
}

func isoOffset(t time.Time, n int) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours, minutes := offset/3600, (offset%3600)/60
	switch n {
	case 1:
		if minutes == 0 {
			return sign + pad(hours, 2)
		}
		return sign + pad(hours, 2) + pad(minutes, 2)
	case 2, 4:
		return sign + pad(hours, 2) + pad(minutes, 2)
	default:
		return sign + pad(hours, 2) + ":" + pad(minutes, 2)
	}
}

func gmtOffset(t time.Time, n int) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours, minutes := offset/3600, (offset%3600)/60
	if n >= 4 {
		return "GMT" + sign + pad(hours, 2) + ":" + pad(minutes, 2)
	}
	if minutes == 0 {
		return "GMT" + sign + strconv.Itoa(hours)
	}
	return "GMT" + sign + strconv.Itoa(hours) + ":" + pad(minutes, 2)
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
