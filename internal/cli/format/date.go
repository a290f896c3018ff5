// Package format renders API timestamps for people.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// InvalidDate is returned for values that do not parse as a point in time.
const InvalidDate = "Invalid Date"

var (
	Spanish = language.MustParse("es-ES")
	English = language.MustParse("en-US")

	supported = []language.Tag{Spanish, English}
	matcher   = language.NewMatcher(supported)
)

var monthsES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// layouts with an explicit offset or zone
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
}

// ISO date-only forms, read as UTC
var dateOnlyLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

// shorter digit strings are years or garbage, not timestamps
const minEpochMillisDigits = 7

// layouts read in the formatter's location
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"January 2, 2006 15:04:05",
	"January 2, 2006",
}

// Formatter renders dates in one locale and time zone.
type Formatter struct {
	Tag      language.Tag
	Location *time.Location
}

// New matches locale against the supported set (es-ES, en-US); anything else falls back to es-ES.
// A nil loc means time.Local.
func New(locale string, loc *time.Location) *Formatter {
	tag := Spanish
	if t, err := language.Parse(locale); err == nil {
		_, idx, conf := matcher.Match(t)
		if conf != language.No {
			tag = supported[idx]
		}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{Tag: tag, Location: loc}
}

// Date formats with es-ES in the local time zone.
func Date(value string) string {
	return New("es-ES", nil).Format(value)
}

// Parse reads value the way a browser Date constructor reads the common forms:
// RFC3339 and friends, ISO date-times without offset (local), ISO date-only forms
// "2006", "2006-01" and "2006-01-02" (UTC) and, for digit strings longer than a year,
// integer milliseconds since the epoch.
func (f *Formatter) Parse(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, false
	}
	for _, l := range zonedLayouts {
		if t, err := time.Parse(l, v); err == nil {
			return t, true
		}
	}
	for _, l := range dateOnlyLayouts {
		if t, err := time.Parse(l, v); err == nil {
			return t, true
		}
	}
	for _, l := range localLayouts {
		if t, err := time.ParseInLocation(l, v, f.Location); err == nil {
			return t, true
		}
	}
	if len(v) >= minEpochMillisDigits {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.UnixMilli(ms), true
		}
	}
	return time.Time{}, false
}

// Format returns a long, human-readable date with hour and minute,
// e.g. "15 de marzo de 2024, 14:30" for es-ES.
func (f *Formatter) Format(value string) string {
	t, ok := f.Parse(value)
	if !ok {
		return InvalidDate
	}
	return f.FormatTime(t)
}

// FormatTime renders t in the formatter's location and locale.
func (f *Formatter) FormatTime(t time.Time) string {
	t = t.In(f.Location)
	if f.Tag == English {
		return t.Format("January 2, 2006 at 03:04 PM")
	}
	return fmt.Sprintf("%d de %s de %d, %02d:%02d",
		t.Day(), monthsES[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
