// Package helpers provides utility functions for parsing and processing metadata values.
package helpers

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DatePrecision records how much of a parsed date is actually known.
type DatePrecision int

const (
	DatePrecisionUnspecified DatePrecision = iota
	DatePrecisionYear
	DatePrecisionMonth
	DatePrecisionDay
	DatePrecisionTime
	DatePrecisionDecade
	DatePrecisionCentury
)

// DateQualifier records EDTF's uncertain/approximate markers.
type DateQualifier int

const (
	DateQualifierNone DateQualifier = iota
	DateQualifierApproximate
	DateQualifierUncertain
	DateQualifierBoth
)

// DateValue is a parsed date, optionally a range (IsRange), with enough
// precision information to round-trip into a reader's YEAR/MONTH/DAY tags
// (store tags are plain strings; this is the intermediate a reader builds
// before adding the year, month and day as separate tags).
type DateValue struct {
	Raw string

	Year, Month, Day int
	Precision        DatePrecision
	Qualifier        DateQualifier

	IsRange                   bool
	EndYear, EndMonth, EndDay int
}

// EDTFParser parses Extended Date/Time Format strings.
// Supports a practical subset of EDTF Level 0 and Level 1, enough to cover
// the dateIssued/dateCreated values MODS and EndNote XML records carry.
type EDTFParser struct{}

var (
	yearOnlyRegex  = regexp.MustCompile(`^(\d{4})([~?%])?$`)
	yearMonthRegex = regexp.MustCompile(`^(\d{4})-(\d{2})([~?%])?$`)
	fullDateRegex  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})([~?%])?$`)
	decadeRegex    = regexp.MustCompile(`^(\d{3})[Xx]$|^(\d{4})s$`)
	centuryRegex   = regexp.MustCompile(`^(\d{2})[Xx]{2}$`)
	intervalRegex  = regexp.MustCompile(`^(.+)/(.+)$`)
	timestampRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})`)
)

// Parse parses an EDTF-ish date string into a DateValue.
func (p *EDTFParser) Parse(input string) (*DateValue, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return &DateValue{}, nil
	}

	result := &DateValue{Raw: input}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		result.Year, result.Month, result.Day = t.Year(), int(t.Month()), t.Day()
		result.Precision = DatePrecisionTime
		return result, nil
	}

	if timestampRegex.MatchString(input) {
		layouts := []string{
			"2006-01-02T15:04:05Z07:00",
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, input); err == nil {
				result.Year, result.Month, result.Day = t.Year(), int(t.Month()), t.Day()
				result.Precision = DatePrecisionTime
				return result, nil
			}
		}
	}

	if matches := intervalRegex.FindStringSubmatch(input); matches != nil {
		start := strings.TrimSpace(matches[1])
		end := strings.TrimSpace(matches[2])

		startDate, _ := p.Parse(start)
		result.Year, result.Month, result.Day = startDate.Year, startDate.Month, startDate.Day
		result.Precision = startDate.Precision
		result.Qualifier = startDate.Qualifier

		endDate, _ := p.Parse(end)
		result.EndYear, result.EndMonth, result.EndDay = endDate.Year, endDate.Month, endDate.Day
		result.IsRange = true
		return result, nil
	}

	if matches := fullDateRegex.FindStringSubmatch(input); matches != nil {
		result.Year, _ = strconv.Atoi(matches[1])
		result.Month, _ = strconv.Atoi(matches[2])
		result.Day, _ = strconv.Atoi(matches[3])
		result.Precision = DatePrecisionDay
		result.Qualifier = parseQualifier(matches[4])
		return result, nil
	}

	if matches := yearMonthRegex.FindStringSubmatch(input); matches != nil {
		result.Year, _ = strconv.Atoi(matches[1])
		result.Month, _ = strconv.Atoi(matches[2])
		result.Precision = DatePrecisionMonth
		result.Qualifier = parseQualifier(matches[3])
		return result, nil
	}

	if matches := yearOnlyRegex.FindStringSubmatch(input); matches != nil {
		result.Year, _ = strconv.Atoi(matches[1])
		result.Precision = DatePrecisionYear
		result.Qualifier = parseQualifier(matches[2])
		return result, nil
	}

	if matches := decadeRegex.FindStringSubmatch(input); matches != nil {
		decadeStr := matches[1]
		if decadeStr == "" {
			decadeStr = matches[2][:3]
		}
		decade, _ := strconv.Atoi(decadeStr)
		result.Year = decade * 10
		result.Precision = DatePrecisionDecade
		return result, nil
	}

	if matches := centuryRegex.FindStringSubmatch(input); matches != nil {
		century, _ := strconv.Atoi(matches[1])
		result.Year = century * 100
		result.Precision = DatePrecisionCentury
		return result, nil
	}

	if year, err := strconv.Atoi(input); err == nil && year > 0 && year < 3000 {
		result.Year = year
		result.Precision = DatePrecisionYear
		return result, nil
	}

	result.Precision = DatePrecisionUnspecified
	return result, nil
}

func parseQualifier(s string) DateQualifier {
	switch s {
	case "~":
		return DateQualifierApproximate
	case "?":
		return DateQualifierUncertain
	case "%":
		return DateQualifierBoth
	default:
		return DateQualifierNone
	}
}

// ParseEDTF is a convenience function to parse an EDTF string.
func ParseEDTF(input string) (*DateValue, error) {
	parser := &EDTFParser{}
	return parser.Parse(input)
}

// MonthName returns the English month name for a 1-12 month number, or "".
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

// String renders a DateValue the way a tagged-line writer (RIS, EndNote,
// NBIB) wants it: YYYY, YYYY-MM, or YYYY-MM-DD, falling back to Raw when
// nothing could be parsed.
func (d *DateValue) String() string {
	if d == nil || d.Year == 0 {
		if d != nil {
			return d.Raw
		}
		return ""
	}
	switch d.Precision {
	case DatePrecisionDay, DatePrecisionTime:
		return strconv.Itoa(d.Year) + "-" + pad2(d.Month) + "-" + pad2(d.Day)
	case DatePrecisionMonth:
		return strconv.Itoa(d.Year) + "-" + pad2(d.Month)
	default:
		return strconv.Itoa(d.Year)
	}
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
