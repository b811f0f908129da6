package gedcom

import (
	"strconv"
	"strings"

	"github.com/dusk-indust/pedigree/internal/model"
)

// monthNumbers maps the twelve standard 3-letter month abbreviations
// (uppercased) to month numbers. Unrecognized month text yields 0.
var monthNumbers = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

// dateQualifiers maps GEDCOM date qualifier prefixes to the model enum.
var dateQualifiers = map[string]model.DateQualifier{
	"ABT": model.QualifierCirca,
	"EST": model.QualifierEstimated,
	"BEF": model.QualifierBefore,
	"AFT": model.QualifierAfter,
	"CAL": model.QualifierExact,
}

// parseDate converts a raw date string into structured DateInfo. Recognized
// shapes: "15 JUN 1980" (day, month abbreviation, year), a bare 4-digit
// year, and either preceded by a qualifier prefix (ABT/EST/BEF/AFT/CAL).
// Anything else is preserved verbatim in Text with no structured fields.
func parseDate(raw string) *model.DateInfo {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	d := &model.DateInfo{}
	tokens := strings.Fields(raw)

	if q, ok := dateQualifiers[strings.ToUpper(tokens[0])]; ok {
		d.Qualifier = q
		tokens = tokens[1:]
	}

	switch len(tokens) {
	case 3:
		day, dayErr := strconv.Atoi(tokens[0])
		month := monthNumbers[strings.ToUpper(tokens[1])]
		year, yearErr := strconv.Atoi(tokens[2])
		if dayErr == nil && yearErr == nil {
			d.Day = day
			d.Month = month
			d.Year = year
			return d
		}
	case 1:
		if isYear(tokens[0]) {
			d.Year, _ = strconv.Atoi(tokens[0])
			return d
		}
	}

	// Unparseable token pattern: keep the original rendering only. The
	// qualifier is dropped too so the text round-trips untouched.
	return &model.DateInfo{Text: raw}
}

// isYear reports whether tok is exactly four digits.
func isYear(tok string) bool {
	if len(tok) != 4 {
		return false
	}
	for _, c := range tok {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
