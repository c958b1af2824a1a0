package gateway

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatAmount renders a minor-unit integer as a display string. INR gets
// the rupee sign with Indian digit grouping; every other currency renders
// as "CODE 1234.56".
func FormatAmount(minorUnits int64, currency string) string {
	units := minorUnits / 100
	fraction := minorUnits % 100

	if fraction < 0 {
		fraction = -fraction
	}

	if currency == "INR" {
		return fmt.Sprintf("₹%s.%02d", groupIndian(units), fraction)
	}

	return fmt.Sprintf("%s %d.%02d", currency, units, fraction)
}

// groupIndian applies en-IN digit grouping: the last three digits form
// one group, every group before that has two digits.
func groupIndian(units int64) string {
	sign := ""
	if units < 0 {
		sign = "-"
		units = -units
	}

	digits := strconv.FormatInt(units, 10)
	if len(digits) <= 3 {
		return sign + digits
	}

	groups := []string{digits[len(digits)-3:]}
	rest := digits[:len(digits)-3]

	for len(rest) > 2 {
		groups = append([]string{rest[len(rest)-2:]}, groups...)
		rest = rest[:len(rest)-2]
	}

	if rest != "" {
		groups = append([]string{rest}, groups...)
	}

	return sign + strings.Join(groups, ",")
}

// FormatTimestamp renders a Unix timestamp as an ISO-8601 instant in UTC.
func FormatTimestamp(unixSeconds int64) string {
	return time.Unix(unixSeconds, 0).UTC().Format(time.RFC3339)
}

// CurrentTimestamp returns the current instant in ISO-8601 UTC form.
func CurrentTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
