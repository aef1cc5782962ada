package maintenance

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// YearPrefix returns the two-digit year used to scope codes ("25" for 2025).
func YearPrefix(t time.Time) string {
	return fmt.Sprintf("%02d", t.Year()%100)
}

// ParseCode splits a "YY-N" code. ok is false for anything else.
func ParseCode(code string) (year string, seq int, ok bool) {
	year, num, found := strings.Cut(code, "-")
	if !found || len(year) != 2 || !isDigits(year) || num == "" || !isDigits(num) {
		return "", 0, false
	}
	seq, err := strconv.Atoi(num)
	if err != nil {
		return "", 0, false
	}
	return year, seq, true
}

// FormatCode builds "YY-N".
func FormatCode(year string, seq int) string {
	return year + "-" + strconv.Itoa(seq)
}

// NextCode returns the code to hand out next in the year of now, along with its
// sequence number. existing holds every code currently in use (work order ids and
// schedule numbers); issued is the highest number previously handed out for the
// year. The result is one past the largest of them, so numbers freed by deletion
// are never handed out again.
func NextCode(now time.Time, existing []string, issued int) (string, int) {
	year := YearPrefix(now)
	highest := max(issued, 0)
	for _, code := range existing {
		y, seq, ok := ParseCode(code)
		if !ok || y != year {
			continue
		}
		highest = max(highest, seq)
	}
	next := highest + 1
	return FormatCode(year, next), next
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
