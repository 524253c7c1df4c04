// Package division maps contest division colours to star counts and labels.
package division

import (
	"strconv"
	"strings"
)

var stars = map[string]int{
	"#FFBF00": 5,
	"#684273": 4,
	"#3366CC": 3,
	"#1E7D22": 2,
	"#666666": 1,
}

var labels = map[string]string{
	"#666666": "Division-4 (1Star)",
	"#1E7D22": "Division-3 (2Star)",
	"#3366CC": "Division-2 (3Star)",
}

func normalize(color string) string {
	return strings.ToUpper(strings.TrimSpace(color))
}

// Stars returns the star count for a division colour.
func Stars(color string) (int, bool) {
	n, ok := stars[normalize(color)]
	return n, ok
}

// Label returns the division name for a colour. Only divisions 2 to 4 carry
// a label.
func Label(color string) (string, bool) {
	l, ok := labels[normalize(color)]
	return l, ok
}

// Symbol renders a star count the way the dashboard shows it, e.g. "3⭐".
func Symbol(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n) + "⭐"
}
