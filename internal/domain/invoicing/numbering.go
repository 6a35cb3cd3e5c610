package invoicing

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultNumberPrefix is prepended to generated invoice numbers
const DefaultNumberPrefix = "INV-"

// NextNumber returns the number following the highest "<prefix><n>" among
// existing, zero padded to four digits. Numbers that do not carry the prefix
// or whose suffix is not numeric are ignored.
func NextNumber(prefix string, existing []string) string {
	highest := 0
	for _, number := range existing {
		rest, ok := strings.CutPrefix(number, prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			continue
		}
		highest = max(highest, n)
	}
	return fmt.Sprintf("%s%04d", prefix, highest+1)
}
