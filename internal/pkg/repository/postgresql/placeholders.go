package postgresql

import (
	"strconv"
	"strings"
)

// Placeholders renders a comma-separated run of positional parameters
// ($start .. $start+count-1) for IN lists built from client-supplied values.
// Values are always bound, never spliced into the statement text.
func Placeholders(start, count int) string {
	var b strings.Builder

	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(start + i))
	}

	return b.String()
}
