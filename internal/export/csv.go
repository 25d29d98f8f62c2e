// Package export turns session results into the resultsVisual.csv payload
// and hands it to a sink.
package export

import (
	"strconv"
	"strings"

	"github.com/iburimskiy/fitts/internal/round"
)

const header = "Reaction times in ms (visual), Difficulty, Circle Size"

// CSV formats records as comma-and-space separated rows with CRLF line endings.
func CSV(records []round.Record) []byte {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\r\n")
	for _, r := range records {
		b.WriteString(formatNumber(r.ReactionTime))
		b.WriteString(", ")
		b.WriteString(formatNumber(r.Difficulty))
		b.WriteString(", ")
		b.WriteString(formatNumber(r.Diameter))
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}

// formatNumber prints the shortest representation, without a trailing ".0".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
