// Package jsonscan locates JSON values embedded in otherwise plain-text
// log lines and maps their tokens back to source ranges for
// highlighting.
//
// Re-location works by searching for each token's literal text inside
// the matched region, taking the first occurrence. A repeated key name,
// a duplicate string value, or a numeral that also appears as a
// substring elsewhere in the region can therefore be mis-attributed.
// This is an accepted approximation, not a correctness guarantee; full
// source-mapping would require a position-tracking parser.
package jsonscan

import (
	"encoding/json"
	"strings"
)

// Region is one successfully parsed JSON value inside a line.
type Region struct {
	Start  int // byte offset of the opening bracket in the line
	Length int // number of bytes the parse consumed
	Value  any // decoded value; numbers are json.Number
}

// Scan finds every parseable JSON object or array in line, left to
// right. At each `{` or `[` one streaming parse is attempted; on
// success the scan resumes after the consumed region, otherwise it
// advances a single byte and retries. Malformed candidates are skipped
// silently.
func Scan(line string) []Region {
	var regions []Region
	for i := 0; i < len(line); {
		c := line[i]
		if c != '{' && c != '[' {
			i++
			continue
		}

		dec := json.NewDecoder(strings.NewReader(line[i:]))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			i++
			continue
		}
		consumed := int(dec.InputOffset())
		if consumed <= 1 {
			// Degenerate parse, nothing beyond the bracket itself.
			i++
			continue
		}

		regions = append(regions, Region{Start: i, Length: consumed, Value: v})
		i += consumed
	}
	return regions
}
