package grouping

import (
	"fmt"
	"strings"
)

// String renders the pre-grouped form as {key=[item, item, ...], ...}.
// Key order is unspecified; this is a debugging convenience, not a stable
// wire format.
func (g Grouping[T, K]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')

	first := true
	for k, items := range g.Collect() {
		if !first {
			sb.WriteString(", ")
		} else {
			first = false
		}

		fmt.Fprintf(&sb, "%v=[", k)
		for i, item := range items {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", item)
		}
		sb.WriteByte(']')
	}

	sb.WriteByte('}')
	return sb.String()
}
