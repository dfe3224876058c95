// Package humanise turns machine-oriented values into natural-language
// English phrases: durations ("1 minute, 2 seconds, and 345 milliseconds"),
// lists joined with a serial comma, and plural suffixes.
package humanise

import (
	"fmt"
	"strings"
)

// List joins items into an English list: "" for no items, the item itself
// for one, "A and B" for two, and "A, B, and C" with a serial comma beyond
// that. Elements are formatted with fmt.Sprint, so anything implementing
// fmt.Stringer reads naturally.
func List[T any](items []T) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return fmt.Sprint(items[0])
	case 2:
		return fmt.Sprintf("%v and %v", items[0], items[1])
	default:
		var sb strings.Builder
		for i, item := range items {
			switch {
			case i == 0:
			case i == len(items)-1:
				sb.WriteString(", and ")
			default:
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, item)
		}
		return sb.String()
	}
}

// PluralSuffix appends "s" to word when count calls for it. With opposite
// false the suffix lands on plural counts (noun agreement: "1 apple",
// "5 apples"); with opposite true it lands on the singular instead (verb
// agreement: "1 machine makes", "5 machines make"). Only bare-"s" plurals
// are supported, so callers must pick base forms that pluralize that way.
func PluralSuffix(count uint64, word string, opposite bool) string {
	if (count == 1) == opposite {
		return word + "s"
	}
	return word
}
