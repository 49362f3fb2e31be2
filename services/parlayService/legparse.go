package parlayService

import "strings"

// ParseLegs extracts leg descriptions from parenthesis groups, e.g.
// "(go gym) (study 40 mins)". Nested or unbalanced parentheses are rejected;
// empty groups are dropped.
func ParseLegs(s string) ([]string, error) {
	var legs []string
	var buf strings.Builder
	inParen := false
	for _, ch := range s {
		switch ch {
		case '(':
			if inParen {
				return nil, &ValidationError{Reason: "Nested parentheses are not allowed."}
			}
			inParen = true
			buf.Reset()
		case ')':
			if !inParen {
				return nil, &ValidationError{Reason: "Unbalanced parentheses."}
			}
			if txt := strings.TrimSpace(buf.String()); txt != "" {
				legs = append(legs, txt)
			}
			inParen = false
		default:
			if inParen {
				buf.WriteRune(ch)
			}
		}
	}
	if inParen {
		return nil, &ValidationError{Reason: "Unbalanced parentheses, missing ')'."}
	}
	return legs, nil
}
