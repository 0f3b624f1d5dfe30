package compose

import "strings"

// Interpolate substitutes {key} tokens in tmpl from vals in a single
// left-to-right pass. A substituted value is never rescanned, so a value
// containing something brace-shaped cannot trigger a second substitution.
// Unknown tokens are kept literally.
func Interpolate(tmpl string, vals map[string]string) string {
	var b strings.Builder
	b.Grow(len(tmpl))
	for i := 0; i < len(tmpl); {
		open := strings.IndexByte(tmpl[i:], '{')
		if open < 0 {
			b.WriteString(tmpl[i:])
			break
		}
		open += i
		close := strings.IndexByte(tmpl[open:], '}')
		if close < 0 {
			b.WriteString(tmpl[i:])
			break
		}
		close += open
		b.WriteString(tmpl[i:open])
		key := tmpl[open+1 : close]
		if val, ok := vals[key]; ok {
			b.WriteString(val)
		} else {
			b.WriteString(tmpl[open : close+1])
		}
		i = close + 1
	}
	return b.String()
}
