package movies

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseCountryList decodes a serialized countries field. Accepted forms are
// a Python list or set literal (['France', "Côte d'Ivoire"]), a JSON array,
// or a plain pipe-separated string. Blank and NaN cells decode to an empty
// list.
func ParseCountryList(raw string) ([]string, error) {
	value := strings.TrimSpace(raw)
	switch strings.ToLower(value) {
	case "", "nan", "none", "[]", "{}", "set()":
		return []string{}, nil
	}

	open := value[0]
	if open != '[' && open != '{' {
		parts := strings.Split(value, "|")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if name := strings.TrimSpace(part); name != "" {
				out = append(out, name)
			}
		}
		return out, nil
	}

	closer := byte(']')
	if open == '{' {
		closer = '}'
	}
	if value[len(value)-1] != closer {
		return nil, fmt.Errorf("%w: unterminated list %q", ErrInvalidCountries, raw)
	}
	return parseQuotedItems(value[1:len(value)-1], raw)
}

// parseQuotedItems walks comma-separated quoted literals.
func parseQuotedItems(body, raw string) ([]string, error) {
	var out []string
	i := 0
	expectItem := true
	for i < len(body) {
		c := body[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == ',':
			if expectItem {
				return nil, fmt.Errorf("%w: empty element in %q", ErrInvalidCountries, raw)
			}
			expectItem = true
			i++
		case c == '\'' || c == '"':
			if !expectItem {
				return nil, fmt.Errorf("%w: missing separator in %q", ErrInvalidCountries, raw)
			}
			item, next, err := readQuoted(body, i)
			if err != nil {
				return nil, fmt.Errorf("%w: %v in %q", ErrInvalidCountries, err, raw)
			}
			out = append(out, item)
			i = next
			expectItem = false
		default:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidCountries, c, raw)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// readQuoted reads the literal starting at body[start] and returns the
// unescaped text plus the index after the closing quote.
func readQuoted(body string, start int) (string, int, error) {
	quote := body[start]
	var b strings.Builder
	for i := start + 1; i < len(body); i++ {
		c := body[i]
		switch c {
		case '\\':
			if i+1 >= len(body) {
				return "", 0, errors.New("dangling escape")
			}
			i++
			b.WriteByte(body[i])
		case quote:
			return b.String(), i + 1, nil
		default:
			b.WriteByte(c)
		}
	}
	return "", 0, errors.New("unterminated string")
}

// ParseYear extracts the year from YYYY, YYYY-MM, YYYY-MM-DD or a float
// rendering such as 1985.0. Unparseable values yield 0.
func ParseYear(raw string) int {
	value := strings.Trim(strings.TrimSpace(raw), `"'`)
	if len(value) < 4 {
		return 0
	}
	head := value[:4]
	if len(value) > 4 {
		switch value[4] {
		case '-', '.', '/', 'T', ' ':
		default:
			return 0
		}
	}
	year, err := strconv.Atoi(head)
	if err != nil || year <= 0 {
		return 0
	}
	return year
}
