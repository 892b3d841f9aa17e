package extract

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of an addressing path: either a field lookup or a
// sequence index. Exactly one form applies, selected by IsIndex.
type Segment struct {
	Field   string
	Index   int
	IsIndex bool
}

func (s Segment) String() string {
	if s.IsIndex {
		return fmt.Sprintf("[%d]", s.Index)
	}
	return s.Field
}

// ParsePath splits an addressing path such as
// "interactions[-1].outputs.confidence" into segments.
// Grammar: an identifier, followed by any mix of ".ident" field lookups and
// "[n]" index lookups (negative indices count from the end).
func ParsePath(path string) ([]Segment, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &parseError{path: path, reason: "empty path"}
	}

	var segs []Segment
	i := 0
	for i < len(path) {
		switch path[i] {
		case '.':
			i++
			name, next, err := scanIdent(path, i)
			if err != nil {
				return nil, &parseError{path: path, reason: err.Error()}
			}
			segs = append(segs, Segment{Field: name})
			i = next
		case '[':
			close := strings.IndexByte(path[i:], ']')
			if close < 0 {
				return nil, &parseError{path: path, reason: "unterminated index"}
			}
			raw := path[i+1 : i+close]
			idx, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, &parseError{path: path, reason: fmt.Sprintf("invalid index %q", raw)}
			}
			segs = append(segs, Segment{Index: idx, IsIndex: true})
			i += close + 1
		default:
			// A bare identifier is only valid at the start of the path.
			if len(segs) > 0 {
				return nil, &parseError{path: path, reason: fmt.Sprintf("unexpected character %q at offset %d", path[i], i)}
			}
			name, next, err := scanIdent(path, i)
			if err != nil {
				return nil, &parseError{path: path, reason: err.Error()}
			}
			segs = append(segs, Segment{Field: name})
			i = next
		}
	}
	return segs, nil
}

func scanIdent(path string, start int) (string, int, error) {
	i := start
	for i < len(path) && isIdentChar(path[i]) {
		i++
	}
	if i == start {
		return "", start, fmt.Errorf("expected field name at offset %d", start)
	}
	return path[start:i], i, nil
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

type parseError struct {
	path   string
	reason string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse path %q: %s", e.path, e.reason)
}
