package search

import (
	"fmt"
	"regexp"
	"strings"
)

// filterable maps a public filter field to its exact-match index field.
var filterable = map[string]string{
	"category": "category.raw",
	"brand":    "brand.raw",
}

var (
	andSplit   = regexp.MustCompile(`(?i)\s+AND\s+`)
	clauseExpr = regexp.MustCompile(`^([A-Za-z_]+)\s*(?::|=)\s*(.+)$`)
)

// ParseFilter turns `category:Jaguar AND brand = "Lucas"` into term clauses.
// An empty expression yields no clauses.
func ParseFilter(expr string) ([]map[string]interface{}, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	var terms []map[string]interface{}
	for _, raw := range andSplit.Split(expr, -1) {
		clause := strings.TrimSpace(raw)
		m := clauseExpr.FindStringSubmatch(clause)
		if m == nil {
			return nil, fmt.Errorf("malformed filter clause %q", clause)
		}
		field, ok := filterable[strings.ToLower(m[1])]
		if !ok {
			return nil, fmt.Errorf("field %q is not filterable", m[1])
		}
		value, err := unquote(strings.TrimSpace(m[2]))
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", clause, err)
		}
		terms = append(terms, map[string]interface{}{
			"term": map[string]interface{}{field: value},
		})
	}
	return terms, nil
}

func unquote(v string) (string, error) {
	for _, q := range []byte{'"', '\''} {
		if v[0] != q {
			continue
		}
		if len(v) < 2 || v[len(v)-1] != q {
			return "", fmt.Errorf("unterminated quote")
		}
		v = v[1 : len(v)-1]
		break
	}
	if v == "" {
		return "", fmt.Errorf("empty value")
	}
	return v, nil
}
