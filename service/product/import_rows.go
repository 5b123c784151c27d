package product

import (
	"fmt"
	"strconv"
	"strings"

	productEntity "hotbray.GO/model/entity/product"
)

// catalogRows is the CSV after validation, one entry per normalized part.
type catalogRows struct {
	order    []string
	byPart   map[string]*productEntity.Product
	obsolete []productEntity.ObsoleteMap
}

// collectRows parses CSV rows into products. Rows without a part number or
// name are skipped; a repeated part number keeps the last row.
func collectRows(rows [][]string, colIndex map[string]int, result *ImportResult) *catalogRows {
	out := &catalogRows{byPart: make(map[string]*productEntity.Product, len(rows))}
	cell := func(row []string, col string) string {
		i, ok := colIndex[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	optional := func(row []string, col string) *string {
		if v := cell(row, col); v != "" {
			return &v
		}
		return nil
	}

	for ri, row := range rows {
		line := ri + 2
		part := cell(row, "part_number")
		key := normalizeKey(part)
		if key == "" {
			result.Skipped++
			continue
		}
		name := cell(row, "name")
		if name == "" {
			result.Skipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: %s has no name, skipping", line, part))
			continue
		}
		p := &productEntity.Product{
			PartNumber:            part,
			Name:                  name,
			Image:                 optional(row, "image"),
			Description:           optional(row, "description"),
			Category:              optional(row, "category"),
			Brand:                 optional(row, "brand"),
			AlternativePartNumber: optional(row, "alternative_part_number"),
		}
		if raw := cell(row, "price"); raw != "" {
			price, err := parsePrice(raw)
			if err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: price %q invalid, leaving empty", line, raw))
			} else {
				p.Price = &price
			}
		}
		if raw := cell(row, "is_obsolete"); raw != "" {
			p.IsObsolete = parseFlag(raw)
		}

		if _, seen := out.byPart[key]; seen {
			result.Skipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: %s repeated, later row wins", line, part))
		} else {
			out.order = append(out.order, key)
		}
		out.byPart[key] = p
	}

	for _, key := range out.order {
		p := out.byPart[key]
		if p.IsObsolete && p.AlternativePartNumber != nil {
			out.obsolete = append(out.obsolete, productEntity.ObsoleteMap{
				OriginalPart:    p.PartNumber,
				AlternativePart: *p.AlternativePartNumber,
			})
		}
	}
	return out
}

// parsePrice accepts "12.5", "$1,299.00" and similar spreadsheet output.
func parsePrice(raw string) (float64, error) {
	s := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative price")
	}
	return v, nil
}

func parseFlag(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "t":
		return true
	}
	return false
}
