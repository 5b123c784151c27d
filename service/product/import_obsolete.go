package product

import (
	"fmt"

	"gorm.io/gorm"

	productEntity "hotbray.GO/model/entity/product"
)

// flushObsolete points each original part at its alternative, replacing any
// earlier mapping for the same original. Both sides are stored with the
// catalog's own spelling; a mapping whose alternative is not in the catalog
// is skipped with a warning.
func flushObsolete(tx *gorm.DB, rows []productEntity.ObsoleteMap, result *ImportResult) (int, error) {
	written := 0
	for _, m := range rows {
		alt, ok, err := catalogPart(tx, m.AlternativePart)
		if err != nil {
			return written, fmt.Errorf("load alternative %s: %w", m.AlternativePart, err)
		}
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: alternative %s not in catalog, mapping skipped", m.OriginalPart, m.AlternativePart))
			continue
		}
		m.AlternativePart = alt

		var cur productEntity.ObsoleteMap
		res := tx.Where("UPPER(original_part) = ?", normalizeKey(m.OriginalPart)).Limit(1).Find(&cur)
		if res.Error != nil {
			return written, fmt.Errorf("load obsolete mapping %s: %w", m.OriginalPart, res.Error)
		}
		if res.RowsAffected == 0 {
			if err := tx.Create(&m).Error; err != nil {
				return written, fmt.Errorf("insert obsolete mapping %s: %w", m.OriginalPart, err)
			}
		} else if err := tx.Model(&cur).Update("alternative_part", m.AlternativePart).Error; err != nil {
			return written, fmt.Errorf("update obsolete mapping %s: %w", m.OriginalPart, err)
		}
		written++
	}
	return written, nil
}

// catalogPart returns the stored spelling of part, matched case-insensitively.
func catalogPart(tx *gorm.DB, part string) (string, bool, error) {
	var p productEntity.Product
	res := tx.Select("part_number").Where("UPPER(part_number) = ?", normalizeKey(part)).Limit(1).Find(&p)
	if res.Error != nil {
		return "", false, res.Error
	}
	return p.PartNumber, res.RowsAffected > 0, nil
}
