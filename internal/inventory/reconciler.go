// Package inventory manages the product catalog: CRUD, categories, bulk
// import with row-level reconciliation, exports and full backups.
package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"storseek-backend/internal/models"
)

// RawRow is one spreadsheet row keyed by its header cell.
type RawRow map[string]string

// RejectedRow carries the 1-based spreadsheet row number (header is row 1)
// and every reason the row was refused.
type RejectedRow struct {
	Row     int      `json:"row"`
	Reasons []string `json:"reasons"`
}

func (r RejectedRow) String() string {
	return fmt.Sprintf("السطر %d: %s", r.Row, strings.Join(r.Reasons, ", "))
}

// ReconcileResult is the outcome of screening an import batch against the
// existing catalog.
type ReconcileResult struct {
	Accepted      []models.Product
	Rejected      []RejectedRow
	NewCategories []string
}

// Import sheets come from two template generations, one with Arabic headers
// and one with the raw field names. Both are accepted, Arabic wins when a
// row carries both.
var columnAliases = map[string][]string{
	"name":           {"اسم المنتج", "name"},
	"category":       {"التصنيف", "category"},
	"costPrice":      {"سعر التكلفة", "costPrice"},
	"wholesalePrice": {"سعر الجملة", "wholesalePrice"},
	"retailPrice":    {"سعر القطاعي", "retailPrice"},
	"quantity":       {"الكمية", "quantity"},
	"infiniteStock":  {"لا ينفد", "infiniteStock"},
	"isManufactured": {"مُصنع", "isManufactured"},
}

func cell(row RawRow, field string) string {
	for _, alias := range columnAliases[field] {
		if v, ok := row[alias]; ok && v != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// parsePrice mirrors spreadsheet semantics: blank means zero, anything else
// must parse as a number.
func parsePrice(s string) (float64, bool) {
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseQuantity never rejects a row: unreadable or negative counts coerce
// to zero.
func parseQuantity(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseFlag(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "نعم" || s == "true" || s == "1"
}

func productKey(name, category string) string {
	return strings.ToLower(name) + "\x00" + strings.ToLower(category)
}

// Reconcile screens an import batch. A row is accepted when its required
// fields are present, its prices parse as non-negative numbers and no product
// with the same name and category exists, neither in the catalog nor earlier
// in the batch. Rows are numbered from 2 to match what the user sees in the
// spreadsheet.
func Reconcile(rows []RawRow, existing []models.Product, categories []string) ReconcileResult {
	result := ReconcileResult{
		Accepted:      []models.Product{},
		Rejected:      []RejectedRow{},
		NewCategories: []string{},
	}

	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[productKey(p.Name, p.Category)] = true
	}
	knownCategories := make(map[string]bool, len(categories))
	for _, c := range categories {
		knownCategories[strings.ToLower(c)] = true
	}

	for i, row := range rows {
		rowNum := i + 2

		name := cell(row, "name")
		category := cell(row, "category")
		costPrice, costOK := parsePrice(cell(row, "costPrice"))
		wholesalePrice, wholesaleOK := parsePrice(cell(row, "wholesalePrice"))
		retailPrice, retailOK := parsePrice(cell(row, "retailPrice"))

		var reasons []string
		if name == "" {
			reasons = append(reasons, "اسم المنتج مطلوب")
		}
		if category == "" {
			reasons = append(reasons, "التصنيف مطلوب")
		}
		if !costOK || costPrice < 0 {
			reasons = append(reasons, "سعر التكلفة غير صالح")
		}
		if !wholesaleOK || wholesalePrice < 0 {
			reasons = append(reasons, "سعر الجملة غير صالح")
		}
		if !retailOK || retailPrice < 0 {
			reasons = append(reasons, "سعر القطاعي غير صالح")
		}
		if len(reasons) > 0 {
			result.Rejected = append(result.Rejected, RejectedRow{Row: rowNum, Reasons: reasons})
			continue
		}

		key := productKey(name, category)
		if seen[key] {
			result.Rejected = append(result.Rejected, RejectedRow{
				Row:     rowNum,
				Reasons: []string{fmt.Sprintf("المنتج \"%s\" موجود بالفعل", name)},
			})
			continue
		}
		seen[key] = true

		if !knownCategories[strings.ToLower(category)] {
			knownCategories[strings.ToLower(category)] = true
			result.NewCategories = append(result.NewCategories, category)
		}

		result.Accepted = append(result.Accepted, models.Product{
			Name:           name,
			Category:       category,
			CostPrice:      costPrice,
			WholesalePrice: wholesalePrice,
			RetailPrice:    retailPrice,
			Quantity:       parseQuantity(cell(row, "quantity")),
			InfiniteStock:  parseFlag(cell(row, "infiniteStock")),
			IsManufactured: parseFlag(cell(row, "isManufactured")),
		})
	}

	return result
}
