package inventory

import (
	"testing"

	"storseek-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(name, category, cost, wholesale, retail, qty string) RawRow {
	return RawRow{
		"اسم المنتج":  name,
		"التصنيف":     category,
		"سعر التكلفة": cost,
		"سعر الجملة":  wholesale,
		"سعر القطاعي": retail,
		"الكمية":      qty,
	}
}

func TestReconcileAcceptsValidRows(t *testing.T) {
	rows := []RawRow{
		row("شاحن", "إلكترونيات", "50", "60", "75", "10"),
		row("كابل", "إلكترونيات", "10", "12", "", ""), // blank price and quantity mean zero
	}

	result := Reconcile(rows, nil, []string{"إلكترونيات"})

	require.Len(t, result.Accepted, 2)
	assert.Empty(t, result.Rejected)
	assert.Empty(t, result.NewCategories)

	assert.Equal(t, "شاحن", result.Accepted[0].Name)
	assert.Equal(t, 50.0, result.Accepted[0].CostPrice)
	assert.Equal(t, 10, result.Accepted[0].Quantity)
	assert.Equal(t, 0.0, result.Accepted[1].RetailPrice)
	assert.Equal(t, 0, result.Accepted[1].Quantity)
}

func TestReconcileEnglishHeaders(t *testing.T) {
	rows := []RawRow{{
		"name":           "Mouse",
		"category":       "Accessories",
		"costPrice":      "20",
		"quantity":       "5",
		"infiniteStock":  "true",
		"isManufactured": "1",
	}}

	result := Reconcile(rows, nil, nil)

	require.Len(t, result.Accepted, 1)
	p := result.Accepted[0]
	assert.Equal(t, "Mouse", p.Name)
	assert.True(t, p.InfiniteStock)
	assert.True(t, p.IsManufactured)
	assert.Equal(t, []string{"Accessories"}, result.NewCategories)
}

func TestReconcileRejectsWithRowNumbersAndReasons(t *testing.T) {
	rows := []RawRow{
		row("", "", "x", "50", "60", "1"),        // row 2: name, category, bad cost
		row("منتج", "تصنيف", "1", "2", "3", "1"), // row 3: fine
		row("آخر", "تصنيف", "-5", "2", "3", "1"), // row 4: negative price
	}

	result := Reconcile(rows, nil, nil)

	require.Len(t, result.Rejected, 2)
	assert.Equal(t, 2, result.Rejected[0].Row)
	assert.Equal(t, []string{"اسم المنتج مطلوب", "التصنيف مطلوب", "سعر التكلفة غير صالح"}, result.Rejected[0].Reasons)
	assert.Equal(t, 4, result.Rejected[1].Row)
	assert.Equal(t, []string{"سعر التكلفة غير صالح"}, result.Rejected[1].Reasons)

	assert.Equal(t, "السطر 2: اسم المنتج مطلوب, التصنيف مطلوب, سعر التكلفة غير صالح", result.Rejected[0].String())
}

func TestReconcileSkipsDuplicateOfCatalog(t *testing.T) {
	existing := []models.Product{{Name: "شاحن", Category: "إلكترونيات"}}
	rows := []RawRow{
		row("شاحن", "إلكترونيات", "50", "60", "75", "10"), // same name+category
		row("شاحن", "كهرباء", "50", "60", "75", "10"),     // same name, other category: fine
	}

	result := Reconcile(rows, existing, []string{"إلكترونيات", "كهرباء"})

	require.Len(t, result.Accepted, 1)
	assert.Equal(t, "كهرباء", result.Accepted[0].Category)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, 2, result.Rejected[0].Row)
	assert.Contains(t, result.Rejected[0].Reasons[0], "موجود بالفعل")
}

func TestReconcileSkipsDuplicateWithinBatch(t *testing.T) {
	rows := []RawRow{
		row("شاحن", "إلكترونيات", "50", "60", "75", "10"),
		row("شاحن", "إلكترونيات", "55", "65", "80", "5"),
		row("شاحن", "الكترونيات", "55", "65", "80", "5"), // different category spelling: distinct
	}

	result := Reconcile(rows, nil, nil)

	assert.Len(t, result.Accepted, 2)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, 3, result.Rejected[0].Row)
}

func TestReconcileDuplicateCheckCaseInsensitive(t *testing.T) {
	existing := []models.Product{{Name: "Charger", Category: "Electronics"}}
	rows := []RawRow{row("CHARGER", "electronics", "1", "2", "3", "1")}

	result := Reconcile(rows, existing, []string{"Electronics"})

	assert.Empty(t, result.Accepted)
	assert.Len(t, result.Rejected, 1)
}

func TestReconcileCollectsNewCategoriesInOrder(t *testing.T) {
	rows := []RawRow{
		row("أ", "أدوات", "1", "2", "3", "1"),
		row("ب", "ملابس", "1", "2", "3", "1"),
		row("ج", "أدوات", "1", "2", "3", "1"), // already collected
		row("د", "إلكترونيات", "1", "2", "3", "1"),
	}

	result := Reconcile(rows, nil, []string{"إلكترونيات"})

	assert.Equal(t, []string{"أدوات", "ملابس"}, result.NewCategories)
	assert.Len(t, result.Accepted, 4)
}

func TestReconcileDoesNotEnforcePriceLadder(t *testing.T) {
	// historical sheets sometimes have wholesale below cost; import keeps them
	rows := []RawRow{row("قديم", "أرشيف", "100", "80", "70", "1")}

	result := Reconcile(rows, nil, nil)

	require.Len(t, result.Accepted, 1)
	assert.Empty(t, result.Rejected)
}

func TestReconcileQuantityCoercion(t *testing.T) {
	rows := []RawRow{
		row("أ", "تصنيف", "1", "2", "3", "abc"),
		row("ب", "تصنيف", "1", "2", "3", "-4"),
	}

	result := Reconcile(rows, nil, []string{"تصنيف"})

	require.Len(t, result.Accepted, 2)
	assert.Equal(t, 0, result.Accepted[0].Quantity)
	assert.Equal(t, 0, result.Accepted[1].Quantity)
}
