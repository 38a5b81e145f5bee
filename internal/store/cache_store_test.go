package store

import (
	"os"
	"path/filepath"
	"testing"

	"storseek-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *CacheStore {
	t.Helper()
	return NewCacheStore(filepath.Join(t.TempDir(), "local-cache.json"))
}

func TestCacheStoreProductLifecycle(t *testing.T) {
	c := newTestCache(t)

	saved, err := c.AddProduct(models.Product{Name: "شاحن", Category: "إلكترونيات", Quantity: 5})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NotEmpty(t, saved.CreatedAt)

	products, err := c.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "شاحن", products[0].Name)

	err = c.UpdateProduct(saved.ID, Patch{"quantity": 9, "retailPrice": 75.5})
	require.NoError(t, err)

	products, err = c.ListProducts()
	require.NoError(t, err)
	assert.Equal(t, 9, products[0].Quantity)
	assert.Equal(t, 75.5, products[0].RetailPrice)
	assert.Equal(t, "شاحن", products[0].Name, "untouched fields survive a patch")

	require.NoError(t, c.DeleteProduct(saved.ID))
	products, err = c.ListProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCacheStoreUpdateMissingRecord(t *testing.T) {
	c := newTestCache(t)
	err := c.UpdateProduct("no-such-id", Patch{"quantity": 1})
	assert.Error(t, err)
}

func TestCacheStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")

	first := NewCacheStore(path)
	_, err := first.AddExpense(models.Expense{Description: "كهرباء", Amount: 120, Date: "2025-01-05"})
	require.NoError(t, err)

	second := NewCacheStore(path)
	expenses, err := second.ListExpenses()
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "كهرباء", expenses[0].Description)
	assert.Equal(t, 120.0, expenses[0].Amount.Float())
}

func TestCacheStoreEmptyCollections(t *testing.T) {
	c := newTestCache(t)

	products, err := c.ListProducts()
	require.NoError(t, err)
	assert.Empty(t, products)

	categories, err := c.ListCategories()
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCacheStoreCategories(t *testing.T) {
	c := newTestCache(t)

	require.NoError(t, c.AddCategory("إلكترونيات"))
	require.NoError(t, c.AddCategory("ملابس"))

	err := c.AddCategory("إلكترونيات")
	assert.Error(t, err, "duplicate category is refused")

	require.NoError(t, c.MergeCategories([]string{"ملابس", "أدوات"}))

	categories, err := c.ListCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"إلكترونيات", "ملابس", "أدوات"}, categories)

	require.NoError(t, c.DeleteCategory("ملابس"))
	categories, err = c.ListCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"إلكترونيات", "أدوات"}, categories)
}

func TestCacheStoreBulkAddProducts(t *testing.T) {
	c := newTestCache(t)

	n, err := c.BulkAddProducts([]models.Product{
		{Name: "أ", Category: "تصنيف"},
		{Name: "ب", Category: "تصنيف"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	products, err := c.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.NotEmpty(t, products[0].ID)
	assert.NotEqual(t, products[0].ID, products[1].ID)
}

func TestCacheStoreReplace(t *testing.T) {
	c := newTestCache(t)

	_, err := c.AddSaving(models.Saving{Name: "قديم", Type: models.SavingTypeJamia, Amount: 10, Status: models.SavingStatusActive})
	require.NoError(t, err)

	require.NoError(t, c.ReplaceSavings([]models.Saving{
		{ID: "s1", Name: "جديد", Type: models.SavingTypePayment, Amount: 99, Status: models.SavingStatusActive},
	}))

	savings, err := c.ListSavings()
	require.NoError(t, err)
	require.Len(t, savings, 1)
	assert.Equal(t, "جديد", savings[0].Name)
}

func TestCacheStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	c := NewCacheStore(path)
	_, err := c.ListProducts()
	assert.Error(t, err)
}
