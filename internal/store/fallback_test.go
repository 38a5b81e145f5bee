package store

import (
	"path/filepath"
	"testing"

	"storseek-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore simulates a dead database: every call errors.
type failingStore struct{}

func (failingStore) ListProducts() ([]models.Product, error) { return nil, ErrUnavailable }
func (failingStore) AddProduct(p models.Product) (models.Product, error) {
	return p, ErrUnavailable
}
func (failingStore) UpdateProduct(string, Patch) error { return ErrUnavailable }
func (failingStore) DeleteProduct(string) error        { return ErrUnavailable }
func (failingStore) BulkAddProducts([]models.Product) (int, error) {
	return 0, ErrUnavailable
}
func (failingStore) ListCategories() ([]string, error) { return nil, ErrUnavailable }
func (failingStore) AddCategory(string) error          { return ErrUnavailable }
func (failingStore) DeleteCategory(string) error       { return ErrUnavailable }
func (failingStore) ListExpenses() ([]models.Expense, error) {
	return nil, ErrUnavailable
}
func (failingStore) AddExpense(e models.Expense) (models.Expense, error) {
	return e, ErrUnavailable
}
func (failingStore) UpdateExpense(string, Patch) error { return ErrUnavailable }
func (failingStore) DeleteExpense(string) error        { return ErrUnavailable }
func (failingStore) ListSavings() ([]models.Saving, error) {
	return nil, ErrUnavailable
}
func (failingStore) AddSaving(s models.Saving) (models.Saving, error) {
	return s, ErrUnavailable
}
func (failingStore) UpdateSaving(string, Patch) error { return ErrUnavailable }
func (failingStore) DeleteSaving(string) error        { return ErrUnavailable }
func (failingStore) ListReminders() ([]models.Reminder, error) {
	return nil, ErrUnavailable
}
func (failingStore) AddReminder(r models.Reminder) (models.Reminder, error) {
	return r, ErrUnavailable
}
func (failingStore) UpdateReminder(string, Patch) error { return ErrUnavailable }
func (failingStore) DeleteReminder(string) error        { return ErrUnavailable }
func (failingStore) ListClients() ([]models.Client, error) {
	return nil, ErrUnavailable
}
func (failingStore) ListOrders() ([]models.Order, error) { return nil, ErrUnavailable }
func (failingStore) ListDeliveredOrders() ([]models.DeliveredOrder, error) {
	return nil, ErrUnavailable
}
func (failingStore) ReplaceProducts([]models.Product) error   { return ErrUnavailable }
func (failingStore) ReplaceCategories([]string) error         { return ErrUnavailable }
func (failingStore) ReplaceClients([]models.Client) error     { return ErrUnavailable }
func (failingStore) ReplaceOrders([]models.Order) error       { return ErrUnavailable }
func (failingStore) ReplaceDeliveredOrders([]models.DeliveredOrder) error {
	return ErrUnavailable
}
func (failingStore) ReplaceExpenses([]models.Expense) error   { return ErrUnavailable }
func (failingStore) ReplaceSavings([]models.Saving) error     { return ErrUnavailable }
func (failingStore) ReplaceReminders([]models.Reminder) error { return ErrUnavailable }

func newDegradedFallback(t *testing.T) *Fallback {
	t.Helper()
	cache := NewCacheStore(filepath.Join(t.TempDir(), "cache.json"))
	return NewFallback(failingStore{}, cache)
}

func TestFallbackWritesLandOnCache(t *testing.T) {
	fb := newDegradedFallback(t)

	saved, err := fb.AddProduct(models.Product{Name: "شاحن", Category: "إلكترونيات"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	products, err := fb.Cache.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)

	// reads also come from the cache
	viaFallback, err := fb.ListProducts()
	require.NoError(t, err)
	assert.Equal(t, products, viaFallback)
}

func TestFallbackUpdateAndDeleteOnCache(t *testing.T) {
	fb := newDegradedFallback(t)

	saved, err := fb.AddExpense(models.Expense{Description: "إيجار", Amount: 500, Date: "2025-01-01"})
	require.NoError(t, err)

	require.NoError(t, fb.UpdateExpense(saved.ID, Patch{"amount": 600}))
	expenses, err := fb.ListExpenses()
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, 600.0, expenses[0].Amount.Float())

	require.NoError(t, fb.DeleteExpense(saved.ID))
	expenses, err = fb.ListExpenses()
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestFallbackPersistImportDegraded(t *testing.T) {
	fb := newDegradedFallback(t)
	require.NoError(t, fb.Cache.AddCategory("إلكترونيات"))

	accepted := []models.Product{
		{Name: "شاحن", Category: "إلكترونيات"},
		{Name: "حذاء", Category: "أحذية"},
	}

	result, err := fb.PersistImport(accepted, []string{"أحذية"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Persisted)
	assert.Equal(t, TargetLocalCache, result.Target)

	products, err := fb.Cache.ListProducts()
	require.NoError(t, err)
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.CreatedAt)
	}

	categories, err := fb.Cache.ListCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"إلكترونيات", "أحذية"}, categories)
}

func TestFallbackPersistImportHealthyRemote(t *testing.T) {
	dir := t.TempDir()
	// a CacheStore standing in for a healthy remote: it never fails
	remote := NewCacheStore(filepath.Join(dir, "remote.json"))
	cache := NewCacheStore(filepath.Join(dir, "cache.json"))
	fb := NewFallback(remote, cache)

	result, err := fb.PersistImport([]models.Product{{Name: "أ", Category: "تصنيف"}}, []string{"تصنيف"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Persisted)
	assert.Equal(t, TargetStore, result.Target)

	remoteProducts, err := remote.ListProducts()
	require.NoError(t, err)
	assert.Len(t, remoteProducts, 1)

	cacheProducts, err := cache.ListProducts()
	require.NoError(t, err)
	assert.Empty(t, cacheProducts, "nothing spills to the cache while the remote is healthy")
}

func TestGormStoreWithoutConnection(t *testing.T) {
	g := NewGormStore(nil)

	_, err := g.ListProducts()
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = g.AddProduct(models.Product{Name: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)

	err = g.ReplaceCategories([]string{"a"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
