package store

import (
	"log"

	"storseek-backend/internal/models"
)

// Fallback routes every operation to the remote store first and retries on
// the local cache when the remote tier fails. Handlers hold a Fallback and
// never see which tier answered, except for bulk imports where the response
// reports the target so the client can warn the user.
type Fallback struct {
	Remote RecordStore
	Cache  *CacheStore
}

func NewFallback(remote RecordStore, cache *CacheStore) *Fallback {
	return &Fallback{Remote: remote, Cache: cache}
}

var _ RecordStore = (*Fallback)(nil)

// Bulk import targets reported to the client.
const (
	TargetStore      = "store"
	TargetLocalCache = "local-cache"
)

// BulkResult reports where a bulk import landed and how many rows made it.
type BulkResult struct {
	Persisted int
	Target    string
}

func degraded(op string, err error) {
	log.Printf("[WARN] تعذر الوصول لقاعدة البيانات أثناء %s، سيتم استخدام التخزين المحلي: %v", op, err)
}

func fbList[T any](op string, remote func() ([]T, error), cache func() ([]T, error)) ([]T, error) {
	rows, err := remote()
	if err == nil {
		return rows, nil
	}
	degraded(op, err)
	return cache()
}

func fbWrite(op string, remote func() error, cache func() error) error {
	if err := remote(); err != nil {
		degraded(op, err)
		return cache()
	}
	return nil
}

// -------------------------
// Products
// -------------------------

func (f *Fallback) ListProducts() ([]models.Product, error) {
	return fbList("قراءة المنتجات", f.Remote.ListProducts, f.Cache.ListProducts)
}

func (f *Fallback) AddProduct(p models.Product) (models.Product, error) {
	saved, err := f.Remote.AddProduct(p)
	if err == nil {
		return saved, nil
	}
	degraded("إضافة منتج", err)
	return f.Cache.AddProduct(p)
}

func (f *Fallback) UpdateProduct(id string, patch Patch) error {
	return fbWrite("تعديل منتج",
		func() error { return f.Remote.UpdateProduct(id, patch) },
		func() error { return f.Cache.UpdateProduct(id, patch) })
}

func (f *Fallback) DeleteProduct(id string) error {
	return fbWrite("حذف منتج",
		func() error { return f.Remote.DeleteProduct(id) },
		func() error { return f.Cache.DeleteProduct(id) })
}

func (f *Fallback) BulkAddProducts(ps []models.Product) (int, error) {
	n, err := f.Remote.BulkAddProducts(ps)
	if err == nil {
		return n, nil
	}
	degraded("استيراد منتجات", err)
	return f.Cache.BulkAddProducts(ps)
}

// PersistImport lands a reconciled import batch: the accepted products plus
// the categories the batch introduced. The result says which tier took it.
func (f *Fallback) PersistImport(accepted []models.Product, newCategories []string) (BulkResult, error) {
	for _, name := range newCategories {
		if err := f.Remote.AddCategory(name); err != nil {
			return f.persistImportLocal(accepted, newCategories, err)
		}
	}
	n, err := f.Remote.BulkAddProducts(accepted)
	if err != nil {
		return f.persistImportLocal(accepted, newCategories, err)
	}
	return BulkResult{Persisted: n, Target: TargetStore}, nil
}

func (f *Fallback) persistImportLocal(accepted []models.Product, newCategories []string, cause error) (BulkResult, error) {
	degraded("استيراد منتجات", cause)
	if err := f.Cache.MergeCategories(newCategories); err != nil {
		return BulkResult{}, err
	}
	n, err := f.Cache.BulkAddProducts(accepted)
	if err != nil {
		return BulkResult{}, err
	}
	return BulkResult{Persisted: n, Target: TargetLocalCache}, nil
}

// -------------------------
// Categories
// -------------------------

func (f *Fallback) ListCategories() ([]string, error) {
	return fbList("قراءة التصنيفات", f.Remote.ListCategories, f.Cache.ListCategories)
}

func (f *Fallback) AddCategory(name string) error {
	return fbWrite("إضافة تصنيف",
		func() error { return f.Remote.AddCategory(name) },
		func() error { return f.Cache.AddCategory(name) })
}

func (f *Fallback) DeleteCategory(name string) error {
	return fbWrite("حذف تصنيف",
		func() error { return f.Remote.DeleteCategory(name) },
		func() error { return f.Cache.DeleteCategory(name) })
}

// -------------------------
// Expenses
// -------------------------

func (f *Fallback) ListExpenses() ([]models.Expense, error) {
	return fbList("قراءة المصروفات", f.Remote.ListExpenses, f.Cache.ListExpenses)
}

func (f *Fallback) AddExpense(e models.Expense) (models.Expense, error) {
	saved, err := f.Remote.AddExpense(e)
	if err == nil {
		return saved, nil
	}
	degraded("إضافة مصروف", err)
	return f.Cache.AddExpense(e)
}

func (f *Fallback) UpdateExpense(id string, patch Patch) error {
	return fbWrite("تعديل مصروف",
		func() error { return f.Remote.UpdateExpense(id, patch) },
		func() error { return f.Cache.UpdateExpense(id, patch) })
}

func (f *Fallback) DeleteExpense(id string) error {
	return fbWrite("حذف مصروف",
		func() error { return f.Remote.DeleteExpense(id) },
		func() error { return f.Cache.DeleteExpense(id) })
}

// -------------------------
// Savings
// -------------------------

func (f *Fallback) ListSavings() ([]models.Saving, error) {
	return fbList("قراءة المدخرات", f.Remote.ListSavings, f.Cache.ListSavings)
}

func (f *Fallback) AddSaving(s models.Saving) (models.Saving, error) {
	saved, err := f.Remote.AddSaving(s)
	if err == nil {
		return saved, nil
	}
	degraded("إضافة مدخر", err)
	return f.Cache.AddSaving(s)
}

func (f *Fallback) UpdateSaving(id string, patch Patch) error {
	return fbWrite("تعديل مدخر",
		func() error { return f.Remote.UpdateSaving(id, patch) },
		func() error { return f.Cache.UpdateSaving(id, patch) })
}

func (f *Fallback) DeleteSaving(id string) error {
	return fbWrite("حذف مدخر",
		func() error { return f.Remote.DeleteSaving(id) },
		func() error { return f.Cache.DeleteSaving(id) })
}

// -------------------------
// Reminders
// -------------------------

func (f *Fallback) ListReminders() ([]models.Reminder, error) {
	return fbList("قراءة التذكيرات", f.Remote.ListReminders, f.Cache.ListReminders)
}

func (f *Fallback) AddReminder(r models.Reminder) (models.Reminder, error) {
	saved, err := f.Remote.AddReminder(r)
	if err == nil {
		return saved, nil
	}
	degraded("إضافة تذكير", err)
	return f.Cache.AddReminder(r)
}

func (f *Fallback) UpdateReminder(id string, patch Patch) error {
	return fbWrite("تعديل تذكير",
		func() error { return f.Remote.UpdateReminder(id, patch) },
		func() error { return f.Cache.UpdateReminder(id, patch) })
}

func (f *Fallback) DeleteReminder(id string) error {
	return fbWrite("حذف تذكير",
		func() error { return f.Remote.DeleteReminder(id) },
		func() error { return f.Cache.DeleteReminder(id) })
}

// -------------------------
// Read-only collections
// -------------------------

func (f *Fallback) ListClients() ([]models.Client, error) {
	return fbList("قراءة العملاء", f.Remote.ListClients, f.Cache.ListClients)
}

func (f *Fallback) ListOrders() ([]models.Order, error) {
	return fbList("قراءة الطلبات", f.Remote.ListOrders, f.Cache.ListOrders)
}

func (f *Fallback) ListDeliveredOrders() ([]models.DeliveredOrder, error) {
	return fbList("قراءة الطلبات المسلمة", f.Remote.ListDeliveredOrders, f.Cache.ListDeliveredOrders)
}

// -------------------------
// Backup restore
// -------------------------

func (f *Fallback) ReplaceProducts(ps []models.Product) error {
	return fbWrite("استعادة المنتجات",
		func() error { return f.Remote.ReplaceProducts(ps) },
		func() error { return f.Cache.ReplaceProducts(ps) })
}

func (f *Fallback) ReplaceCategories(names []string) error {
	return fbWrite("استعادة التصنيفات",
		func() error { return f.Remote.ReplaceCategories(names) },
		func() error { return f.Cache.ReplaceCategories(names) })
}

func (f *Fallback) ReplaceClients(cs []models.Client) error {
	return fbWrite("استعادة العملاء",
		func() error { return f.Remote.ReplaceClients(cs) },
		func() error { return f.Cache.ReplaceClients(cs) })
}

func (f *Fallback) ReplaceOrders(os []models.Order) error {
	return fbWrite("استعادة الطلبات",
		func() error { return f.Remote.ReplaceOrders(os) },
		func() error { return f.Cache.ReplaceOrders(os) })
}

func (f *Fallback) ReplaceDeliveredOrders(ds []models.DeliveredOrder) error {
	return fbWrite("استعادة الطلبات المسلمة",
		func() error { return f.Remote.ReplaceDeliveredOrders(ds) },
		func() error { return f.Cache.ReplaceDeliveredOrders(ds) })
}

func (f *Fallback) ReplaceExpenses(es []models.Expense) error {
	return fbWrite("استعادة المصروفات",
		func() error { return f.Remote.ReplaceExpenses(es) },
		func() error { return f.Cache.ReplaceExpenses(es) })
}

func (f *Fallback) ReplaceSavings(ss []models.Saving) error {
	return fbWrite("استعادة المدخرات",
		func() error { return f.Remote.ReplaceSavings(ss) },
		func() error { return f.Cache.ReplaceSavings(ss) })
}

func (f *Fallback) ReplaceReminders(rs []models.Reminder) error {
	return fbWrite("استعادة التذكيرات",
		func() error { return f.Remote.ReplaceReminders(rs) },
		func() error { return f.Cache.ReplaceReminders(rs) })
}
