package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"storseek-backend/internal/models"
)

// CacheStore keeps every collection in one JSON file on disk. It is the
// degraded tier: when Postgres is unreachable the Fallback decorator routes
// reads and writes here so the shop keeps working offline.
type CacheStore struct {
	mu   sync.Mutex
	path string
}

func NewCacheStore(path string) *CacheStore {
	return &CacheStore{path: path}
}

var _ RecordStore = (*CacheStore)(nil)

func (c *CacheStore) load() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, err
	}
	doc := map[string]json.RawMessage{}
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("ملف التخزين المحلي تالف: %w", err)
	}
	return doc, nil
}

func (c *CacheStore) save(doc map[string]json.RawMessage) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}

func cacheList[T any](c *CacheStore, col string) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, err := c.load()
	if err != nil {
		return nil, err
	}
	return decodeList[T](doc, col)
}

func decodeList[T any](doc map[string]json.RawMessage, col string) ([]T, error) {
	raw, ok := doc[col]
	if !ok {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeList[T any](doc map[string]json.RawMessage, col string, rows []T) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	doc[col] = raw
	return nil
}

// mutateList loads a collection, applies fn and writes the file back, all
// under the store lock.
func mutateList[T any](c *CacheStore, col string, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, err := c.load()
	if err != nil {
		return err
	}
	rows, err := decodeList[T](doc, col)
	if err != nil {
		return err
	}
	rows, err = fn(rows)
	if err != nil {
		return err
	}
	if err := encodeList(doc, col, rows); err != nil {
		return err
	}
	return c.save(doc)
}

func cacheReplace[T any](c *CacheStore, col string, rows []T) error {
	return mutateList(c, col, func([]T) ([]T, error) { return rows, nil })
}

var errNotFound = fmt.Errorf("السجل غير موجود")

func cachePatch[T any](c *CacheStore, col, id string, idOf func(T) string, patch Patch) error {
	return mutateList(c, col, func(rows []T) ([]T, error) {
		for i, r := range rows {
			if idOf(r) != id {
				continue
			}
			merged, err := applyPatch(r, patch)
			if err != nil {
				return nil, err
			}
			rows[i] = merged
			return rows, nil
		}
		return nil, errNotFound
	})
}

func cacheDelete[T any](c *CacheStore, col, id string, idOf func(T) string) error {
	return mutateList(c, col, func(rows []T) ([]T, error) {
		kept := rows[:0]
		for _, r := range rows {
			if idOf(r) != id {
				kept = append(kept, r)
			}
		}
		return kept, nil
	})
}

// -------------------------
// Products
// -------------------------

func (c *CacheStore) ListProducts() ([]models.Product, error) {
	return cacheList[models.Product](c, ColProducts)
}

func (c *CacheStore) AddProduct(p models.Product) (models.Product, error) {
	stamp(&p.ID, &p.CreatedAt)
	err := mutateList(c, ColProducts, func(rows []models.Product) ([]models.Product, error) {
		return append(rows, p), nil
	})
	return p, err
}

func (c *CacheStore) UpdateProduct(id string, patch Patch) error {
	return cachePatch(c, ColProducts, id, func(p models.Product) string { return p.ID }, patch)
}

func (c *CacheStore) DeleteProduct(id string) error {
	return cacheDelete(c, ColProducts, id, func(p models.Product) string { return p.ID })
}

func (c *CacheStore) BulkAddProducts(ps []models.Product) (int, error) {
	for i := range ps {
		stamp(&ps[i].ID, &ps[i].CreatedAt)
	}
	err := mutateList(c, ColProducts, func(rows []models.Product) ([]models.Product, error) {
		return append(rows, ps...), nil
	})
	if err != nil {
		return 0, err
	}
	return len(ps), nil
}

// -------------------------
// Categories (stored as plain names)
// -------------------------

func (c *CacheStore) ListCategories() ([]string, error) {
	return cacheList[string](c, ColCategories)
}

func (c *CacheStore) AddCategory(name string) error {
	return mutateList(c, ColCategories, func(rows []string) ([]string, error) {
		for _, n := range rows {
			if strings.EqualFold(n, name) {
				return nil, fmt.Errorf("التصنيف موجود بالفعل")
			}
		}
		return append(rows, name), nil
	})
}

func (c *CacheStore) DeleteCategory(name string) error {
	return mutateList(c, ColCategories, func(rows []string) ([]string, error) {
		kept := rows[:0]
		for _, n := range rows {
			if n != name {
				kept = append(kept, n)
			}
		}
		return kept, nil
	})
}

// MergeCategories appends the names that are not already present, keeping the
// incoming order. Used when an import lands on the cache tier.
func (c *CacheStore) MergeCategories(names []string) error {
	return mutateList(c, ColCategories, func(rows []string) ([]string, error) {
		for _, name := range names {
			seen := false
			for _, n := range rows {
				if strings.EqualFold(n, name) {
					seen = true
					break
				}
			}
			if !seen {
				rows = append(rows, name)
			}
		}
		return rows, nil
	})
}

// -------------------------
// Expenses
// -------------------------

func (c *CacheStore) ListExpenses() ([]models.Expense, error) {
	return cacheList[models.Expense](c, ColExpenses)
}

func (c *CacheStore) AddExpense(e models.Expense) (models.Expense, error) {
	stamp(&e.ID, &e.CreatedAt)
	err := mutateList(c, ColExpenses, func(rows []models.Expense) ([]models.Expense, error) {
		return append(rows, e), nil
	})
	return e, err
}

func (c *CacheStore) UpdateExpense(id string, patch Patch) error {
	return cachePatch(c, ColExpenses, id, func(e models.Expense) string { return e.ID }, patch)
}

func (c *CacheStore) DeleteExpense(id string) error {
	return cacheDelete(c, ColExpenses, id, func(e models.Expense) string { return e.ID })
}

// -------------------------
// Savings
// -------------------------

func (c *CacheStore) ListSavings() ([]models.Saving, error) {
	return cacheList[models.Saving](c, ColSavings)
}

func (c *CacheStore) AddSaving(s models.Saving) (models.Saving, error) {
	stamp(&s.ID, &s.CreatedAt)
	err := mutateList(c, ColSavings, func(rows []models.Saving) ([]models.Saving, error) {
		return append(rows, s), nil
	})
	return s, err
}

func (c *CacheStore) UpdateSaving(id string, patch Patch) error {
	return cachePatch(c, ColSavings, id, func(s models.Saving) string { return s.ID }, patch)
}

func (c *CacheStore) DeleteSaving(id string) error {
	return cacheDelete(c, ColSavings, id, func(s models.Saving) string { return s.ID })
}

// -------------------------
// Reminders
// -------------------------

func (c *CacheStore) ListReminders() ([]models.Reminder, error) {
	return cacheList[models.Reminder](c, ColReminders)
}

func (c *CacheStore) AddReminder(r models.Reminder) (models.Reminder, error) {
	stamp(&r.ID, &r.CreatedAt)
	err := mutateList(c, ColReminders, func(rows []models.Reminder) ([]models.Reminder, error) {
		return append(rows, r), nil
	})
	return r, err
}

func (c *CacheStore) UpdateReminder(id string, patch Patch) error {
	return cachePatch(c, ColReminders, id, func(r models.Reminder) string { return r.ID }, patch)
}

func (c *CacheStore) DeleteReminder(id string) error {
	return cacheDelete(c, ColReminders, id, func(r models.Reminder) string { return r.ID })
}

// -------------------------
// Read-only collections
// -------------------------

func (c *CacheStore) ListClients() ([]models.Client, error) {
	return cacheList[models.Client](c, ColClients)
}

func (c *CacheStore) ListOrders() ([]models.Order, error) {
	return cacheList[models.Order](c, ColOrders)
}

func (c *CacheStore) ListDeliveredOrders() ([]models.DeliveredOrder, error) {
	return cacheList[models.DeliveredOrder](c, ColDeliveredOrders)
}

// -------------------------
// Backup restore
// -------------------------

func (c *CacheStore) ReplaceProducts(ps []models.Product) error {
	return cacheReplace(c, ColProducts, ps)
}

func (c *CacheStore) ReplaceCategories(names []string) error {
	return cacheReplace(c, ColCategories, names)
}

func (c *CacheStore) ReplaceClients(cs []models.Client) error {
	return cacheReplace(c, ColClients, cs)
}

func (c *CacheStore) ReplaceOrders(os []models.Order) error {
	return cacheReplace(c, ColOrders, os)
}

func (c *CacheStore) ReplaceDeliveredOrders(ds []models.DeliveredOrder) error {
	return cacheReplace(c, ColDeliveredOrders, ds)
}

func (c *CacheStore) ReplaceExpenses(es []models.Expense) error {
	return cacheReplace(c, ColExpenses, es)
}

func (c *CacheStore) ReplaceSavings(ss []models.Saving) error {
	return cacheReplace(c, ColSavings, ss)
}

func (c *CacheStore) ReplaceReminders(rs []models.Reminder) error {
	return cacheReplace(c, ColReminders, rs)
}
