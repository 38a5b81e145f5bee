package store

import "storseek-backend/internal/models"

// Patch is a partial update keyed by the document field name (the JSON
// camelCase names, e.g. "costPrice").
type Patch map[string]any

// Collection keys, shared by the remote store tables and the local cache file.
const (
	ColProducts        = "products"
	ColCategories      = "categories"
	ColClients         = "clients"
	ColOrders          = "orders"
	ColDeliveredOrders = "deliveredOrders"
	ColExpenses        = "expenses"
	ColSavings         = "savings"
	ColReminders       = "reminders"
)

// RecordStore is the persistence capability behind every handler. Two
// implementations exist: GormStore (Postgres, the normal case) and CacheStore
// (a local file, the degraded case). Fallback composes the two so callers
// never care which tier served them.
//
// Clients, orders and delivered orders are written by the storefront flow;
// this service only reads them.
type RecordStore interface {
	ListProducts() ([]models.Product, error)
	AddProduct(p models.Product) (models.Product, error)
	UpdateProduct(id string, patch Patch) error
	DeleteProduct(id string) error
	BulkAddProducts(ps []models.Product) (int, error)

	ListCategories() ([]string, error)
	AddCategory(name string) error
	DeleteCategory(name string) error

	ListExpenses() ([]models.Expense, error)
	AddExpense(e models.Expense) (models.Expense, error)
	UpdateExpense(id string, patch Patch) error
	DeleteExpense(id string) error

	ListSavings() ([]models.Saving, error)
	AddSaving(s models.Saving) (models.Saving, error)
	UpdateSaving(id string, patch Patch) error
	DeleteSaving(id string) error

	ListReminders() ([]models.Reminder, error)
	AddReminder(r models.Reminder) (models.Reminder, error)
	UpdateReminder(id string, patch Patch) error
	DeleteReminder(id string) error

	ListClients() ([]models.Client, error)
	ListOrders() ([]models.Order, error)
	ListDeliveredOrders() ([]models.DeliveredOrder, error)

	// Wholesale replacement, used by backup restore.
	ReplaceProducts(ps []models.Product) error
	ReplaceCategories(names []string) error
	ReplaceClients(cs []models.Client) error
	ReplaceOrders(os []models.Order) error
	ReplaceDeliveredOrders(ds []models.DeliveredOrder) error
	ReplaceExpenses(es []models.Expense) error
	ReplaceSavings(ss []models.Saving) error
	ReplaceReminders(rs []models.Reminder) error
}
