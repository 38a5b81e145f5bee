package store

import (
	"errors"
	"time"

	"storseek-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrUnavailable is returned when the service started without a database
// connection; the Fallback decorator turns it into a cache hit.
var ErrUnavailable = errors.New("قاعدة البيانات غير متاحة")

// GormStore is the remote record store backed by Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ RecordStore = (*GormStore)(nil)

func (g *GormStore) conn() (*gorm.DB, error) {
	if g.db == nil {
		return nil, ErrUnavailable
	}
	return g.db, nil
}

// NewID mints a store-assigned document id.
func NewID() string {
	return uuid.NewString()
}

// NowISO is the creation timestamp format stored on documents.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func stamp(id, createdAt *string) {
	if *id == "" {
		*id = NewID()
	}
	if *createdAt == "" {
		*createdAt = NowISO()
	}
}

// -------------------------
// Products
// -------------------------

func (g *GormStore) ListProducts() ([]models.Product, error) {
	db, err := g.conn()
	if err != nil {
		return nil, err
	}
	var ps []models.Product
	if err := db.Order("created_at asc").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (g *GormStore) AddProduct(p models.Product) (models.Product, error) {
	db, err := g.conn()
	if err != nil {
		return p, err
	}
	stamp(&p.ID, &p.CreatedAt)
	if err := db.Create(&p).Error; err != nil {
		return p, err
	}
	return p, nil
}

func (g *GormStore) UpdateProduct(id string, patch Patch) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	var p models.Product
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		return err
	}
	merged, err := applyPatch(p, patch)
	if err != nil {
		return err
	}
	merged.ID = id
	return db.Save(&merged).Error
}

func (g *GormStore) DeleteProduct(id string) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	return db.Delete(&models.Product{}, "id = ?", id).Error
}

func (g *GormStore) BulkAddProducts(ps []models.Product) (int, error) {
	db, err := g.conn()
	if err != nil {
		return 0, err
	}
	for i := range ps {
		stamp(&ps[i].ID, &ps[i].CreatedAt)
	}
	if err := db.CreateInBatches(ps, 100).Error; err != nil {
		return 0, err
	}
	return len(ps), nil
}

// -------------------------
// Categories
// -------------------------

func (g *GormStore) ListCategories() ([]string, error) {
	db, err := g.conn()
	if err != nil {
		return nil, err
	}
	var cats []models.Category
	if err := db.Order("created_at asc").Find(&cats).Error; err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return names, nil
}

func (g *GormStore) AddCategory(name string) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	return db.Create(&models.Category{Name: name, CreatedAt: NowISO()}).Error
}

func (g *GormStore) DeleteCategory(name string) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	return db.Delete(&models.Category{}, "name = ?", name).Error
}

// -------------------------
// Expenses
// -------------------------

func (g *GormStore) ListExpenses() ([]models.Expense, error) {
	db, err := g.conn()
	if err != nil {
		return nil, err
	}
	var es []models.Expense
	if err := db.Order("date asc, created_at asc").Find(&es).Error; err != nil {
		return nil, err
	}
	return es, nil
}

func (g *GormStore) AddExpense(e models.Expense) (models.Expense, error) {
	db, err := g.conn()
	if err != nil {
		return e, err
	}
	stamp(&e.ID, &e.CreatedAt)
	if err := db.Create(&e).Error; err != nil {
		return e, err
	}
	return e, nil
}

func (g *GormStore) UpdateExpense(id string, patch Patch) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	var e models.Expense
	if err := db.First(&e, "id = ?", id).Error; err != nil {
		return err
	}
	merged, err := applyPatch(e, patch)
	if err != nil {
		return err
	}
	merged.ID = id
	return db.Save(&merged).Error
}

func (g *GormStore) DeleteExpense(id string) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	return db.Delete(&models.Expense{}, "id = ?", id).Error
}

// -------------------------
// Savings
// -------------------------

func (g *GormStore) ListSavings() ([]models.Saving, error) {
	db, err := g.conn()
	if err != nil {
		return nil, err
	}
	var ss []models.Saving
	if err := db.Order("date asc, created_at asc").Find(&ss).Error; err != nil {
		return nil, err
	}
	return ss, nil
}

func (g *GormStore) AddSaving(s models.Saving) (models.Saving, error) {
	db, err := g.conn()
	if err != nil {
		return s, err
	}
	stamp(&s.ID, &s.CreatedAt)
	if err := db.Create(&s).Error; err != nil {
		return s, err
	}
	return s, nil
}

func (g *GormStore) UpdateSaving(id string, patch Patch) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	var s models.Saving
	if err := db.First(&s, "id = ?", id).Error; err != nil {
		return err
	}
	merged, err := applyPatch(s, patch)
	if err != nil {
		return err
	}
	merged.ID = id
	return db.Save(&merged).Error
}

func (g *GormStore) DeleteSaving(id string) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	return db.Delete(&models.Saving{}, "id = ?", id).Error
}

// -------------------------
// Reminders
// -------------------------

func (g *GormStore) ListReminders() ([]models.Reminder, error) {
	db, err := g.conn()
	if err != nil {
		return nil, err
	}
	var rs []models.Reminder
	if err := db.Order("date asc, created_at asc").Find(&rs).Error; err != nil {
		return nil, err
	}
	return rs, nil
}

func (g *GormStore) AddReminder(r models.Reminder) (models.Reminder, error) {
	db, err := g.conn()
	if err != nil {
		return r, err
	}
	stamp(&r.ID, &r.CreatedAt)
	if err := db.Create(&r).Error; err != nil {
		return r, err
	}
	return r, nil
}

func (g *GormStore) UpdateReminder(id string, patch Patch) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	var r models.Reminder
	if err := db.First(&r, "id = ?", id).Error; err != nil {
		return err
	}
	merged, err := applyPatch(r, patch)
	if err != nil {
		return err
	}
	merged.ID = id
	return db.Save(&merged).Error
}

func (g *GormStore) DeleteReminder(id string) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	return db.Delete(&models.Reminder{}, "id = ?", id).Error
}

// -------------------------
// Read-only collections
// -------------------------

func (g *GormStore) ListClients() ([]models.Client, error) {
	db, err := g.conn()
	if err != nil {
		return nil, err
	}
	var cs []models.Client
	if err := db.Order("created_at asc").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (g *GormStore) ListOrders() ([]models.Order, error) {
	db, err := g.conn()
	if err != nil {
		return nil, err
	}
	var os []models.Order
	if err := db.Order("created_at asc").Find(&os).Error; err != nil {
		return nil, err
	}
	return os, nil
}

func (g *GormStore) ListDeliveredOrders() ([]models.DeliveredOrder, error) {
	db, err := g.conn()
	if err != nil {
		return nil, err
	}
	var ds []models.DeliveredOrder
	if err := db.Order("delivered_at asc").Find(&ds).Error; err != nil {
		return nil, err
	}
	return ds, nil
}

// -------------------------
// Backup restore
// -------------------------

func replaceAll[T any](db *gorm.DB, model any, rows []T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
}

func (g *GormStore) ReplaceProducts(ps []models.Product) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	for i := range ps {
		stamp(&ps[i].ID, &ps[i].CreatedAt)
	}
	return replaceAll(db, &models.Product{}, ps)
}

func (g *GormStore) ReplaceCategories(names []string) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	cats := make([]models.Category, 0, len(names))
	for _, n := range names {
		cats = append(cats, models.Category{Name: n, CreatedAt: NowISO()})
	}
	return replaceAll(db, &models.Category{}, cats)
}

func (g *GormStore) ReplaceClients(cs []models.Client) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	for i := range cs {
		stamp(&cs[i].ID, &cs[i].CreatedAt)
	}
	return replaceAll(db, &models.Client{}, cs)
}

func (g *GormStore) ReplaceOrders(os []models.Order) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	for i := range os {
		stamp(&os[i].ID, &os[i].CreatedAt)
	}
	return replaceAll(db, &models.Order{}, os)
}

func (g *GormStore) ReplaceDeliveredOrders(ds []models.DeliveredOrder) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	for i := range ds {
		if ds[i].ID == "" {
			ds[i].ID = NewID()
		}
	}
	return replaceAll(db, &models.DeliveredOrder{}, ds)
}

func (g *GormStore) ReplaceExpenses(es []models.Expense) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	for i := range es {
		stamp(&es[i].ID, &es[i].CreatedAt)
	}
	return replaceAll(db, &models.Expense{}, es)
}

func (g *GormStore) ReplaceSavings(ss []models.Saving) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	for i := range ss {
		stamp(&ss[i].ID, &ss[i].CreatedAt)
	}
	return replaceAll(db, &models.Saving{}, ss)
}

func (g *GormStore) ReplaceReminders(rs []models.Reminder) error {
	db, err := g.conn()
	if err != nil {
		return err
	}
	for i := range rs {
		stamp(&rs[i].ID, &rs[i].CreatedAt)
	}
	return replaceAll(db, &models.Reminder{}, rs)
}
