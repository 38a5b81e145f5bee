package inventory

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"storseek-backend/internal/audit"
	"storseek-backend/internal/auth"
	"storseek-backend/internal/models"
	"storseek-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

const backupVersion = "1.0"

// Backup is the full-database snapshot format. Field names match the stored
// document keys so old backup files round-trip untouched.
type Backup struct {
	Products        []models.Product        `json:"products"`
	Categories      []string                `json:"categories"`
	Clients         []models.Client         `json:"clients"`
	Orders          []models.Order          `json:"orders"`
	DeliveredOrders []models.DeliveredOrder `json:"deliveredOrders"`
	Expenses        []models.Expense        `json:"expenses"`
	Savings         []models.Saving         `json:"savings"`
	Reminders       []models.Reminder       `json:"reminders"`
	ExportDate      string                  `json:"exportDate"`
	Version         string                  `json:"version"`
}

// -----------------------------------
// GET /api/backup/export
// -----------------------------------
func ExportBackupHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		backup := Backup{
			ExportDate: time.Now().UTC().Format(time.RFC3339),
			Version:    backupVersion,
		}

		var err error
		if backup.Products, err = st.ListProducts(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة المنتجات")
		}
		if backup.Categories, err = st.ListCategories(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة التصنيفات")
		}
		if backup.Clients, err = st.ListClients(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة العملاء")
		}
		if backup.Orders, err = st.ListOrders(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة الطلبات")
		}
		if backup.DeliveredOrders, err = st.ListDeliveredOrders(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة الطلبات المسلمة")
		}
		if backup.Expenses, err = st.ListExpenses(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة المصروفات")
		}
		if backup.Savings, err = st.ListSavings(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة المدخرات")
		}
		if backup.Reminders, err = st.ListReminders(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة التذكيرات")
		}

		payload, err := json.MarshalIndent(backup, "", "  ")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر إنشاء النسخة الاحتياطية")
		}

		filename := fmt.Sprintf("نسخة_احتياطية_%s.json", time.Now().Format("2006-01-02"))
		return sendAttachment(c, filename, fiber.MIMEApplicationJSON, payload)
	}
}

// -----------------------------------
// POST /api/backup/import
// multipart field: file (.json)
// -----------------------------------
// Restore replaces each collection present in the file; absent collections
// are left alone. Products must exist and be a list or the file is refused.
func ImportBackupHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "تعذر استلام الملف")
		}
		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".json") {
			return fiber.NewError(fiber.StatusBadRequest, "يرجى اختيار ملف JSON صالح")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر فتح الملف")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة الملف")
		}

		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "خطأ في قراءة ملف النسخة الاحتياطية")
		}

		var backup Backup
		if err := json.Unmarshal(data, &backup); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "خطأ في قراءة ملف النسخة الاحتياطية")
		}
		if _, ok := raw["products"]; !ok || backup.Products == nil {
			return fiber.NewError(fiber.StatusBadRequest, "ملف النسخة الاحتياطية غير صالح")
		}

		if err := st.ReplaceProducts(backup.Products); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر استعادة المنتجات")
		}
		if _, ok := raw["categories"]; ok {
			if err := st.ReplaceCategories(backup.Categories); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "تعذر استعادة التصنيفات")
			}
		}
		if _, ok := raw["clients"]; ok {
			if err := st.ReplaceClients(backup.Clients); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "تعذر استعادة العملاء")
			}
		}
		if _, ok := raw["orders"]; ok {
			if err := st.ReplaceOrders(backup.Orders); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "تعذر استعادة الطلبات")
			}
		}
		if _, ok := raw["deliveredOrders"]; ok {
			if err := st.ReplaceDeliveredOrders(backup.DeliveredOrders); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "تعذر استعادة الطلبات المسلمة")
			}
		}
		if _, ok := raw["expenses"]; ok {
			if err := st.ReplaceExpenses(backup.Expenses); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "تعذر استعادة المصروفات")
			}
		}
		if _, ok := raw["savings"]; ok {
			if err := st.ReplaceSavings(backup.Savings); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "تعذر استعادة المدخرات")
			}
		}
		if _, ok := raw["reminders"]; ok {
			if err := st.ReplaceReminders(backup.Reminders); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "تعذر استعادة التذكيرات")
			}
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "backup",
			EntityID:    fileHeader.Filename,
			Action:      models.AuditActionImport,
			Description: fmt.Sprintf("استعادة نسخة احتياطية: %d منتج", len(backup.Products)),
		})

		return c.JSON(fiber.Map{
			"message":  fmt.Sprintf("تم استعادة البيانات بنجاح. تم استعادة %d منتج", len(backup.Products)),
			"products": len(backup.Products),
		})
	}
}
