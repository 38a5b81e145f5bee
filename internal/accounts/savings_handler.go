// Package accounts covers the money-tracking side features: savings cards,
// reminders and the overdue alerts banner.
package accounts

import (
	"fmt"
	"sort"
	"time"

	"storseek-backend/internal/audit"
	"storseek-backend/internal/auth"
	"storseek-backend/internal/models"
	"storseek-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type SavingRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// SavingsTotals sums the active cards per type.
type SavingsTotals struct {
	JamiaTotal        float64 `json:"jamiaTotal"`
	InstallmentsTotal float64 `json:"installmentsTotal"`
	PaymentsTotal     float64 `json:"paymentsTotal"`
}

// ActiveTotals only counts active cards; completed ones drop out of the
// running totals.
func ActiveTotals(savings []models.Saving) SavingsTotals {
	var t SavingsTotals
	for _, s := range savings {
		if s.Status != models.SavingStatusActive {
			continue
		}
		switch s.Type {
		case models.SavingTypeJamia:
			t.JamiaTotal += s.Amount.Float()
		case models.SavingTypeInstallment:
			t.InstallmentsTotal += s.Amount.Float()
		case models.SavingTypePayment:
			t.PaymentsTotal += s.Amount.Float()
		}
	}
	return t
}

func validSavingType(t string) bool {
	switch t {
	case models.SavingTypeJamia, models.SavingTypeInstallment, models.SavingTypePayment:
		return true
	}
	return false
}

// -----------------------------------
// GET /api/savings
// -----------------------------------
func ListSavingsHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		savings, err := st.ListSavings()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة المدخرات")
		}

		// newest first
		sort.SliceStable(savings, func(i, j int) bool {
			return savings[i].Date > savings[j].Date
		})

		return c.JSON(savings)
	}
}

// -----------------------------------
// GET /api/savings/totals
// -----------------------------------
func SavingsTotalsHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		savings, err := st.ListSavings()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة المدخرات")
		}
		return c.JSON(ActiveTotals(savings))
	}
}

// -----------------------------------
// POST /api/savings
// -----------------------------------
func CreateSavingHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SavingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "جسم الطلب غير صالح")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "اسم المدخر مطلوب")
		}
		if !validSavingType(body.Type) {
			return fiber.NewError(fiber.StatusBadRequest, "نوع المدخر غير صالح")
		}
		if body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "المبلغ يجب أن يكون أكبر من صفر")
		}
		if _, err := time.Parse("2006-01-02", body.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "التاريخ غير صالح")
		}

		saved, err := st.AddSaving(models.Saving{
			Name:        body.Name,
			Type:        body.Type,
			Amount:      models.Amount(body.Amount),
			Date:        body.Date,
			Description: body.Description,
			Status:      models.SavingStatusActive,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر حفظ المدخر")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "saving",
			EntityID:    saved.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("إضافة مدخر: %s (%s)", saved.Name, saved.Type),
		})

		return c.Status(fiber.StatusCreated).JSON(saved)
	}
}

// -----------------------------------
// PUT /api/savings/:id
// -----------------------------------
func UpdateSavingHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var patch store.Patch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "جسم الطلب غير صالح")
		}
		if len(patch) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "لا توجد حقول للتعديل")
		}
		if v, ok := patch["amount"]; ok {
			amount, isNum := v.(float64)
			if !isNum || amount <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "المبلغ يجب أن يكون أكبر من صفر")
			}
		}
		if v, ok := patch["type"]; ok {
			s, isStr := v.(string)
			if !isStr || !validSavingType(s) {
				return fiber.NewError(fiber.StatusBadRequest, "نوع المدخر غير صالح")
			}
		}

		if err := st.UpdateSaving(id, patch); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "المدخر غير موجود")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "saving",
			EntityID:    id,
			Action:      models.AuditActionUpdate,
			Description: "تعديل مدخر",
		})

		return c.JSON(fiber.Map{"message": "تم تعديل المدخر"})
	}
}

// -----------------------------------
// POST /api/savings/:id/complete
// -----------------------------------
func CompleteSavingHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		patch := store.Patch{"status": models.SavingStatusCompleted}
		if err := st.UpdateSaving(id, patch); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "المدخر غير موجود")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "saving",
			EntityID:    id,
			Action:      models.AuditActionUpdate,
			Description: "إتمام مدخر",
		})

		return c.JSON(fiber.Map{"message": "تم إتمام المدخر"})
	}
}

// -----------------------------------
// DELETE /api/savings/:id
// -----------------------------------
func DeleteSavingHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteSaving(id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر حذف المدخر")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "saving",
			EntityID:    id,
			Action:      models.AuditActionDelete,
			Description: "حذف مدخر",
		})

		return c.JSON(fiber.Map{"message": "تم حذف المدخر"})
	}
}
