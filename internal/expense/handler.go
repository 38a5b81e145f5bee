// Package expense exposes the spending ledger: CRUD plus the CSV report the
// accountant downloads at month end.
package expense

import (
	"fmt"
	"sort"
	"time"

	"storseek-backend/internal/audit"
	"storseek-backend/internal/auth"
	"storseek-backend/internal/financial"
	"storseek-backend/internal/models"
	"storseek-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type ExpenseRequest struct {
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"paymentMethod"`
	Notes         string  `json:"notes"`
}

func validPaymentMethod(m string) bool {
	switch m {
	case models.PaymentCash, models.PaymentCredit, models.PaymentVodafone, models.PaymentBank:
		return true
	}
	return false
}

func validateExpense(body *ExpenseRequest) error {
	if body.Description == "" {
		return fiber.NewError(fiber.StatusBadRequest, "وصف المصروف مطلوب")
	}
	if body.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "المبلغ يجب أن يكون أكبر من صفر")
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "التاريخ غير صالح")
	}
	if !validPaymentMethod(body.PaymentMethod) {
		return fiber.NewError(fiber.StatusBadRequest, "طريقة الدفع غير صالحة")
	}
	return nil
}

// -----------------------------------
// GET /api/expenses
// ?from=2025-01-01&to=2025-01-31
// -----------------------------------
func ListExpensesHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		expenses, err := st.ListExpenses()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة المصروفات")
		}

		from := c.Query("from")
		to := c.Query("to")
		if from != "" || to != "" {
			expenses = financial.FilterByRange(expenses, from, to,
				func(e models.Expense) string { return e.Date })
		}

		// newest first
		sort.SliceStable(expenses, func(i, j int) bool {
			if expenses[i].Date != expenses[j].Date {
				return expenses[i].Date > expenses[j].Date
			}
			return expenses[i].CreatedAt > expenses[j].CreatedAt
		})

		return c.JSON(expenses)
	}
}

// -----------------------------------
// POST /api/expenses
// -----------------------------------
func CreateExpenseHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "جسم الطلب غير صالح")
		}
		if err := validateExpense(&body); err != nil {
			return err
		}

		saved, err := st.AddExpense(models.Expense{
			Description:   body.Description,
			Category:      body.Category,
			Amount:        models.Amount(body.Amount),
			Date:          body.Date,
			PaymentMethod: body.PaymentMethod,
			Notes:         body.Notes,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر حفظ المصروف")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "expense",
			EntityID:    saved.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("إضافة مصروف: %s بمبلغ %.2f", saved.Description, saved.Amount.Float()),
		})

		return c.Status(fiber.StatusCreated).JSON(saved)
	}
}

// -----------------------------------
// PUT /api/expenses/:id
// -----------------------------------
func UpdateExpenseHandler(st store.RecordStore) fiber.Handler {
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
		if v, ok := patch["date"]; ok {
			s, isStr := v.(string)
			if !isStr {
				return fiber.NewError(fiber.StatusBadRequest, "التاريخ غير صالح")
			}
			if _, err := time.Parse("2006-01-02", s); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "التاريخ غير صالح")
			}
		}
		if v, ok := patch["paymentMethod"]; ok {
			s, isStr := v.(string)
			if !isStr || !validPaymentMethod(s) {
				return fiber.NewError(fiber.StatusBadRequest, "طريقة الدفع غير صالحة")
			}
		}

		if err := st.UpdateExpense(id, patch); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "المصروف غير موجود")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "expense",
			EntityID:    id,
			Action:      models.AuditActionUpdate,
			Description: "تعديل مصروف",
		})

		return c.JSON(fiber.Map{"message": "تم تعديل المصروف"})
	}
}

// -----------------------------------
// DELETE /api/expenses/:id
// -----------------------------------
func DeleteExpenseHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteExpense(id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر حذف المصروف")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "expense",
			EntityID:    id,
			Action:      models.AuditActionDelete,
			Description: "حذف مصروف",
		})

		return c.JSON(fiber.Map{"message": "تم حذف المصروف"})
	}
}
