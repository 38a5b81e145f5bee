package expense

import (
	"fmt"
	"net/url"
	"time"

	"storseek-backend/internal/csvio"
	"storseek-backend/internal/financial"
	"storseek-backend/internal/models"
	"storseek-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

var expenseCSVHeaders = []string{"التاريخ", "الوصف", "الفئة", "المبلغ", "طريقة الدفع", "ملاحظات"}

// PaymentMethodName maps the stored code to its display name. Unknown codes
// pass through unchanged.
func PaymentMethodName(method string) string {
	switch method {
	case models.PaymentCash:
		return "نقدي"
	case models.PaymentCredit:
		return "آجل"
	case models.PaymentVodafone:
		return "فودافون كاش"
	case models.PaymentBank:
		return "بنكي"
	}
	return method
}

// -----------------------------------
// GET /api/expenses/export/csv
// ?from=2025-01-01&to=2025-01-31
// -----------------------------------
func ExportExpensesHandler(st store.RecordStore) fiber.Handler {
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
		if len(expenses) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "لا توجد مصروفات للتصدير")
		}

		rows := make([][]string, 0, len(expenses))
		for _, e := range expenses {
			rows = append(rows, []string{
				e.Date,
				e.Description,
				e.Category,
				fmt.Sprintf("%g", e.Amount.Float()),
				PaymentMethodName(e.PaymentMethod),
				e.Notes,
			})
		}

		payload, err := csvio.Marshal(expenseCSVHeaders, rows)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر إنشاء ملف التصدير")
		}

		filename := fmt.Sprintf("المصروفات_%s.csv", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))
		return c.Send(payload)
	}
}
