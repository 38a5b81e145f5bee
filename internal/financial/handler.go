package financial

import (
	"time"

	"storseek-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// -----------------------------------
// GET /api/statistics
// ?from=2025-01-01&to=2025-01-31
// -----------------------------------
func GetStatisticsHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from := c.Query("from")
		to := c.Query("to")

		// default range: first of the current month through today
		now := time.Now()
		if from == "" && to == "" {
			from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
			to = now.Format(dateLayout)
		}
		if from != "" {
			if _, ok := parseDay(from); !ok {
				return fiber.NewError(fiber.StatusBadRequest, "تاريخ البداية غير صالح")
			}
		}
		if to != "" {
			if _, ok := parseDay(to); !ok {
				return fiber.NewError(fiber.StatusBadRequest, "تاريخ النهاية غير صالح")
			}
		}

		orders, err := st.ListOrders()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة الطلبات")
		}
		delivered, err := st.ListDeliveredOrders()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة الطلبات المسلمة")
		}
		clients, err := st.ListClients()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة العملاء")
		}
		expenses, err := st.ListExpenses()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة المصروفات")
		}

		stats := Calculate(Snapshot{
			Orders:          orders,
			DeliveredOrders: delivered,
			Clients:         clients,
			Expenses:        expenses,
		}, from, to)

		return c.JSON(fiber.Map{
			"from":       from,
			"to":         to,
			"statistics": stats,
		})
	}
}
