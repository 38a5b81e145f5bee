package accounts

import (
	"time"

	"storseek-backend/internal/financial"
	"storseek-backend/internal/models"
	"storseek-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type AlertsResponse struct {
	OverdueOrders []models.Order    `json:"overdueOrders"`
	DueReminders  []models.Reminder `json:"dueReminders"`
}

// OverdueOrders returns the orders whose delivery date has passed and are not
// delivered yet. Orders with a blank or broken delivery date never alarm.
func OverdueOrders(orders []models.Order, now time.Time) []models.Order {
	today := now.Format("2006-01-02")
	out := []models.Order{}
	for _, o := range orders {
		if o.Status == models.OrderStatusDelivered {
			continue
		}
		day := financial.DateOnly(o.DeliveryDate)
		if _, err := time.Parse("2006-01-02", day); err != nil {
			continue
		}
		if day < today {
			out = append(out, o)
		}
	}
	return out
}

// DueReminders returns the active reminders due today or earlier.
func DueReminders(reminders []models.Reminder, now time.Time) []models.Reminder {
	today := now.Format("2006-01-02")
	out := []models.Reminder{}
	for _, r := range reminders {
		if r.Status != models.ReminderStatusActive {
			continue
		}
		day := financial.DateOnly(r.Date)
		if _, err := time.Parse("2006-01-02", day); err != nil {
			continue
		}
		if day <= today {
			out = append(out, r)
		}
	}
	return out
}

// -----------------------------------
// GET /api/alerts
// -----------------------------------
func GetAlertsHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orders, err := st.ListOrders()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة الطلبات")
		}
		reminders, err := st.ListReminders()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة التذكيرات")
		}

		now := time.Now()
		return c.JSON(AlertsResponse{
			OverdueOrders: OverdueOrders(orders, now),
			DueReminders:  DueReminders(reminders, now),
		})
	}
}
