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

type ReminderRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// -----------------------------------
// GET /api/reminders
// -----------------------------------
func ListRemindersHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reminders, err := st.ListReminders()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة التذكيرات")
		}

		// soonest first
		sort.SliceStable(reminders, func(i, j int) bool {
			return reminders[i].Date < reminders[j].Date
		})

		return c.JSON(reminders)
	}
}

// -----------------------------------
// POST /api/reminders
// -----------------------------------
func CreateReminderHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ReminderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "جسم الطلب غير صالح")
		}
		if body.Title == "" {
			return fiber.NewError(fiber.StatusBadRequest, "عنوان التذكير مطلوب")
		}
		if _, err := time.Parse("2006-01-02", body.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "التاريخ غير صالح")
		}

		saved, err := st.AddReminder(models.Reminder{
			Title:       body.Title,
			Date:        body.Date,
			Type:        body.Type,
			Description: body.Description,
			Status:      models.ReminderStatusActive,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر حفظ التذكير")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "reminder",
			EntityID:    saved.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("إضافة تذكير: %s", saved.Title),
		})

		return c.Status(fiber.StatusCreated).JSON(saved)
	}
}

// -----------------------------------
// PUT /api/reminders/:id
// -----------------------------------
func UpdateReminderHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var patch store.Patch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "جسم الطلب غير صالح")
		}
		if len(patch) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "لا توجد حقول للتعديل")
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

		if err := st.UpdateReminder(id, patch); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "التذكير غير موجود")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "reminder",
			EntityID:    id,
			Action:      models.AuditActionUpdate,
			Description: "تعديل تذكير",
		})

		return c.JSON(fiber.Map{"message": "تم تعديل التذكير"})
	}
}

// -----------------------------------
// DELETE /api/reminders/:id
// -----------------------------------
func DeleteReminderHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteReminder(id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر حذف التذكير")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "reminder",
			EntityID:    id,
			Action:      models.AuditActionDelete,
			Description: "حذف تذكير",
		})

		return c.JSON(fiber.Map{"message": "تم حذف التذكير"})
	}
}
