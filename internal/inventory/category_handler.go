package inventory

import (
	"fmt"
	"net/url"
	"strings"

	"storseek-backend/internal/audit"
	"storseek-backend/internal/auth"
	"storseek-backend/internal/models"
	"storseek-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CategoryRequest struct {
	Name string `json:"name"`
}

// -----------------------------------
// GET /api/categories
// -----------------------------------
func ListCategoriesHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := st.ListCategories()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة التصنيفات")
		}
		return c.JSON(categories)
	}
}

// -----------------------------------
// POST /api/categories
// -----------------------------------
func CreateCategoryHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "جسم الطلب غير صالح")
		}
		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "اسم التصنيف مطلوب")
		}

		categories, err := st.ListCategories()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة التصنيفات")
		}
		for _, existing := range categories {
			if strings.EqualFold(existing, body.Name) {
				return fiber.NewError(fiber.StatusConflict, "التصنيف موجود بالفعل")
			}
		}

		if err := st.AddCategory(body.Name); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر إضافة التصنيف")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "category",
			EntityID:    body.Name,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("إضافة تصنيف: %s", body.Name),
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"name": body.Name})
	}
}

// -----------------------------------
// DELETE /api/categories/:name
// -----------------------------------
// A category still referenced by products cannot be removed.
func DeleteCategoryHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := decodeNameParam(c)
		if err != nil {
			return err
		}

		products, err := st.ListProducts()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة المنتجات")
		}
		count := 0
		for _, p := range products {
			if p.Category == name {
				count++
			}
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("لا يمكن حذف التصنيف \"%s\" لأنه يحتوي على %d منتج", name, count))
		}

		if err := st.DeleteCategory(name); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر حذف التصنيف")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "category",
			EntityID:    name,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("حذف تصنيف: %s", name),
		})

		return c.JSON(fiber.Map{"message": "تم حذف التصنيف"})
	}
}

// Arabic names arrive percent-encoded in the path.
func decodeNameParam(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || strings.TrimSpace(name) == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "اسم التصنيف مطلوب")
	}
	return strings.TrimSpace(name), nil
}
