package inventory

import (
	"fmt"

	"storseek-backend/internal/audit"
	"storseek-backend/internal/auth"
	"storseek-backend/internal/models"
	"storseek-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type ProductRequest struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	CostPrice      float64 `json:"costPrice"`
	WholesalePrice float64 `json:"wholesalePrice"`
	RetailPrice    float64 `json:"retailPrice"`
	Quantity       int     `json:"quantity"`
	InfiniteStock  bool    `json:"infiniteStock"`
	IsManufactured bool    `json:"isManufactured"`
}

// Manual entry enforces the price ladder; bulk import deliberately does not,
// so historical sheets with odd pricing still load.
func validatePrices(costPrice, wholesalePrice, retailPrice float64) error {
	if costPrice < 0 || wholesalePrice < 0 || retailPrice < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "الأسعار لا يمكن أن تكون سالبة")
	}
	if wholesalePrice < costPrice {
		return fiber.NewError(fiber.StatusBadRequest, "سعر الجملة لا يمكن أن يكون أقل من سعر التكلفة")
	}
	if retailPrice < wholesalePrice {
		return fiber.NewError(fiber.StatusBadRequest, "سعر القطاعي لا يمكن أن يكون أقل من سعر الجملة")
	}
	return nil
}

// -----------------------------------
// GET /api/products
// -----------------------------------
func ListProductsHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := st.ListProducts()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة المنتجات")
		}
		return c.JSON(products)
	}
}

// -----------------------------------
// POST /api/products
// -----------------------------------
func CreateProductHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "جسم الطلب غير صالح")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "اسم المنتج مطلوب")
		}
		if body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "التصنيف مطلوب")
		}
		if err := validatePrices(body.CostPrice, body.WholesalePrice, body.RetailPrice); err != nil {
			return err
		}
		if body.Quantity < 0 {
			body.Quantity = 0
		}

		saved, err := st.AddProduct(models.Product{
			Name:           body.Name,
			Category:       body.Category,
			CostPrice:      body.CostPrice,
			WholesalePrice: body.WholesalePrice,
			RetailPrice:    body.RetailPrice,
			Quantity:       body.Quantity,
			InfiniteStock:  body.InfiniteStock,
			IsManufactured: body.IsManufactured,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر حفظ المنتج")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "product",
			EntityID:    saved.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("إضافة منتج: %s", saved.Name),
		})

		return c.Status(fiber.StatusCreated).JSON(saved)
	}
}

// -----------------------------------
// PUT /api/products/:id
// -----------------------------------
func UpdateProductHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var patch store.Patch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "جسم الطلب غير صالح")
		}
		if len(patch) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "لا توجد حقول للتعديل")
		}
		if v, ok := patch["name"]; ok {
			if s, isStr := v.(string); !isStr || s == "" {
				return fiber.NewError(fiber.StatusBadRequest, "اسم المنتج مطلوب")
			}
		}

		// price-ladder check needs the merged view, so load the current record
		if hasAny(patch, "costPrice", "wholesalePrice", "retailPrice") {
			current, err := findProduct(st, id)
			if err != nil {
				return fiber.NewError(fiber.StatusNotFound, "المنتج غير موجود")
			}
			cost := patchedPrice(patch, "costPrice", current.CostPrice)
			wholesale := patchedPrice(patch, "wholesalePrice", current.WholesalePrice)
			retail := patchedPrice(patch, "retailPrice", current.RetailPrice)
			if err := validatePrices(cost, wholesale, retail); err != nil {
				return err
			}
		}

		if err := st.UpdateProduct(id, patch); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "المنتج غير موجود")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "product",
			EntityID:    id,
			Action:      models.AuditActionUpdate,
			Description: "تعديل منتج",
		})

		return c.JSON(fiber.Map{"message": "تم تحديث المنتج"})
	}
}

func hasAny(patch store.Patch, keys ...string) bool {
	for _, k := range keys {
		if _, ok := patch[k]; ok {
			return true
		}
	}
	return false
}

func patchedPrice(patch store.Patch, key string, current float64) float64 {
	if v, ok := patch[key]; ok {
		if f, isNum := v.(float64); isNum {
			return f
		}
	}
	return current
}

func findProduct(st store.RecordStore, id string) (*models.Product, error) {
	products, err := st.ListProducts()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("المنتج غير موجود")
}

// -----------------------------------
// DELETE /api/products/:id
// -----------------------------------
func DeleteProductHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteProduct(id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر حذف المنتج")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "product",
			EntityID:    id,
			Action:      models.AuditActionDelete,
			Description: "حذف منتج",
		})

		return c.JSON(fiber.Map{"message": "تم حذف المنتج"})
	}
}

// -----------------------------------
// POST /api/products/:id/duplicate
// -----------------------------------
// The copy starts with zero stock and a marked name so it is obvious in the
// list until the user edits it.
func DuplicateProductHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		original, err := findProduct(st, id)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "المنتج غير موجود")
		}

		copy := *original
		copy.ID = ""
		copy.CreatedAt = ""
		copy.Name = original.Name + " - نسخة"
		copy.Quantity = 0

		saved, err := st.AddProduct(copy)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر نسخ المنتج")
		}

		userID, userName := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "product",
			EntityID:    saved.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("نسخ المنتج: %s", original.Name),
		})

		return c.Status(fiber.StatusCreated).JSON(saved)
	}
}
