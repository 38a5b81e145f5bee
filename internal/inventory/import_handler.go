package inventory

import (
	"fmt"
	"io"
	"strings"

	"storseek-backend/internal/audit"
	"storseek-backend/internal/auth"
	"storseek-backend/internal/csvio"
	"storseek-backend/internal/models"
	"storseek-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type ImportResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
	Target   string   `json:"target"`
}

// -----------------------------------
// POST /api/products/import/excel
// multipart field: file (.xlsx)
// -----------------------------------
func ImportProductsExcelHandler(fb *store.Fallback) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "تعذر استلام الملف")
		}
		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "يسمح فقط بملفات .xlsx")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر فتح الملف")
		}
		defer file.Close()

		excelFile, err := excelize.OpenReader(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "تعذر قراءة ملف Excel")
		}
		defer excelFile.Close()

		sheetList := excelFile.GetSheetList()
		if len(sheetList) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ملف Excel لا يحتوي على أوراق")
		}
		rows, err := excelFile.GetRows(sheetList[0])
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "تعذر قراءة ورقة Excel")
		}
		if len(rows) < 2 {
			return fiber.NewError(fiber.StatusBadRequest, "الملف فارغ أو لا يحتوي على بيانات صالحة")
		}

		headers := make([]string, len(rows[0]))
		for i, h := range rows[0] {
			headers[i] = strings.TrimSpace(h)
		}
		rawRows := make([]RawRow, 0, len(rows)-1)
		for _, row := range rows[1:] {
			r := RawRow{}
			for i, h := range headers {
				if h == "" {
					continue
				}
				if i < len(row) {
					r[h] = strings.TrimSpace(row[i])
				} else {
					r[h] = ""
				}
			}
			rawRows = append(rawRows, r)
		}

		return processImport(c, fb, rawRows)
	}
}

// -----------------------------------
// POST /api/products/import/csv
// multipart field: file (.csv)
// -----------------------------------
func ImportProductsCSVHandler(fb *store.Fallback) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "تعذر استلام الملف")
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

		parsed, err := csvio.Parse(data)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "خطأ في استيراد ملف CSV - تأكد من تنسيق الملف")
		}
		if len(parsed) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "الملف فارغ أو لا يحتوي على بيانات صالحة")
		}

		rawRows := make([]RawRow, 0, len(parsed))
		for _, row := range parsed {
			rawRows = append(rawRows, RawRow(row))
		}

		return processImport(c, fb, rawRows)
	}
}

// processImport reconciles the rows against the current catalog, persists the
// survivors and reports what happened per row.
func processImport(c *fiber.Ctx, fb *store.Fallback, rows []RawRow) error {
	existing, err := fb.ListProducts()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة المنتجات")
	}
	categories, err := fb.ListCategories()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة التصنيفات")
	}

	result := Reconcile(rows, existing, categories)

	resp := ImportResponse{
		Skipped: len(result.Rejected),
		Errors:  []string{},
		Target:  store.TargetStore,
	}
	for _, rej := range result.Rejected {
		resp.Errors = append(resp.Errors, rej.String())
	}

	if len(result.Accepted) > 0 {
		bulk, err := fb.PersistImport(result.Accepted, result.NewCategories)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر حفظ المنتجات المستوردة")
		}
		resp.Imported = bulk.Persisted
		resp.Target = bulk.Target
	}

	userID, userName := auth.CurrentUser(c)
	audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  "product",
		EntityID:    "bulk",
		Action:      models.AuditActionImport,
		Description: fmt.Sprintf("استيراد منتجات: %d مقبول، %d مرفوض", resp.Imported, resp.Skipped),
	})

	return c.JSON(resp)
}
