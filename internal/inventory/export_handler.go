package inventory

import (
	"fmt"
	"net/url"
	"time"

	"storseek-backend/internal/csvio"
	"storseek-backend/internal/financial"
	"storseek-backend/internal/models"
	"storseek-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

var productExportHeaders = []string{
	"اسم المنتج", "التصنيف", "سعر التكلفة", "سعر الجملة", "سعر القطاعي",
	"الكمية", "لا ينفد", "مُصنع", "تاريخ الإنشاء",
}

var productColumnWidths = []float64{20, 15, 12, 12, 12, 10, 10, 10, 15}

func boolLabel(v bool) string {
	if v {
		return "نعم"
	}
	return "لا"
}

func productExportRow(p models.Product) []string {
	return []string{
		p.Name,
		p.Category,
		fmt.Sprintf("%g", p.CostPrice),
		fmt.Sprintf("%g", p.WholesalePrice),
		fmt.Sprintf("%g", p.RetailPrice),
		fmt.Sprintf("%d", p.Quantity),
		boolLabel(p.InfiniteStock),
		boolLabel(p.IsManufactured),
		financial.DateOnly(p.CreatedAt),
	}
}

func sendAttachment(c *fiber.Ctx, filename, contentType string, payload []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))
	return c.Send(payload)
}

// -----------------------------------
// GET /api/products/export/csv
// -----------------------------------
func ExportProductsCSVHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := st.ListProducts()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة المنتجات")
		}
		if len(products) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "لا توجد منتجات للتصدير")
		}

		rows := make([][]string, 0, len(products))
		for _, p := range products {
			rows = append(rows, productExportRow(p))
		}

		payload, err := csvio.Marshal(productExportHeaders, rows)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر إنشاء ملف التصدير")
		}

		filename := fmt.Sprintf("المنتجات_%s.csv", time.Now().Format("2006-01-02"))
		return sendAttachment(c, filename, "text/csv; charset=utf-8", payload)
	}
}

func buildProductWorkbook(sheet string, rows [][]string) (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, err
	}

	if err := writeSheetRow(f, sheet, 1, productExportHeaders); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeSheetRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	for i, width := range productColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeSheetRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cellName, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return f.SetSheetRow(sheet, cellName, &out)
}

// -----------------------------------
// GET /api/products/export/excel
// -----------------------------------
func ExportProductsExcelHandler(st store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := st.ListProducts()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر قراءة المنتجات")
		}
		if len(products) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "لا توجد منتجات للتصدير")
		}

		rows := make([][]string, 0, len(products))
		for _, p := range products {
			rows = append(rows, productExportRow(p))
		}

		f, err := buildProductWorkbook("المنتجات", rows)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر إنشاء ملف Excel")
		}
		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر إنشاء ملف Excel")
		}

		filename := fmt.Sprintf("المنتجات_%s.xlsx", time.Now().Format("2006-01-02"))
		return sendAttachment(c, filename,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}

// -----------------------------------
// GET /api/products/template/excel
// -----------------------------------
// One example row so the user sees the expected values, including the
// نعم / لا flags.
func DownloadTemplateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		example := []string{"مثال منتج", "إلكترونيات", "100", "120", "150", "10", "لا", "لا", ""}

		f, err := buildProductWorkbook("نموذج المنتجات", [][]string{example})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر إنشاء نموذج Excel")
		}
		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر إنشاء نموذج Excel")
		}

		return sendAttachment(c, "نموذج_المنتجات.xlsx",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}
