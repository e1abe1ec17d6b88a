package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"categorizer/database"
	"categorizer/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	svc *service.CategorizerService
}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{svc: service.NewCategorizerService(database.DB)}
}

// ExportCSV 导出类别/子类别组合为 CSV
// @Summary 导出类别/子类别组合为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Success 200 {file} file "CSV 文件"
// @Failure 500 {object} Response "存储层故障"
// @Router /categorizer/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	pairs, err := h.svc.FindAllCategorySubcategoryNames()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	// 生成 CSV
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	// 写入表头
	headers := []string{"类别", "子类别"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 写入数据
	for _, pair := range pairs {
		if err := writer.Write([]string{pair.Category, pair.Subcategory}); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 设置响应头
	filename := fmt.Sprintf("categorizer_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出类别/子类别组合为 JSON
// @Summary 导出类别/子类别组合及汇总信息为 JSON
// @Tags 导出
// @Produce json
// @Success 200 {object} map[string]interface{} "导出成功"
// @Failure 500 {object} Response "存储层故障"
// @Router /categorizer/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	pairs, err := h.svc.FindAllCategorySubcategoryNames()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}
	names, err := h.svc.FindAllCategoryNames()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_categories":    len(names),
		"total_subcategories": len(pairs),
		"categories":          names,
		"pairs":               pairs,
	})
}

// ExportExcel 导出类别数据为 Excel
// @Summary 导出类别/子类别组合及各类别数量汇总为 Excel 文件
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Excel 文件"
// @Failure 500 {object} Response "存储层故障"
// @Router /categorizer/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	pairs, err := h.svc.FindAllCategorySubcategoryNames()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}
	counts, err := h.svc.FindCategoryCounts()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "分类数据"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "B", 25)

	// 写入表头
	headers := []string{"类别", "子类别"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据
	for i, pair := range pairs {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), pair.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), pair.Subcategory)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), dataStyle)
	}

	// 汇总工作表：各类别的子类别数量
	summarySheet := "数量汇总"
	f.NewSheet(summarySheet)
	f.SetColWidth(summarySheet, "A", "B", 25)
	summaryHeaders := []string{"类别", "子类别数量"}
	for i, header := range summaryHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(summarySheet, cell, header)
		f.SetCellStyle(summarySheet, cell, cell, headerStyle)
	}
	for i, count := range counts {
		row := i + 2
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), count.Category)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), count.Count)
		f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), dataStyle)
	}

	// 设置响应头
	filename := fmt.Sprintf("categorizer_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	// 写入响应
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}
