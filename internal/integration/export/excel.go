// Package export renders financial reports as downloadable documents.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/blessing-poultries/backend/internal/application/usecase/report"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
	"github.com/blessing-poultries/backend/internal/domain/valueobject"
)

const (
	recordDateLayout = "02/01/2006"
	fileDateLayout   = "2006-01-02"
)

// ExcelExporter renders a ReportData into an xlsx workbook.
type ExcelExporter struct{}

// NewExcelExporter creates a new Excel exporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Filename returns the attachment filename for an Excel export.
func (e *ExcelExporter) Filename(data *report.ReportData) string {
	return fmt.Sprintf("financial-report-%s-%s.xlsx",
		data.Summary.Period, data.GeneratedAt.Format(fileDateLayout))
}

// ContentType returns the MIME type of the rendered document.
func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render produces the full workbook in memory.
func (e *ExcelExporter) Render(data *report.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Summary"
	f.SetSheetName("Sheet1", summarySheet)

	if err := e.writeSummarySheet(f, summarySheet, data); err != nil {
		return nil, exportFailed(err)
	}

	if len(data.Summary.Expenses) > 0 {
		if err := e.writeExpenseSheet(f, data); err != nil {
			return nil, exportFailed(err)
		}
	}

	if len(data.Summary.Income) > 0 {
		if err := e.writeIncomeSheet(f, data); err != nil {
			return nil, exportFailed(err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, exportFailed(err)
	}

	return buf.Bytes(), nil
}

func (e *ExcelExporter) writeSummarySheet(f *excelize.File, sheet string, data *report.ReportData) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "Blessing Poultries Financial Report")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	summary := data.Summary
	rows := [][2]interface{}{
		{"Period", string(summary.Period)},
		{"Generated", data.GeneratedAt.Format(recordDateLayout)},
		{"Total Expenses", valueobject.FormatNairaCode(summary.TotalExpenses)},
		{"Total Income", valueobject.FormatNairaCode(summary.TotalIncome)},
		{"Profit", valueobject.FormatNairaCode(summary.Profit)},
		{"Profit Margin", fmt.Sprintf("%.2f%%", summary.ProfitMargin)},
		{"Expense Records", summary.ExpenseCount},
		{"Income Records", summary.IncomeCount},
	}

	for i, row := range rows {
		labelCell := fmt.Sprintf("A%d", i+3)
		valueCell := fmt.Sprintf("B%d", i+3)
		f.SetCellValue(sheet, labelCell, row[0])
		f.SetCellValue(sheet, valueCell, row[1])
		f.SetCellStyle(sheet, labelCell, labelCell, labelStyle)
	}

	f.SetColWidth(sheet, "A", "A", 20)
	f.SetColWidth(sheet, "B", "B", 28)
	return nil
}

func (e *ExcelExporter) writeExpenseSheet(f *excelize.File, data *report.ReportData) error {
	sheet := "Expenses"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := e.writeRecordHeaders(f, sheet, "Category"); err != nil {
		return err
	}

	for i, expense := range data.Summary.Expenses {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), expense.Date.Format(recordDateLayout))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), expense.Description)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), expense.Category)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), expense.Amount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(expense.Status))
	}

	return nil
}

func (e *ExcelExporter) writeIncomeSheet(f *excelize.File, data *report.ReportData) error {
	sheet := "Income"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := e.writeRecordHeaders(f, sheet, "Source"); err != nil {
		return err
	}

	for i, income := range data.Summary.Income {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), income.Date.Format(recordDateLayout))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), income.Description)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), income.Source)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), income.Amount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(income.Status))
	}

	return nil
}

func (e *ExcelExporter) writeRecordHeaders(f *excelize.File, sheet, groupColumn string) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#166534"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	headers := []string{"Date", "Description", groupColumn, "Amount (NGN)", "Status"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}
	f.SetCellStyle(sheet, "A1", "E1", headerStyle)

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 36)
	f.SetColWidth(sheet, "C", "C", 18)
	f.SetColWidth(sheet, "D", "E", 14)
	return nil
}

func exportFailed(err error) error {
	return domainerror.NewReportError(
		domainerror.ErrCodeExportFailed,
		"failed to render report document",
		fmt.Errorf("%w: %w", domainerror.ErrExportFailed, err),
	)
}
