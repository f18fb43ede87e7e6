package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/blessing-poultries/backend/internal/application/usecase/report"
	"github.com/blessing-poultries/backend/internal/domain/valueobject"
)

// PDFExporter renders a ReportData into a paginated A4 document.
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Filename returns the attachment filename for a PDF export.
func (e *PDFExporter) Filename(data *report.ReportData) string {
	return fmt.Sprintf("Blessing-Poultries-Comprehensive-Report-%s-%s.pdf",
		data.Summary.Period, data.GeneratedAt.Format(fileDateLayout))
}

// ContentType returns the MIME type of the rendered document.
func (e *PDFExporter) ContentType() string {
	return "application/pdf"
}

// Render produces the full document in memory.
func (e *PDFExporter) Render(data *report.ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	e.writeHeader(pdf, data)
	e.writeSummaryBlock(pdf, data)
	if data.HasBudget() {
		e.writeBudgetBlock(pdf, data)
	}
	e.writeRecommendations(pdf, data)
	e.writeTierBlock(pdf, "Expense Breakdown", data.ExpenseTiers)
	e.writeTierBlock(pdf, "Income Breakdown", data.IncomeTiers)
	e.writeExpenseTable(pdf, data)
	e.writeIncomeTable(pdf, data)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, exportFailed(err)
	}

	return buf.Bytes(), nil
}

func (e *PDFExporter) writeHeader(pdf *gofpdf.Fpdf, data *report.ReportData) {
	pdf.SetFillColor(22, 101, 52)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 14, "Blessing Poultries", "", 1, "L", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Ln(2)
	pdf.CellFormat(0, 6, fmt.Sprintf("Comprehensive Financial Report - %s", data.Summary.Period), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on %s", data.GeneratedAt.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (e *PDFExporter) writeSummaryBlock(pdf *gofpdf.Fpdf, data *report.ReportData) {
	summary := data.Summary
	e.sectionTitle(pdf, "Financial Summary")

	rows := [][2]string{
		{"Total Expenses", money(summary.TotalExpenses)},
		{"Total Income", money(summary.TotalIncome)},
		{"Profit", money(summary.Profit)},
		{"Profit Margin", fmt.Sprintf("%.2f%%", summary.ProfitMargin)},
		{"Expense Records", fmt.Sprintf("%d", summary.ExpenseCount)},
		{"Income Records", fmt.Sprintf("%d", summary.IncomeCount)},
		{"Pending Records", fmt.Sprintf("%d", summary.PendingCount)},
	}
	e.keyValueRows(pdf, rows)
	pdf.Ln(4)
}

func (e *PDFExporter) writeBudgetBlock(pdf *gofpdf.Fpdf, data *report.ReportData) {
	status := data.Budget
	e.sectionTitle(pdf, "Budget Analysis")

	rows := [][2]string{
		{"Monthly Budget", money(status.Budget.BudgetAmount)},
		{"Spent", money(status.Spent)},
		{"Remaining", money(status.Remaining)},
		{"Usage", fmt.Sprintf("%.1f%%", status.Percentage)},
		{"Classification", data.BudgetClassification},
	}
	if status.Overspent.IsPositive() {
		rows = append(rows, [2]string{"Overspent", money(status.Overspent)})
	} else {
		rows = append(rows, [2]string{"Savings", money(status.Savings)})
	}
	e.keyValueRows(pdf, rows)
	pdf.Ln(4)
}

func (e *PDFExporter) writeRecommendations(pdf *gofpdf.Fpdf, data *report.ReportData) {
	if len(data.Recommendations) == 0 {
		return
	}

	e.sectionTitle(pdf, "Strategic Recommendations")
	pdf.SetFont("Helvetica", "", 9)
	for i, rec := range data.Recommendations {
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, rec), "", "L", false)
		pdf.Ln(1)
	}
	pdf.Ln(3)
}

func (e *PDFExporter) writeTierBlock(pdf *gofpdf.Fpdf, title string, tiers []report.TieredItem) {
	if len(tiers) == 0 {
		return
	}

	e.sectionTitle(pdf, title)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(70, 6, "Name", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 6, "Amount", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 6, "Share", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 6, "Tier", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range tiers {
		pdf.CellFormat(70, 6, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, money(item.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f%%", item.Share), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, item.Tier, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (e *PDFExporter) writeExpenseTable(pdf *gofpdf.Fpdf, data *report.ReportData) {
	if len(data.Summary.Expenses) == 0 {
		return
	}

	e.sectionTitle(pdf, "Itemized Expenses")
	e.recordTableHeader(pdf, "Category")

	pdf.SetFont("Helvetica", "", 8)
	for _, expense := range data.Summary.Expenses {
		pdf.CellFormat(22, 6, expense.Date.Format(recordDateLayout), "1", 0, "L", false, 0, "")
		pdf.CellFormat(68, 6, truncate(expense.Description, 45), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, truncate(expense.Category, 22), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, money(expense.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, string(expense.Status), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (e *PDFExporter) writeIncomeTable(pdf *gofpdf.Fpdf, data *report.ReportData) {
	if len(data.Summary.Income) == 0 {
		return
	}

	e.sectionTitle(pdf, "Itemized Income")
	e.recordTableHeader(pdf, "Source")

	pdf.SetFont("Helvetica", "", 8)
	for _, income := range data.Summary.Income {
		pdf.CellFormat(22, 6, income.Date.Format(recordDateLayout), "1", 0, "L", false, 0, "")
		pdf.CellFormat(68, 6, truncate(income.Description, 45), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, truncate(income.Source, 22), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, money(income.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, string(income.Status), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (e *PDFExporter) recordTableHeader(pdf *gofpdf.Fpdf, groupColumn string) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(22, 6, "Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(68, 6, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 6, groupColumn, "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 6, "Amount", "1", 0, "R", true, 0, "")
	pdf.CellFormat(20, 6, "Status", "1", 1, "L", true, 0, "")
}

func (e *PDFExporter) keyValueRows(pdf *gofpdf.Fpdf, rows [][2]string) {
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		pdf.CellFormat(70, 6, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 6, row[1], "1", 1, "R", false, 0, "")
	}
}

func (e *PDFExporter) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(22, 101, 52)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(1)
}

// money formats an amount with the NGN prefix. The naira sign is not part of
// the core PDF fonts, so the ISO code is used instead.
func money(amount decimal.Decimal) string {
	return valueobject.FormatNairaCode(amount)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
