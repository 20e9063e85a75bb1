// Package export writes invoice listings as spreadsheets.
package export

import (
	"fmt"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Boletos"

var invoiceHeaders = []string{
	"Número", "Mês referência", "Origem", "Cliente", "CPF/CNPJ",
	"Descrição", "Valor", "Vencimento", "Situação", "Centro de custo", "Linha digitável",
}

// XLSXExporter renders invoices of a month into an .xlsx workbook.
type XLSXExporter struct{}

var _ interfaces.IInvoiceExporter = (*XLSXExporter)(nil)

func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

func (e *XLSXExporter) ExportInvoices(w io.Writer, month string, invoices []entities.Invoice) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}

	for i, h := range invoiceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("export: header %s: %w", h, err)
		}
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return fmt.Errorf("export: money style: %w", err)
	}

	for i, inv := range invoices {
		r := i + 2
		barcode := ""
		if inv.Registration != nil {
			barcode = inv.Registration.Barcode
		}
		amount, _ := inv.Amount.Round(2).Float64()
		values := []interface{}{
			inv.Number,
			inv.ReferenceMonth,
			string(inv.Origin),
			inv.Client.Name,
			inv.Client.Document,
			inv.Description,
			amount,
			inv.DueDate.Format("02/01/2006"),
			string(inv.Status),
			inv.CostCenterID,
			barcode,
		}
		start, _ := excelize.CoordinatesToCellName(1, r)
		if err := f.SetSheetRow(sheetName, start, &values); err != nil {
			return fmt.Errorf("export: row %d: %w", r, err)
		}
		valueCell, _ := excelize.CoordinatesToCellName(7, r)
		if err := f.SetCellStyle(sheetName, valueCell, valueCell, moneyStyle); err != nil {
			return fmt.Errorf("export: style row %d: %w", r, err)
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{Title: "Boletos " + month}); err != nil {
		return fmt.Errorf("export: properties: %w", err)
	}
	return f.Write(w)
}
