package export

import (
	"bytes"
	"gestao_comercial/internal/domain/entities"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_ExportInvoices(t *testing.T) {
	invoices := []entities.Invoice{
		{
			Number:         "BOL-240300001",
			ReferenceMonth: "2024-03",
			Origin:         entities.InvoiceOriginContract,
			Client:         entities.ClientSnapshot{Name: "Cond. Solar", Document: "123"},
			Amount:         decimal.RequireFromString("1500.50"),
			DueDate:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			Status:         entities.InvoiceStatusPendente,
			Registration:   &entities.BankRegistration{Barcode: "2379"},
		},
		{
			Number:         "BOL-240300002",
			ReferenceMonth: "2024-03",
			Origin:         entities.InvoiceOriginSale,
			Client:         entities.ClientSnapshot{Name: "Ed. Mar"},
			Amount:         decimal.NewFromInt(200),
			DueDate:        time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			Status:         entities.InvoiceStatusPago,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewXLSXExporter().ExportInvoices(&buf, "2024-03", invoices))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Número", rows[0][0])
	assert.Equal(t, "BOL-240300001", rows[1][0])
	assert.Equal(t, "Cond. Solar", rows[1][3])
	assert.Equal(t, "10/03/2024", rows[1][7])
	assert.Equal(t, "2379", rows[1][10])
	assert.Equal(t, "pago", rows[2][8])
}
