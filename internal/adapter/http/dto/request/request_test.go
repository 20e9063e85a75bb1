package request

import (
	"errors"
	"gestao_comercial/internal/domain/entities"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func TestQuoteRequest_ToInput(t *testing.T) {
	r := QuoteRequest{
		ClientID: "cli-1",
		Items: []QuoteItemRequest{
			{Type: "produto", Description: "Bomba", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("150.25")},
		},
		Payment:    PaymentRequest{Method: "boleto", DueDate: "2026-01-10"},
		ValidUntil: "2026-02-01",
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Payment.Method != entities.PaymentBoleto {
		t.Fatalf("expected boleto, got %q", in.Payment.Method)
	}
	if in.Payment.DueDate == nil || in.Payment.DueDate.Format(dateLayout) != "2026-01-10" {
		t.Fatalf("unexpected due date: %v", in.Payment.DueDate)
	}
	if in.ValidUntil == nil || in.ValidUntil.Day() != 1 {
		t.Fatalf("unexpected validity: %v", in.ValidUntil)
	}
	if len(in.Items) != 1 || in.Items[0].Type != entities.ItemTypeProduto || !in.Items[0].Total().Equal(decimal.RequireFromString("300.50")) {
		t.Fatalf("unexpected items: %+v", in.Items)
	}

	r.Payment.DueDate = "10/01/2026"
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestContractRequest_ToInput(t *testing.T) {
	in, err := ContractRequest{ClientID: "cli-1", BillingDay: 10, MonthlyValue: decimal.NewFromInt(300)}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.StartDate != nil {
		t.Fatalf("expected no start date, got %v", in.StartDate)
	}

	if _, err := (ContractRequest{StartDate: "2026-13-01"}).ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestGenerateInvoicesRequest_ToItemsKeepsOrder(t *testing.T) {
	r := GenerateInvoicesRequest{Month: "2026-01", Items: []GenerationItemRequest{
		{Origin: "venda", ID: "s-1"},
		{Origin: "contrato", ID: "c-1"},
	}}
	items := r.ToItems()
	if len(items) != 2 || items[0].ID != "s-1" || items[0].Origin != entities.InvoiceOriginSale || items[1].Origin != entities.InvoiceOriginContract {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestAddressRequest_ToEntity(t *testing.T) {
	a := AddressRequest{City: " Campinas ", State: "sp"}.ToEntity()
	if a.City != "Campinas" || a.State != "SP" {
		t.Fatalf("unexpected address: %+v", a)
	}
}

func TestMonthValidator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		t.Fatalf("register: %v", err)
	}

	cases := []struct {
		body string
		ok   bool
	}{
		{`{"mes":"2026-01","itens":[{"origem":"contrato","id":"c-1"}]}`, true},
		{`{"mes":"2026-13","itens":[{"origem":"contrato","id":"c-1"}]}`, false},
		{`{"mes":"01/2026","itens":[{"origem":"contrato","id":"c-1"}]}`, false},
		{`{"mes":"2026-01","itens":[]}`, false},
		{`{"mes":"2026-01","itens":[{"origem":"avulso","id":"c-1"}]}`, false},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
		c.Request.Header.Set("Content-Type", "application/json")

		var r GenerateInvoicesRequest
		err := c.ShouldBindJSON(&r)
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.body, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%s: expected validation error", tc.body)
		}
	}
}
