package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog/log"
)

// BoletoPaymentMethod is the Mercado Pago method id for Bradesco boletos.
const BoletoPaymentMethod = "bolbradesco"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway registers boletos as Mercado Pago payments.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IBankSlipGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		log.Info().Str("component", "payments").Msg("mercado pago mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercado pago config: %w", err)
	}
	log.Info().Str("component", "payments").Msg("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// boletoResponse picks the boleto fields out of the provider response.
type boletoResponse struct {
	ID                 int64  `json:"id"`
	Status             string `json:"status"`
	TransactionDetails struct {
		ExternalResourceURL string `json:"external_resource_url"`
		DigitableLine       string `json:"digitable_line"`
	} `json:"transaction_details"`
	Barcode struct {
		Content string `json:"content"`
	} `json:"barcode"`
}

func (g *MercadoPagoGateway) RegisterBoleto(ctx context.Context, req interfaces.BoletoRequest) (entities.BankRegistration, error) {
	now := time.Now().UTC()
	logger := log.With().Str("component", "payments").Str("external_reference", req.ExternalReference).Logger()

	if g != nil && g.mockMode {
		id := strconv.FormatInt(now.UnixNano(), 10)
		logger.Info().Str("gateway_id", id).Msg("mock boleto registered")
		return entities.BankRegistration{
			GatewayID:    id,
			Barcode:      "23790.00000 00000.000000 00000.000000 0 00000000000000",
			TicketURL:    "https://www.mercadopago.com.br/payments/" + id + "/ticket",
			Status:       "pending",
			RegisteredAt: now,
		}, nil
	}
	if g == nil || g.client == nil {
		return entities.BankRegistration{}, ErrMercadoPagoGatewayNotConfigured
	}

	payload, err := json.Marshal(boletoPayload(req))
	if err != nil {
		return entities.BankRegistration{}, err
	}
	var mpReq payment.Request
	if err := json.Unmarshal(payload, &mpReq); err != nil {
		return entities.BankRegistration{}, fmt.Errorf("build payment request: %w", err)
	}

	logger.Info().Str("amount", req.Amount.StringFixed(2)).Msg("registering boleto")
	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		logger.Error().Err(err).Msg("mercado pago create failed")
		return entities.BankRegistration{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.BankRegistration{}, err
	}
	var br boletoResponse
	if err := json.Unmarshal(raw, &br); err != nil {
		return entities.BankRegistration{}, err
	}

	barcode := br.TransactionDetails.DigitableLine
	if barcode == "" {
		barcode = br.Barcode.Content
	}
	logger.Info().Int64("gateway_id", br.ID).Str("status", br.Status).Msg("boleto registered")

	return entities.BankRegistration{
		GatewayID:    strconv.FormatInt(br.ID, 10),
		Barcode:      barcode,
		TicketURL:    br.TransactionDetails.ExternalResourceURL,
		Status:       br.Status,
		RegisteredAt: now,
	}, nil
}

// boletoPayload builds the Mercado Pago payment body for a boleto.
func boletoPayload(req interfaces.BoletoRequest) map[string]any {
	first, last := splitName(req.PayerName)
	doc := onlyDigits(req.PayerDocument)
	docType := "CPF"
	if len(doc) == 14 {
		docType = "CNPJ"
	}

	due := time.Date(req.DueDate.Year(), req.DueDate.Month(), req.DueDate.Day(), 23, 59, 59, 0, time.UTC)

	return map[string]any{
		"transaction_amount": req.Amount.Round(2).InexactFloat64(),
		"description":        req.Description,
		"payment_method_id":  BoletoPaymentMethod,
		"external_reference": req.ExternalReference,
		"date_of_expiration": due.Format(time.RFC3339),
		"payer": map[string]any{
			"email":      req.PayerEmail,
			"first_name": first,
			"last_name":  last,
			"identification": map[string]any{
				"type":   docType,
				"number": doc,
			},
			"address": map[string]any{
				"zip_code":      onlyDigits(req.PayerAddress.ZipCode),
				"street_name":   req.PayerAddress.Street,
				"street_number": req.PayerAddress.Number,
				"neighborhood":  req.PayerAddress.Neighborhood,
				"city":          req.PayerAddress.City,
				"federal_unit":  req.PayerAddress.State,
			},
		},
	}
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], parts[0]
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
