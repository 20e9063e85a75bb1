package response

import (
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase"
)

type ApprovalResponse struct {
	Quote    entities.Quote     `json:"orcamento"`
	Sale     entities.Sale      `json:"venda"`
	Contract *entities.Contract `json:"contrato,omitempty"`
}

func FromApproval(r usecase.ApprovalResult) ApprovalResponse {
	return ApprovalResponse{Quote: r.Quote, Sale: r.Sale, Contract: r.Contract}
}

type QuoteEmailResponse struct {
	MessageID  string         `json:"messageId"`
	ArchiveURL string         `json:"arquivoUrl,omitempty"`
	Quote      entities.Quote `json:"orcamento"`
}

func FromEmailResult(r usecase.EmailResult) QuoteEmailResponse {
	return QuoteEmailResponse{MessageID: r.MessageID, ArchiveURL: r.ArchiveURL, Quote: r.Quote}
}
