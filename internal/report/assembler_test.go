package report

import (
	"testing"

	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/classifier"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/enrich"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/huggy"
)

func TestAssemble_FullRow(t *testing.T) {
	chat := huggy.Chat{
		ID:         "c1",
		CreatedAt:  "2024-03-08 10:00:00",
		AttendedAt: "2024-03-08 10:05:00",
		ClosedAt:   "2024-03-08 10:30:00",
	}
	enriched := enrich.Result{
		Customer: &huggy.Customer{
			ID:     "7",
			Name:   "Maria",
			Email:  "maria@example.com",
			Mobile: "+5511999999999",
			Phone:  "+551133333333",
			CustomFields: map[string]any{
				"cnpj_customer":        "12.345.678/0001-00",
				"certificado_customer": "A1",
				"emissor_customer":     "Serasa",
			},
		},
		Agent: "agentX",
	}
	verdict := &classifier.Result{
		Resolved:  "sim",
		Sentiment: "positivo",
		Analysis:  "cliente confirmou resolução",
		Keywords:  classifier.StringList{"certificado"},
	}

	row := Assemble(chat, enriched, verdict)

	if row.ChatID != "c1" || row.CreatedAt != "2024-03-08 10:00:00" {
		t.Errorf("chat metadata not carried over: %+v", row)
	}
	if row.ClientID != "7" || row.ClientName != "Maria" || row.Email != "maria@example.com" {
		t.Errorf("customer identity not carried over: %+v", row)
	}
	if row.PhoneNumber != "+5511999999999" {
		t.Errorf("expected mobile preferred over phone, got %q", row.PhoneNumber)
	}
	if row.CNPJ != "12.345.678/0001-00" || row.CertificateType != "A1" || row.Issuer != "Serasa" {
		t.Errorf("custom fields not carried over: %+v", row)
	}
	if row.Agent != "agentX" || row.Resolved != "sim" || row.Sentiment != "positivo" {
		t.Errorf("verdict not carried over: %+v", row)
	}
	if row.Keywords != "certificado" {
		t.Errorf("expected keywords certificado, got %q", row.Keywords)
	}
}

func TestAssemble_PhoneFallback(t *testing.T) {
	row := Assemble(huggy.Chat{ID: "c1"}, enrich.Result{
		Customer: &huggy.Customer{ID: "7", Phone: "+551133333333"},
		Agent:    "agentX",
	}, &classifier.Result{Resolved: "sim", Sentiment: "neutro"})

	if row.PhoneNumber != "+551133333333" {
		t.Errorf("expected fallback to phone, got %q", row.PhoneNumber)
	}
}

func TestAssemble_AbsentCustomerYieldsEmptyFields(t *testing.T) {
	row := Assemble(huggy.Chat{ID: "c1"}, enrich.Result{Agent: "Não identificado"},
		&classifier.Result{Resolved: "indefinido", Sentiment: "neutro"})

	for name, got := range map[string]string{
		"ClientID":        row.ClientID,
		"ClientName":      row.ClientName,
		"Email":           row.Email,
		"PhoneNumber":     row.PhoneNumber,
		"CNPJ":            row.CNPJ,
		"CertificateType": row.CertificateType,
		"Issuer":          row.Issuer,
	} {
		if got != "" {
			t.Errorf("%s: expected empty, got %q", name, got)
		}
	}
	if row.Agent != "Não identificado" {
		t.Errorf("expected sentinel agent, got %q", row.Agent)
	}
}

func TestAssemble_KeywordShapesNormalizeIdentically(t *testing.T) {
	chat := huggy.Chat{ID: "c1"}
	enriched := enrich.Result{Agent: "agentX"}

	fromList := Assemble(chat, enriched, &classifier.Result{
		Resolved: "sim", Sentiment: "positivo",
		Keywords: classifier.StringList{"timeout", "nota fiscal"},
	})
	fromScalar := Assemble(chat, enriched, &classifier.Result{
		Resolved: "sim", Sentiment: "positivo",
		Keywords: classifier.StringList{"timeout, nota fiscal"},
	})

	if fromList.Keywords != fromScalar.Keywords {
		t.Errorf("shapes diverge: list %q vs scalar %q", fromList.Keywords, fromScalar.Keywords)
	}
	if fromList.Keywords != "timeout, nota fiscal" {
		t.Errorf("unexpected display form %q", fromList.Keywords)
	}
}
