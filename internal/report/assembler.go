package report

import (
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/classifier"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/enrich"
	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/huggy"
)

// Assemble merges chat metadata, enrichment output and the classification
// verdict into one row. An absent customer yields empty identity fields;
// verdict fields pass through verbatim, with keywords normalized to their
// comma-joined display form.
func Assemble(chat huggy.Chat, enriched enrich.Result, verdict *classifier.Result) Row {
	row := Row{
		ChatID:     chat.ID.String(),
		CreatedAt:  chat.CreatedAt,
		AttendedAt: chat.AttendedAt,
		ClosedAt:   chat.ClosedAt,
		Agent:      enriched.Agent,
		Keywords:   verdict.Keywords.String(),
		Resolved:   verdict.Resolved,
		Sentiment:  verdict.Sentiment,
		Analysis:   verdict.Analysis,
	}

	if c := enriched.Customer; c != nil {
		row.ClientID = c.ID.String()
		row.ClientName = c.Name
		row.Email = c.Email
		row.PhoneNumber = c.Mobile
		if row.PhoneNumber == "" {
			row.PhoneNumber = c.Phone
		}
		row.CNPJ = c.Field("cnpj_customer")
		row.CertificateType = c.Field("certificado_customer")
		row.Issuer = c.Field("emissor_customer")
	}

	return row
}
