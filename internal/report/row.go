// Package report assembles and persists the tabular output of a run.
package report

import "context"

// Row is one line of the final report. Column titles and order mirror the
// spreadsheet layout consumed by the support team.
type Row struct {
	ChatID          string `csv:"ID do Chat"`
	CreatedAt       string `csv:"Criado em"`
	AttendedAt      string `csv:"Atendido em"`
	ClosedAt        string `csv:"Finalizado em"`
	ClientID        string `csv:"ID do Cliente"`
	ClientName      string `csv:"Nome do Cliente"`
	Email           string `csv:"Email"`
	PhoneNumber     string `csv:"Telefone"`
	CNPJ            string `csv:"CNPJ"`
	CertificateType string `csv:"Certificado Digital"`
	Issuer          string `csv:"Emissor"`
	Agent           string `csv:"Atendente"`
	Keywords        string `csv:"Palavras-Chave"`
	Resolved        string `csv:"Resolvido (Sim/Não)"`
	Sentiment       string `csv:"Sentimento (Positivo/Negativo/Neutro)"`
	Analysis        string `csv:"Análise"`
}

// Sink persists a complete ordered row set. It is invoked exactly once per
// run, at flush time, with whatever rows accumulated — possibly none.
type Sink interface {
	Write(ctx context.Context, rows []Row) error
}
