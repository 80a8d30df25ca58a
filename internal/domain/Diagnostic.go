package domain

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Diagnostic é um aviso não fatal anexado ao resultado da ingestão
type Diagnostic struct {
	Field       string   `json:"field"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Row         int      `json:"row,omitempty"` // Linha da planilha (base 1), quando aplicável
}
