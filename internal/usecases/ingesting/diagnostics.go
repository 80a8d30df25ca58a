package ingesting

import (
	"fmt"

	"github.com/vfg2006/sales-performance-ingest/internal/columns"
	"github.com/vfg2006/sales-performance-ingest/internal/domain"
)

// Campos especiais dos diagnósticos que não correspondem a colunas
const (
	DiagnosticHeader = "HEADER"
	DiagnosticRow    = "ROW"
)

// Diagnostics acumula os avisos de um único arquivo
type Diagnostics struct {
	items           []domain.Diagnostic
	missing         map[columns.Field]bool
	reportCoercions bool
}

func NewDiagnostics(reportCoercions bool) *Diagnostics {
	return &Diagnostics{
		missing:         make(map[columns.Field]bool),
		reportCoercions: reportCoercions,
	}
}

func (d *Diagnostics) Add(diag domain.Diagnostic) {
	d.items = append(d.items, diag)
}

// MissingColumn registra uma única vez por arquivo o campo cuja coluna não existe
func (d *Diagnostics) MissingColumn(f columns.Field, label string) {
	if d.missing[f] {
		return
	}
	d.missing[f] = true

	d.Add(domain.Diagnostic{
		Field:       f.String(),
		Description: fmt.Sprintf("%s: colonna %s non trovata, valore impostato a 0", f.Description(), label),
		Severity:    domain.SeverityWarning,
	})
}

// Items retorna uma cópia dos diagnósticos acumulados
func (d *Diagnostics) Items() []domain.Diagnostic {
	out := make([]domain.Diagnostic, len(d.items))
	copy(out, d.items)
	return out
}

func (d *Diagnostics) Len() int {
	return len(d.items)
}
