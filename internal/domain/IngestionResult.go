package domain

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Upload é o arquivo recebido para ingestão, já carregado em memória
type Upload struct {
	Name string
	Data []byte
}

// FileInfo descreve o arquivo processado
type FileInfo struct {
	Name           string `json:"name"`
	Format         string `json:"format"`
	Sheet          string `json:"sheet"`
	HeaderRow      int    `json:"headerRow"` // Base 1
	HeaderFallback bool   `json:"headerFallback"`
	TotalColumns   int    `json:"totalColumns"`
	ParsedRows     int    `json:"parsedRows"`
	SkippedRows    int    `json:"skippedRows"`
	FailedRows     int    `json:"failedRows"`
}

// IngestionResult é o único artefato devolvido pela ingestão de um arquivo
type IngestionResult struct {
	Success            bool                `json:"success"`
	RunID              string              `json:"runId,omitempty"`
	Records            []SalespersonRecord `json:"records"`
	TeamLeadAggregates []TeamLeadAggregate `json:"teamLeadAggregates"`
	GrandTotals        *GrandTotals        `json:"grandTotals,omitempty"`
	ReportingPeriod    *ReportingPeriod    `json:"reportingPeriod,omitempty"`
	Diagnostics        []Diagnostic        `json:"diagnostics"`
	FileInfo           *FileInfo           `json:"fileInfo,omitempty"`

	Error  string `json:"error,omitempty"`
	Detail any    `json:"detail,omitempty"`
}

// MarshalJSON grava as listas do sucesso sempre como arrays, mesmo vazias.
// A falha leva apenas success, runId, error e detail.
func (r IngestionResult) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			RunID   string `json:"runId,omitempty"`
			Error   string `json:"error,omitempty"`
			Detail  any    `json:"detail,omitempty"`
		}{r.Success, r.RunID, r.Error, r.Detail})
	}

	type result IngestionResult
	out := result(r)
	if out.Records == nil {
		out.Records = []SalespersonRecord{}
	}
	if out.TeamLeadAggregates == nil {
		out.TeamLeadAggregates = []TeamLeadAggregate{}
	}
	if out.Diagnostics == nil {
		out.Diagnostics = []Diagnostic{}
	}
	return json.Marshal(out)
}
