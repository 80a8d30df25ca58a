package ingesting

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/vfg2006/sales-performance-ingest/internal/columns"
	"github.com/vfg2006/sales-performance-ingest/internal/domain"
	"github.com/vfg2006/sales-performance-ingest/internal/period"
	"github.com/vfg2006/sales-performance-ingest/internal/workbook"
	"github.com/vfg2006/sales-performance-ingest/pkg/ingestErrors"
	"github.com/vfg2006/sales-performance-ingest/pkg/log"
	"github.com/vfg2006/sales-performance-ingest/pkg/utils"
)

// State são as etapas da ingestão de um arquivo
type State string

const (
	StateStart         State = "START"
	StateHeaderLocated State = "HEADER_LOCATED"
	StateRowScan       State = "ROW_SCAN"
	StateAggregating   State = "AGGREGATING"
	StateDone          State = "DONE"
	StateFailed        State = "FAILED"
)

var _ Ingester = (*Service)(nil)

// Service implementa Ingester
type Service struct {
	opener          WorkbookOpener
	columnMap       columns.ColumnMap
	reportCoercions bool
	generateID      func() (string, error)
}

type Option func(*Service)

// WithCoercionReport publica um diagnóstico info para cada valor zerado na normalização
func WithCoercionReport(enabled bool) Option {
	return func(s *Service) {
		s.reportCoercions = enabled
	}
}

// NewService cria uma nova instância do serviço de ingestão
func NewService(opener WorkbookOpener, columnMap columns.ColumnMap, opts ...Option) *Service {
	s := &Service{
		opener:     opener,
		columnMap:  columnMap,
		generateID: utils.GenerateID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// run guarda o estado de uma única ingestão
type run struct {
	id     string
	upload domain.Upload
	state  State
	logger log.Logger
}

func (r *run) advance(next State) {
	r.logger.WithField("state", next).Debugf("%s -> %s", r.state, next)
	r.state = next
}

// Ingest processa um arquivo e devolve o resultado. Erros de linha são isolados;
// erros de arquivo produzem um resultado com Success=false.
func (s *Service) Ingest(ctx context.Context, upload domain.Upload) *domain.IngestionResult {
	startTime := time.Now()

	runID, err := s.generateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao gerar ID da execução")
	}

	r := &run{
		id:     runID,
		upload: upload,
		state:  StateStart,
		logger: log.ForContext(ctx).WithFields(log.Fields{"file": upload.Name, "run_id": runID}),
	}

	reportingPeriod, err := period.Extract(upload.Name)
	if err != nil {
		return s.fail(r, err)
	}

	wb, err := s.opener.Open(upload.Name, upload.Data)
	if err != nil {
		return s.fail(r, err)
	}
	if wb == nil || wb.First == nil {
		return s.fail(r, ErrEmptyWorkbook)
	}
	sheet := wb.First

	diags := NewDiagnostics(s.reportCoercions)

	headerRow, found := columns.FindHeaderRow(sheet, s.columnMap.Position(columns.FieldAgente))
	if !found {
		diags.Add(domain.Diagnostic{
			Field: DiagnosticHeader,
			Description: fmt.Sprintf("Intestazione %q non trovata nelle prime %d righe, usata la riga %d",
				columns.HeaderKeyword, columns.HeaderScanRows+1, headerRow+1),
			Severity: domain.SeverityInfo,
		})
	}
	r.advance(StateHeaderLocated)

	r.advance(StateRowScan)
	records, info := s.scanRows(r, sheet, headerRow, diags)

	r.advance(StateAggregating)
	aggregates, totals := Aggregate(records)
	SortByRevenue(records)

	info.Name = upload.Name
	info.Format = string(wb.Format)
	info.Sheet = sheet.Name()
	info.HeaderRow = headerRow + 1
	info.HeaderFallback = !found
	info.TotalColumns = sheet.Cols()

	r.advance(StateDone)

	r.logger.WithFields(log.Fields{
		"period":      reportingPeriod.Key,
		"records":     len(records),
		"team_leads":  totals.TeamLeads,
		"revenue":     utils.RoundWithTwoDecimalPlace(totals.Revenue),
		"diagnostics": diags.Len(),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Arquivo processado")

	return &domain.IngestionResult{
		Success:            true,
		RunID:              runID,
		Records:            records,
		TeamLeadAggregates: aggregates,
		GrandTotals:        &totals,
		ReportingPeriod:    &reportingPeriod,
		Diagnostics:        diags.Items(),
		FileInfo:           &info,
	}
}

// scanRows percorre as linhas após o cabeçalho até a última linha, inclusive
func (s *Service) scanRows(r *run, sheet workbook.Sheet, headerRow int, diags *Diagnostics) ([]domain.SalespersonRecord, domain.FileInfo) {
	var (
		records []domain.SalespersonRecord
		info    domain.FileInfo
	)

	for row := headerRow + 1; row <= sheet.LastRow(); row++ {
		rec, err := s.parseRowSafe(sheet, row, diags)
		if err != nil {
			info.FailedRows++
			diags.Add(domain.Diagnostic{
				Field:       DiagnosticRow,
				Description: fmt.Sprintf("Riga %d ignorata: %v", row+1, err),
				Severity:    domain.SeverityWarning,
				Row:         row + 1,
			})
			r.logger.WithFields(log.Fields{"row": row + 1}).WithError(err).Warn("Linha ignorada")
			continue
		}

		if rec == nil {
			info.SkippedRows++
			continue
		}

		records = append(records, *rec)
	}

	info.ParsedRows = len(records)
	return records, info
}

// parseRowSafe converte um panic do leitor em erro da linha
func (s *Service) parseRowSafe(sheet workbook.Sheet, row int, diags *Diagnostics) (rec *domain.SalespersonRecord, err error) {
	defer func() {
		if p := recover(); p != nil {
			rec = nil
			err = &RowError{Row: row + 1, Err: fmt.Errorf("panic: %v", p)}
			log.L.WithField("row", row+1).Debugf("stack: %s", debug.Stack())
		}
	}()

	return ParseRow(sheet, row, s.columnMap, diags)
}

func (s *Service) fail(r *run, err error) *domain.IngestionResult {
	ierr := NewIngestionError(err, r.upload.Name)
	failedIn := r.state
	r.advance(StateFailed)

	r.logger.WithFields(log.Fields{
		"code":  ierr.Code,
		"state": failedIn,
	}).WithError(err).Error("Falha ao processar arquivo")

	return &domain.IngestionResult{
		Success: false,
		RunID:   r.id,
		Error:   ierr.Error(),
		Detail: ingestErrors.FromError(ierr, map[string]any{
			"file":  r.upload.Name,
			"bytes": len(r.upload.Data),
		}),
	}
}
