package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-ingest/internal/config"
	"github.com/vfg2006/sales-performance-ingest/internal/domain"
	"github.com/vfg2006/sales-performance-ingest/internal/period"
	"github.com/vfg2006/sales-performance-ingest/internal/usecases/ingesting"
	"github.com/vfg2006/sales-performance-ingest/pkg/ingestErrors"
	"github.com/vfg2006/sales-performance-ingest/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrFileTooLarge = errors.New("file exceeds maximum size")

const (
	processedDirName = "processed"
	sidecarSuffix    = ".error.json"
)

// InboxSyncConfig representa a configuração da importação da pasta de entrada
type InboxSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	InboxDir          string
	OutboxDir         string
	RejectedDir       string
	MaxFileSizeBytes  int64
}

// SyncSummary resume uma execução da importação
type SyncSummary struct {
	Processed []string       `json:"processed"`
	Rejected  []string       `json:"rejected"`
	Periods   map[string]int `json:"periods"` // Arquivos gravados por chave de período
}

// InboxSyncService importa os arquivos da pasta de entrada e grava um documento por período
type InboxSyncService struct {
	scheduler           *gocron.Scheduler
	config              InboxSyncConfig
	ingester            ingesting.Ingester
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         SyncSummary
}

// NewInboxSyncService cria uma nova instância do serviço de importação
func NewInboxSyncService(ingester ingesting.Ingester, appConfig *config.Config) *InboxSyncService {
	syncConfig := InboxSyncConfig{
		CronSchedule:      appConfig.InboxSync.CronSchedule,
		MaxConcurrentJobs: appConfig.InboxSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.InboxSync.Enabled,
		InboxDir:          appConfig.InboxSync.InboxDir,
		OutboxDir:         appConfig.InboxSync.OutboxDir,
		RejectedDir:       appConfig.InboxSync.RejectedDir,
		MaxFileSizeBytes:  int64(appConfig.InboxSync.MaxFileSizeMB) << 20,
	}
	if syncConfig.MaxConcurrentJobs < 1 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"sync_cron":           syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
		"inbox_dir":           syncConfig.InboxDir,
	}).Info("Configuração da importação de planilhas carregada")

	return &InboxSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		ingester:  ingester,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *InboxSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Importação de planilhas desabilitada por configuração")
		return nil
	}

	for _, dir := range []string{s.config.InboxDir, s.config.OutboxDir, s.config.RejectedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("erro ao criar diretório %s: %w", dir, err)
		}
	}

	s.baseCtx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de importação de planilhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncInbox()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar importação de planilhas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de importação de planilhas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *InboxSyncService) syncInbox() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Importação de planilhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	summary, err := s.RunOnce(s.baseCtx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao importar planilhas")
		return
	}

	s.syncMutex.Lock()
	s.lastSummary = summary
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// RunOnce importa todos os arquivos presentes na pasta de entrada.
// Arquivos do mesmo período são processados em sequência, do mais antigo para o mais
// recente, para que o último gravado seja o mais novo; períodos distintos rodam em paralelo.
func (s *InboxSyncService) RunOnce(ctx context.Context) (SyncSummary, error) {
	startTime := time.Now()
	summary := SyncSummary{Periods: map[string]int{}}

	groups, err := s.listInbox()
	if err != nil {
		return summary, err
	}

	if len(groups) == 0 {
		logrus.Debug("Nenhum arquivo na pasta de entrada")
		return summary, nil
	}

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, group := range groups {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(files []string) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			for _, path := range files {
				result := s.processFile(ctx, path)

				mu.Lock()
				if result != nil && result.Success {
					summary.Processed = append(summary.Processed, filepath.Base(path))
					summary.Periods[result.ReportingPeriod.Key]++
				} else {
					summary.Rejected = append(summary.Rejected, filepath.Base(path))
				}
				mu.Unlock()
			}
		}(group)
	}

	// Aguardar todos os workers terminarem
	wg.Wait()

	sort.Strings(summary.Processed)
	sort.Strings(summary.Rejected)

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"processed": len(summary.Processed),
		"rejected":  len(summary.Rejected),
		"periods":   len(summary.Periods),
	}).Info("Importação de planilhas concluída")

	return summary, nil
}

// listInbox agrupa os arquivos por chave de período; arquivos sem data ficam sozinhos
func (s *InboxSyncService) listInbox() ([][]string, error) {
	entries, err := os.ReadDir(s.config.InboxDir)
	if err != nil {
		return nil, errors.Wrapf(err, "read inbox %s", s.config.InboxDir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || strings.HasPrefix(e.Name(), "~$") {
			continue
		}
		names = append(names, e.Name())
	}

	// SortFilenames devolve do mais recente para o mais antigo
	sorted := period.SortFilenames(names)

	var order []string
	byKey := map[string][]string{}
	for i := len(sorted) - 1; i >= 0; i-- {
		name := sorted[i]
		key := "file:" + name
		if p, err := period.Extract(name); err == nil {
			key = p.Key
		}

		if _, ok := byKey[key]; !ok {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], filepath.Join(s.config.InboxDir, name))
	}

	groups := make([][]string, 0, len(order))
	for _, key := range order {
		groups = append(groups, byKey[key])
	}
	return groups, nil
}

// processFile ingere um arquivo e move o original para processed/ ou para a pasta de rejeitados
func (s *InboxSyncService) processFile(ctx context.Context, path string) *domain.IngestionResult {
	ctx, correlationID := log.WithCorrelationID(ctx)
	name := filepath.Base(path)
	logger := log.ForContext(ctx).WithField("file", name)

	result, err := s.ingestFile(ctx, path)
	if err != nil {
		logger.WithError(err).Error("Erro ao ler arquivo da pasta de entrada")
		result = &domain.IngestionResult{
			Success: false,
			Error:   err.Error(),
			Detail:  ingestErrors.FromError(err, map[string]any{"file": name, "correlation_id": correlationID}),
		}
	}

	if result.Success {
		if err := s.writeOutbox(result); err != nil {
			logger.WithError(err).Error("Erro ao gravar resultado da importação")
			result = &domain.IngestionResult{
				Success: false,
				RunID:   result.RunID,
				Error:   err.Error(),
				Detail:  ingestErrors.FromError(err, map[string]any{"file": name}),
			}
		} else {
			s.moveFile(logger, path, filepath.Join(s.config.OutboxDir, processedDirName))
			logger.WithFields(log.Fields{
				"period": result.ReportingPeriod.Key,
				"run_id": result.RunID,
			}).Info("Arquivo importado")
			return result
		}
	}

	if err := writeJSONFile(filepath.Join(s.config.RejectedDir, name+sidecarSuffix), result); err != nil {
		logger.WithError(err).Error("Erro ao gravar detalhes da rejeição")
	}
	s.moveFile(logger, path, s.config.RejectedDir)

	logger.WithFields(log.Fields{"run_id": result.RunID}).Warn("Arquivo rejeitado: ", result.Error)
	return result
}

func (s *InboxSyncService) ingestFile(ctx context.Context, path string) (*domain.IngestionResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if s.config.MaxFileSizeBytes > 0 && info.Size() > s.config.MaxFileSizeBytes {
		return nil, &ingesting.IngestionError{
			Err:      ErrFileTooLarge,
			Code:     ingestErrors.ErrUnreadableBinary,
			FileName: info.Name(),
			Details:  fmt.Sprintf("%d bytes", info.Size()),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return s.ingester.Ingest(ctx, domain.Upload{Name: info.Name(), Data: data}), nil
}

// writeOutbox grava o resultado em <outbox>/<YYYY-MM>.json, substituindo a versão anterior do período
func (s *InboxSyncService) writeOutbox(result *domain.IngestionResult) error {
	if result.ReportingPeriod == nil {
		return errors.New("result without reporting period")
	}
	return writeJSONFile(filepath.Join(s.config.OutboxDir, result.ReportingPeriod.Key+".json"), result)
}

func (s *InboxSyncService) moveFile(logger log.Logger, path, dir string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.WithError(err).Error("Erro ao criar diretório de destino")
		return
	}

	if err := os.Rename(path, filepath.Join(dir, filepath.Base(path))); err != nil {
		logger.WithError(err).Error("Erro ao mover arquivo")
	}
}

// writeJSONFile grava em um arquivo temporário e renomeia, para nunca deixar um JSON pela metade
func writeJSONFile(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "encode %s", filepath.Base(path))
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// TriggerManualSync inicia manualmente uma importação
func (s *InboxSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Importação de planilhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando importação manual de planilhas")
	go s.syncInbox()
}

// GetStatus retorna o status atual da importação
func (s *InboxSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_processed":    len(s.lastSummary.Processed),
		"last_sync_rejected":     len(s.lastSummary.Rejected),
	}
}
