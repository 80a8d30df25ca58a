package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/sales-performance-ingest/internal/columns"
	"github.com/vfg2006/sales-performance-ingest/internal/config"
	"github.com/vfg2006/sales-performance-ingest/internal/scheduler"
	"github.com/vfg2006/sales-performance-ingest/internal/usecases/ingesting"
	"github.com/vfg2006/sales-performance-ingest/internal/workbook"
	"github.com/vfg2006/sales-performance-ingest/pkg/ingestErrors"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	flags := pflag.NewFlagSet("ingest", pflag.ExitOnError)
	pretty := flags.Bool("pretty", false, "imprime o JSON indentado")
	watch := flags.Bool("watch", false, "importa a pasta de entrada periodicamente até receber SIGINT/SIGTERM")
	columnMapFile := flags.String("columns", "", "arquivo TOML com substituições do mapa de colunas")
	coercions := flags.Bool("coercions", false, "publica diagnósticos para valores zerados na normalização")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "uso: ingest [flags] <arquivo>...\n       ingest --watch\n\n")
		flags.PrintDefaults()
	}
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if *columnMapFile != "" {
		cfg.Ingest.ColumnMapFile = *columnMapFile
	}
	if *coercions {
		cfg.Ingest.ReportCoercions = true
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	columnMap, err := loadColumnMap(cfg.Ingest.ColumnMapFile)
	if err != nil {
		logrus.WithError(err).Error("Mapa de colunas inválido")
		os.Exit(ingestErrors.ExitStatus(ingestErrors.ErrInvalidColumnMap))
	}
	logrus.WithField("columns", columnMap.String()).Debug("Mapa de colunas carregado")

	service := ingesting.NewService(
		workbook.NewReader(),
		columnMap,
		ingesting.WithCoercionReport(cfg.Ingest.ReportCoercions),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *watch {
		if err := runWatch(ctx, service, cfg); err != nil {
			logrus.Error(err)
			os.Exit(ingestErrors.ExitStatus(ingestErrors.ErrInternal))
		}
		return
	}

	if flags.NArg() == 0 {
		flags.Usage()
		os.Exit(2)
	}

	os.Exit(ingestFiles(ctx, service, flags.Args(), os.Stdout, *pretty))
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func loadColumnMap(path string) (columns.ColumnMap, error) {
	if path == "" {
		return columns.Default(), nil
	}
	return columns.LoadFile(path)
}

// runWatch mantém o agendador da pasta de entrada ativo até o sinal de término
func runWatch(ctx context.Context, ingester ingesting.Ingester, cfg *config.Config) error {
	cfg.InboxSync.Enabled = true
	syncService := scheduler.NewInboxSyncService(ingester, cfg)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := syncService.Start(ctx); err != nil {
		return err
	}
	logrus.Info("Agendador de importação de planilhas iniciado com sucesso")

	// Importa o que já está na pasta sem esperar o primeiro disparo do cron
	syncService.TriggerManualSync()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	logrus.WithField("status", syncService.GetStatus()).Info("Encerrando importação de planilhas")
	return nil
}
