package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-ingest/internal/config"
	"github.com/vfg2006/sales-performance-ingest/internal/domain"
	"github.com/vfg2006/sales-performance-ingest/internal/period"
	"github.com/vfg2006/sales-performance-ingest/internal/usecases/ingesting/mocks"
	"go.uber.org/mock/gomock"
)

type dirs struct {
	inbox, outbox, rejected string
}

func newTestDirs(t *testing.T) dirs {
	root := t.TempDir()
	d := dirs{
		inbox:    filepath.Join(root, "inbox"),
		outbox:   filepath.Join(root, "outbox"),
		rejected: filepath.Join(root, "rejected"),
	}
	require.NoError(t, os.MkdirAll(d.inbox, 0o755))
	return d
}

func newTestSyncService(d dirs, ingester *mocks.MockIngester, maxSizeMB int) *InboxSyncService {
	return NewInboxSyncService(ingester, &config.Config{
		InboxSync: config.InboxSync{
			InboxDir:          d.inbox,
			OutboxDir:         d.outbox,
			RejectedDir:       d.rejected,
			CronSchedule:      "*/5 * * * *",
			Enabled:           true,
			MaxConcurrentJobs: 2,
			MaxFileSizeMB:     maxSizeMB,
		},
	})
}

// fakeIngest devolve sucesso para nomes com data e falha para os demais
func fakeIngest(_ context.Context, upload domain.Upload) *domain.IngestionResult {
	p, err := period.Extract(upload.Name)
	if err != nil {
		return &domain.IngestionResult{Success: false, RunID: upload.Name, Error: err.Error()}
	}
	return &domain.IngestionResult{Success: true, RunID: upload.Name, ReportingPeriod: &p}
}

func writeInbox(t *testing.T, d dirs, names ...string) {
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(d.inbox, n), []byte("data"), 0o600))
	}
}

func TestInboxSyncService_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	ingester := mocks.NewMockIngester(ctrl)
	d := newTestDirs(t)

	writeInbox(t, d, "2024.06.15 B.xlsx", "2024.06.01 A.xlsx", "2024.05.01 C.xlsx", "bad.xlsx", ".hidden")

	ingester.EXPECT().Ingest(gomock.Any(), gomock.Any()).DoAndReturn(fakeIngest).Times(4)

	svc := newTestSyncService(d, ingester, 20)
	summary, err := svc.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"2024.05.01 C.xlsx", "2024.06.01 A.xlsx", "2024.06.15 B.xlsx"}, summary.Processed)
	assert.Equal(t, []string{"bad.xlsx"}, summary.Rejected)
	assert.Equal(t, map[string]int{"2024-06": 2, "2024-05": 1}, summary.Periods)

	// o arquivo mais recente do período é o último gravado
	var june domain.IngestionResult
	data, err := os.ReadFile(filepath.Join(d.outbox, "2024-06.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &june))
	assert.Equal(t, "2024.06.15 B.xlsx", june.RunID)
	assert.FileExists(t, filepath.Join(d.outbox, "2024-05.json"))

	for _, n := range summary.Processed {
		assert.FileExists(t, filepath.Join(d.outbox, processedDirName, n))
		assert.NoFileExists(t, filepath.Join(d.inbox, n))
	}

	assert.FileExists(t, filepath.Join(d.rejected, "bad.xlsx"))
	assert.FileExists(t, filepath.Join(d.rejected, "bad.xlsx"+sidecarSuffix))
	assert.FileExists(t, filepath.Join(d.inbox, ".hidden"))
}

func TestInboxSyncService_RejectsLargeFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	ingester := mocks.NewMockIngester(ctrl)
	d := newTestDirs(t)

	big := make([]byte, 2<<20)
	require.NoError(t, os.WriteFile(filepath.Join(d.inbox, "2024.06.01 Big.xlsx"), big, 0o600))

	svc := newTestSyncService(d, ingester, 1)
	summary, err := svc.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Empty(t, summary.Processed)
	assert.Equal(t, []string{"2024.06.01 Big.xlsx"}, summary.Rejected)

	var rejected domain.IngestionResult
	data, err := os.ReadFile(filepath.Join(d.rejected, "2024.06.01 Big.xlsx"+sidecarSuffix))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &rejected))
	assert.False(t, rejected.Success)
	assert.Contains(t, rejected.Error, "maximum size")
}

func TestInboxSyncService_MissingInbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDirs(t)
	d.inbox = filepath.Join(d.inbox, "missing")

	_, err := newTestSyncService(d, mocks.NewMockIngester(ctrl), 20).RunOnce(context.Background())
	assert.Error(t, err)
}

func TestInboxSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	ingester := mocks.NewMockIngester(ctrl)
	d := newTestDirs(t)
	writeInbox(t, d, "2024.06.01 A.xlsx")

	ingester.EXPECT().Ingest(gomock.Any(), gomock.Any()).DoAndReturn(fakeIngest).Times(1)

	svc := newTestSyncService(d, ingester, 20)
	svc.TriggerManualSync()

	assert.Eventually(t, func() bool {
		status := svc.GetStatus()
		return status["last_sync_processed"] == 1 && status["sync_running"] == false
	}, 5*time.Second, 10*time.Millisecond)

	status := svc.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "*/5 * * * *", status["sync_cron"])
}

func TestInboxSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDirs(t)

	svc := newTestSyncService(d, mocks.NewMockIngester(ctrl), 20)
	svc.config.SyncEnabled = false

	require.NoError(t, svc.Start(context.Background()))
	assert.NoDirExists(t, d.outbox)
}
