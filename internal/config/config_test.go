package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_FromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("INBOX_DIR", "/srv/inbox")
	t.Setenv("INGEST_REPORT_COERCIONS", "true")
	t.Setenv("INBOX_SYNC_MAX_CONCURRENT_JOBS", "0")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "/srv/inbox", cfg.InboxSync.InboxDir)
	assert.True(t, cfg.Ingest.ReportCoercions)
	assert.Equal(t, 1, cfg.InboxSync.MaxConcurrentJobs)
	assert.Equal(t, "./data/outbox", cfg.InboxSync.OutboxDir)
	assert.Equal(t, 20, cfg.InboxSync.MaxFileSizeMB)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
