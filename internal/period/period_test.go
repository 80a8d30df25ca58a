package period

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-ingest/internal/domain"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     domain.ReportingPeriod
	}{
		{
			name:     "token no início",
			filename: "2024.03.15 Report.xlsx",
			want:     domain.ReportingPeriod{Year: 2024, Month: 3, Day: 15, Key: "2024-03", Label: "03/2024"},
		},
		{
			name:     "token no meio",
			filename: "Report Rush 2023.12.01 finale.xls",
			want:     domain.ReportingPeriod{Year: 2023, Month: 12, Day: 1, Key: "2023-12", Label: "12/2023"},
		},
		{
			name:     "caminho completo",
			filename: "/inbox/2019.01/2024.06.01 Test.xlsx",
			want:     domain.ReportingPeriod{Year: 2024, Month: 6, Day: 1, Key: "2024-06", Label: "06/2024"},
		},
		{
			name:     "primeiro token inválido é ignorado",
			filename: "2024.13.01 2024.02.29.xlsx",
			want:     domain.ReportingPeriod{Year: 2024, Month: 2, Day: 29, Key: "2024-02", Label: "02/2024"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.filename)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_Invalid(t *testing.T) {
	for _, filename := range []string{
		"report.xlsx",
		"2024-03-15 report.xlsx",
		"2024.3.15 report.xlsx",
		"2024.00.10.xlsx",
		"2023.02.29.xlsx",
		"2024.04.31.xlsx",
		"",
	} {
		_, err := Extract(filename)
		assert.ErrorIs(t, err, ErrInvalidFilenameFormat, "filename %q", filename)
	}
}

func TestSortFilenames(t *testing.T) {
	got := SortFilenames([]string{
		"b senza data.xlsx",
		"2024.01.31 Report.xlsx",
		"2024.06.01 Report.xlsx",
		"a senza data.xlsx",
		"2023.12.01 Report.xlsx",
		"2024.06.15 Report.xlsx",
	})

	assert.Equal(t, []string{
		"2024.06.15 Report.xlsx",
		"2024.06.01 Report.xlsx",
		"2024.01.31 Report.xlsx",
		"2023.12.01 Report.xlsx",
		"b senza data.xlsx",
		"a senza data.xlsx",
	}, got)
}
