package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestionResult_MarshalJSON(t *testing.T) {
	t.Run("sucesso sem registros mantém as listas", func(t *testing.T) {
		data, err := json.Marshal(&IngestionResult{
			Success:         true,
			GrandTotals:     &GrandTotals{},
			ReportingPeriod: &ReportingPeriod{Year: 2024, Month: 6, Day: 1, Key: "2024-06", Label: "06/2024"},
		})
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, []any{}, out["records"])
		assert.Equal(t, []any{}, out["teamLeadAggregates"])
		assert.Equal(t, []any{}, out["diagnostics"])
		assert.NotContains(t, out, "error")
	})

	t.Run("falha leva apenas o erro", func(t *testing.T) {
		data, err := json.Marshal(IngestionResult{Success: false, RunID: "abc123", Error: "boom", Detail: map[string]string{"code": "ING_001"}})
		require.NoError(t, err)

		assert.JSONEq(t, `{"success":false,"runId":"abc123","error":"boom","detail":{"code":"ING_001"}}`, string(data))
	})

	t.Run("ida e volta", func(t *testing.T) {
		in := IngestionResult{Success: true, RunID: "x", Records: []SalespersonRecord{{Nome: "Rossi", TeamLead: NoTeamLead}}}
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var back IngestionResult
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, "Rossi", back.Records[0].Nome)
		assert.Empty(t, back.Diagnostics)
	})
}
