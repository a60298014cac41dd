package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iwvelando/impact-dashboard/internal/config"
	"github.com/iwvelando/impact-dashboard/internal/server"
	"github.com/iwvelando/impact-dashboard/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sessionSummary struct {
	Records []struct {
		Category string          `json:"category"`
		Value    json.RawMessage `json:"value"`
	} `json:"records"`
	TotalDisplay      string `json:"totalDisplay"`
	MultiplierDisplay string `json:"multiplierDisplay"`
}

func newSession(t *testing.T) http.Handler {
	t.Helper()
	conf, err := config.LoadConfiguration("../test_config.yaml")
	require.NoError(t, err)
	require.Empty(t, conf.ValidateConfiguration())

	serverConf, err := server.LoadConfig("")
	require.NoError(t, err)
	opts := serverConf.Options()
	opts.Title = conf.Title
	opts.Subtitle = conf.Subtitle
	opts.RateLimit = 0

	return server.NewHandler(zap.NewNop(), conf.NewModel(), opts)
}

func edit(t *testing.T, handler http.Handler, index, value string) sessionSummary {
	t.Helper()
	body, err := json.Marshal(map[string]string{"value": value})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/impact/"+index, strings.NewReader(string(body)))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp sessionSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func values(s sessionSummary) []string {
	out := make([]string, len(s.Records))
	for i, r := range s.Records {
		out[i] = string(r.Value)
	}
	return out
}

// TestDashboardSession replays a user editing the dashboard inputs one after
// another and checks the chart values and summary panel after each edit.
func TestDashboardSession(t *testing.T) {
	handler := newSession(t)

	steps := []struct {
		index      string
		value      string
		values     []string
		total      string
		multiplier string
	}{
		{"0", "10", []string{"10", "2.5", "1.5"}, "14.00", "0.40"},
		{"0", "5", []string{"5", "2.5", "1.5"}, "9.00", "0.80"},
		{"1", "abc", []string{"5", "0", "1.5"}, "6.50", "0.30"},
		{"2", "3", []string{"5", "0", "3"}, "8.00", "0.60"},
		{"2", "7", []string{"5", "0", "7"}, "12.00", "1.40"},
		{"1", "", []string{"5", "0", "7"}, "12.00", "1.40"},
		{"0", "0", []string{"0", "0", "7"}, "7.00", "Infinity"},
		{"2", "0", []string{"0", "0", "0"}, "0.00", "NaN"},
		{"0", "2", []string{"2", "0", "0"}, "2.00", "0.00"},
	}

	for _, step := range steps {
		got := edit(t, handler, step.index, step.value)
		assert.Equal(t, step.values, values(got), "after setting %s=%q", step.index, step.value)
		assert.Equal(t, step.total, got.TotalDisplay, "after setting %s=%q", step.index, step.value)
		assert.Equal(t, step.multiplier, got.MultiplierDisplay, "after setting %s=%q", step.index, step.value)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/impact", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	var final sessionSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &final))
	for i, category := range []string{"Direct Impact", "Indirect Impact", "Induced Impact"} {
		assert.Equal(t, category, final.Records[i].Category)
	}
}

// TestExportMatchesCLIOutput checks the dashboard export and the summary
// command render the same CSV for the same state.
func TestExportMatchesCLIOutput(t *testing.T) {
	handler := newSession(t)
	edit(t, handler, "0", "10")

	req := httptest.NewRequest(http.MethodGet, "/api/impact/export.csv", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	conf, err := config.LoadConfiguration("../test_config.yaml")
	require.NoError(t, err)
	model := conf.NewModel()
	_, err = model.SetValue(0, "10")
	require.NoError(t, err)

	assert.Equal(t, output.CsvString(model.Summary()), rr.Body.String())
}
