package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratcore/adapters/knowledge"
	"stratcore/adapters/rng"
	"stratcore/internal"
	"stratcore/internal/config"
	"stratcore/internal/recalibration"
	"stratcore/internal/sensitivity"
	"stratcore/internal/symmetry"
	"stratcore/internal/transfer"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	log := internal.NewLogger(internal.LogLevelError)
	kb := knowledge.NewCatalogue()

	handlers := NewHandlers(
		sensitivity.NewRunner(sensitivity.DefaultConfig(), rng.NewSeededProvider(), nil, log),
		symmetry.NewEngine(kb, nil, 0.6, log),
		transfer.NewEngine(transfer.DefaultConfig(), kb, nil, log),
		recalibration.NewEngine(log),
		kb, nil, nil, log,
	)
	return NewServer(config.ServerConfig{Port: "0", GinMode: "test"}, handlers, log)
}

func doJSON(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	var env Envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestRankEV_RanksActions(t *testing.T) {
	s := testServer(t)
	body := `{
		"analysis_id": "run-1",
		"actions": [
			{"actor": "B", "action": "y", "payoff_estimate": {"value": 4, "confidence": 0.9}},
			{"actor": "A", "action": "x", "payoff_estimate": {"value": 10, "confidence": 0.5}}
		]
	}`

	w, env := doJSON(t, s, http.MethodPost, "/api/v1/ev/rank", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.OK)

	raw, err := json.Marshal(env.Response)
	require.NoError(t, err)
	var resp struct {
		Ranking []struct {
			Actor string  `json:"actor"`
			EV    float64 `json:"ev"`
		} `json:"ranking"`
		TopEV float64 `json:"top_ev"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))
	require.Len(t, resp.Ranking, 2)
	assert.Equal(t, "A", resp.Ranking[0].Actor)
	assert.InDelta(t, 5.0, resp.TopEV, 1e-9)
}

func TestRankEV_MissingActions(t *testing.T) {
	s := testServer(t)
	w, env := doJSON(t, s, http.MethodPost, "/api/v1/ev/rank", `{"analysis_id": "run-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.OK)
	assert.Contains(t, env.Message, "actions")
}

func TestSensitivity_MissingFieldsNamed(t *testing.T) {
	s := testServer(t)
	tests := []struct {
		name string
		body string
		want string
	}{
		{"no analysis id", `{"base_actions": [{"actor":"a","action":"x","payoff_estimate":{"value":1}}], "key_params": [{"name":"p"}]}`, "analysis_id"},
		{"no actions", `{"analysis_id": "run-1", "key_params": [{"name":"p"}]}`, "base_actions"},
		{"no params", `{"analysis_id": "run-1", "base_actions": [{"actor":"a","action":"x","payoff_estimate":{"value":1}}]}`, "key_params"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doJSON(t, s, http.MethodPost, "/api/v1/sensitivity/run", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, env.Message, tt.want)
		})
	}
}

func TestSensitivity_FullRun(t *testing.T) {
	s := testServer(t)
	body := `{
		"analysis_id": "run-1",
		"base_actions": [{"actor": "us", "action": "expand", "payoff_estimate": {"value": 10, "confidence": 0.8}}],
		"key_params": [{"name": "demand", "base_value": 100}],
		"seed": 7
	}`
	w, env := doJSON(t, s, http.MethodPost, "/api/v1/sensitivity/run", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.OK)
}

func TestSymmetry_MissingRunID(t *testing.T) {
	s := testServer(t)
	w, env := doJSON(t, s, http.MethodPost, "/api/v1/symmetry/discover", `{"currentScenario": {"domain": "business"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "runId")
}

func TestSymmetry_AnalysisConfigHonored(t *testing.T) {
	s := testServer(t)
	body := `{
		"runId": "run-1",
		"currentScenario": {
			"title": "Contested market entry",
			"domain": "business",
			"strategicElements": {
				"playerCount": 2,
				"informationAvailability": "limited",
				"payoffStructure": "deception asymmetry maneuver surprise"
			}
		},
		"analysisConfig": {"similarityThreshold": 0.99, "maxAnalogies": 1}
	}`
	w, env := doJSON(t, s, http.MethodPost, "/api/v1/symmetry/discover", body)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.OK)

	raw, err := json.Marshal(env.Response)
	require.NoError(t, err)
	var resp struct {
		PatternDiscovery struct {
			Analogies []json.RawMessage `json:"analogies"`
		} `json:"patternDiscovery"`
		AnalysisMetadata struct {
			SimilarityThreshold float64 `json:"similarityThreshold"`
		} `json:"analysisMetadata"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, 0.99, resp.AnalysisMetadata.SimilarityThreshold)
	assert.LessOrEqual(t, len(resp.PatternDiscovery.Analogies), 1)
}

func TestTransfer_UnknownDomainIs404(t *testing.T) {
	s := testServer(t)
	body := `{
		"runId": "run-1",
		"targetDomain": "astrology",
		"sourceStrategy": {"pattern": {"name": "Indirect Approach", "sourceDomain": "military"}}
	}`
	w, env := doJSON(t, s, http.MethodPost, "/api/v1/transfer/adapt", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.OK)
}

func TestRecalibrate_MissingStrategy(t *testing.T) {
	s := testServer(t)
	w, env := doJSON(t, s, http.MethodPost, "/api/v1/recalibrate", `{"runId": "run-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "currentStrategy")
}

func TestEngineEndpoints_RejectNonPOST(t *testing.T) {
	s := testServer(t)
	for _, path := range []string{
		"/api/v1/ev/rank",
		"/api/v1/sensitivity/run",
		"/api/v1/symmetry/discover",
		"/api/v1/transfer/adapt",
		"/api/v1/recalibrate",
	} {
		w, env := doJSON(t, s, http.MethodGet, path, "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, path)
		assert.False(t, env.OK, path)
	}
}

func TestCORSPreflight(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ev/rank", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestListDomains(t *testing.T) {
	s := testServer(t)
	w, env := doJSON(t, s, http.MethodGet, "/api/v1/knowledge/domains", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.OK)

	raw, err := json.Marshal(env.Response)
	require.NoError(t, err)
	var resp struct {
		Domains []struct {
			Name string `json:"name"`
		} `json:"domains"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Len(t, resp.Domains, 5)
}

func TestReport_NoStoredResults(t *testing.T) {
	s := testServer(t)
	w, env := doJSON(t, s, http.MethodGet, "/api/v1/report/run-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.OK)
}

func TestUnknownRoute(t *testing.T) {
	s := testServer(t)
	w, env := doJSON(t, s, http.MethodPost, "/api/v1/nope", "{}")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.OK)
}
