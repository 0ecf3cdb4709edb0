package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"stratcore/adapters/excel"
	"stratcore/domain/core"
	"stratcore/domain/knowledge"
	"stratcore/domain/payoff"
	"stratcore/domain/strategy"
	"stratcore/internal"
	"stratcore/internal/recalibration"
	"stratcore/internal/report"
	"stratcore/internal/sensitivity"
	"stratcore/internal/symmetry"
	"stratcore/internal/transfer"
	"stratcore/ports"
)

// Handlers binds the analysis engines to their HTTP endpoints
type Handlers struct {
	sensitivity   *sensitivity.Runner
	symmetry      *symmetry.Engine
	transfer      *transfer.Engine
	recalibration *recalibration.Engine
	kb            ports.KnowledgeRepository
	runs          ports.RunStore
	patterns      ports.PatternStore
	log           *internal.Logger
}

// NewHandlers creates the handler set. runs and patterns may be nil when
// persistence is not configured; the report endpoint then answers 404.
func NewHandlers(
	sensitivityRunner *sensitivity.Runner,
	symmetryEngine *symmetry.Engine,
	transferEngine *transfer.Engine,
	recalibrationEngine *recalibration.Engine,
	kb ports.KnowledgeRepository,
	runs ports.RunStore,
	patterns ports.PatternStore,
	log *internal.Logger,
) *Handlers {
	return &Handlers{
		sensitivity:   sensitivityRunner,
		symmetry:      symmetryEngine,
		transfer:      transferEngine,
		recalibration: recalibrationEngine,
		kb:            kb,
		runs:          runs,
		patterns:      patterns,
		log:           log.With("api"),
	}
}

type rankRequest struct {
	AnalysisID core.RunID           `json:"analysis_id"`
	Actions    []payoff.ActionEntry `json:"actions"`
}

type rankResponse struct {
	AnalysisID core.RunID        `json:"analysis_id,omitempty"`
	Ranking    []payoff.EVResult `json:"ranking"`
	TopEV      float64           `json:"top_ev"`
}

// RankEV ranks candidate actions by confidence-weighted expected value
func (h *Handlers) RankEV(c *gin.Context) {
	var req rankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if len(req.Actions) == 0 {
		respondError(c, http.StatusBadRequest, "missing required field: actions")
		return
	}
	ranking := payoff.Rank(req.Actions)
	respondOK(c, rankResponse{
		AnalysisID: req.AnalysisID,
		Ranking:    ranking,
		TopEV:      payoff.TopEV(ranking),
	})
}

// RunSensitivity executes a tornado sensitivity analysis
func (h *Handlers) RunSensitivity(c *gin.Context) {
	var req sensitivity.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if missing := missingFields(map[string]bool{
		"analysis_id":  req.RunID == "",
		"base_actions": len(req.BaseActions) == 0,
		"key_params":   len(req.KeyParams) == 0,
	}); missing != "" {
		respondError(c, http.StatusBadRequest, "missing required field: "+missing)
		return
	}
	result, err := h.sensitivity.Run(c.Request.Context(), req)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	respondOK(c, result)
}

type discoverRequest struct {
	RunID           core.RunID        `json:"runId"`
	CurrentScenario symmetry.Scenario `json:"currentScenario"`
	AnalysisConfig  symmetry.Config   `json:"analysisConfig"`
}

// DiscoverSymmetries mines the pattern catalogue for cross-domain analogies
func (h *Handlers) DiscoverSymmetries(c *gin.Context) {
	var req discoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.RunID == "" {
		respondError(c, http.StatusBadRequest, "missing required field: runId")
		return
	}
	result, err := h.symmetry.Discover(c.Request.Context(), req.RunID, req.CurrentScenario, req.AnalysisConfig)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	respondOK(c, result)
}

// AdaptStrategy transfers a source strategy into a target domain
func (h *Handlers) AdaptStrategy(c *gin.Context) {
	var req transfer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if missing := missingFields(map[string]bool{
		"runId":          req.RunID == "",
		"sourceStrategy": req.SourceStrategy.Pattern.Name == "" && req.SourceStrategy.Pattern.SourceDomain == "",
		"targetDomain":   req.TargetDomain == "",
	}); missing != "" {
		respondError(c, http.StatusBadRequest, "missing required field: "+missing)
		return
	}
	result, err := h.transfer.Transfer(c.Request.Context(), req)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	respondOK(c, result)
}

// Recalibrate runs one recalibration cycle over a caller-owned strategy
func (h *Handlers) Recalibrate(c *gin.Context) {
	var req recalibration.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if missing := missingFields(map[string]bool{
		"runId":           req.RunID == "",
		"currentStrategy": len(req.CurrentStrategy.Actions) == 0 && len(req.CurrentStrategy.Beliefs) == 0,
	}); missing != "" {
		respondError(c, http.StatusBadRequest, "missing required field: "+missing)
		return
	}
	result, err := h.recalibration.Recalibrate(c.Request.Context(), req)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	respondOK(c, result)
}

type domainSummary struct {
	Name         string                  `json:"name"`
	Context      knowledge.DomainContext `json:"context"`
	PatternCount int                     `json:"patternCount"`
	Fingerprint  knowledge.Fingerprint   `json:"fingerprint"`
}

// ListDomains enumerates the catalogued domains with their structural profiles
func (h *Handlers) ListDomains(c *gin.Context) {
	names := h.kb.Domains()
	out := make([]domainSummary, 0, len(names))
	for _, name := range names {
		dc, err := h.kb.DomainContext(name)
		if err != nil {
			continue
		}
		patterns, _ := h.kb.Lookup(name)
		out = append(out, domainSummary{
			Name:         name,
			Context:      dc,
			PatternCount: len(patterns),
			Fingerprint:  knowledge.FingerprintOf(name),
		})
	}
	respondOK(c, gin.H{"domains": out})
}

// GetReport renders the stored results of a run as a markdown brief, HTML
// page, or xlsx workbook depending on the format query parameter.
func (h *Handlers) GetReport(c *gin.Context) {
	runID, err := core.ParseRunID(c.Param("runId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid runId")
		return
	}

	tornado, analogies := h.loadRunResults(c, runID)
	if tornado == nil && len(analogies) == 0 {
		respondError(c, http.StatusNotFound, "no stored results for run "+runID.String())
		return
	}

	switch c.DefaultQuery("format", "md") {
	case "xlsx":
		workbook, err := excel.BuildWorkbook(runID, tornado, analogies)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "workbook generation failed")
			return
		}
		c.Header("Content-Disposition", "attachment; filename="+excel.Filename(runID))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := workbook.Write(c.Writer); err != nil {
			h.log.Warn("workbook stream failed for %s: %v", runID, err)
		}
	case "html":
		md := report.BriefMarkdown(runID, tornado, analogies)
		c.Data(http.StatusOK, "text/html; charset=utf-8", report.ToHTML(md))
	default:
		md := report.BriefMarkdown(runID, tornado, analogies)
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
	}
}

// loadRunResults pulls whatever the stores hold for a run. Either half may be
// absent; a disabled store contributes nothing.
func (h *Handlers) loadRunResults(c *gin.Context, runID core.RunID) (*sensitivity.Result, []strategy.Analogy) {
	ctx := c.Request.Context()

	var tornado *sensitivity.Result
	if h.runs != nil {
		if run, err := h.runs.GetSimulationRun(ctx, runID); err == nil && run.Kind == "sensitivity_tornado" {
			tornado = decodeTornado(run.Payload)
		}
	}

	var analogies []strategy.Analogy
	if h.patterns != nil {
		if found, err := h.patterns.GetDiscoveredAnalogies(ctx, runID); err == nil {
			analogies = found
		}
	}
	return tornado, analogies
}

// decodeTornado re-types the generic JSON payload a store hands back.
func decodeTornado(payload any) *sensitivity.Result {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	var result sensitivity.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil
	}
	return &result
}

// missingFields returns the first missing field name in stable order, or "".
func missingFields(checks map[string]bool) string {
	// Deterministic order keeps error messages stable across calls.
	order := []string{"analysis_id", "runId", "base_actions", "key_params", "sourceStrategy", "targetDomain", "currentStrategy"}
	for _, name := range order {
		if checks[name] {
			return name
		}
	}
	return ""
}
