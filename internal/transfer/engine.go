// Package transfer implements the cross-domain strategy-transfer engine:
// feasibility scoring, vocabulary adaptation, protocol generation, risk
// assessment and success prediction.
package transfer

import (
	"context"
	"fmt"
	"math"
	"strings"

	"stratcore/domain/core"
	"stratcore/domain/knowledge"
	"stratcore/internal"
	"stratcore/internal/errors"
	"stratcore/ports"
)

// Engine performs strategy transfers. Stateless per invocation.
type Engine struct {
	cfg   Config
	kb    ports.KnowledgeRepository
	store ports.TransferStore
	log   *internal.Logger
}

// NewEngine wires the engine. store may be nil when persistence is not
// configured.
func NewEngine(cfg Config, kb ports.KnowledgeRepository, store ports.TransferStore, log *internal.Logger) *Engine {
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	return &Engine{cfg: cfg, kb: kb, store: store, log: log.With("transfer")}
}

// Transfer adapts the source strategy into the target domain. Below the
// feasibility gate it short-circuits: the source pattern is returned
// unmodified with an empty protocol and a fixed low success prediction.
func (e *Engine) Transfer(ctx context.Context, req Request) (*Result, error) {
	if req.TargetDomain == "" {
		return nil, core.NewMissingFieldError("targetDomain")
	}
	target, err := e.kb.DomainContext(req.TargetDomain)
	if err != nil {
		return nil, err
	}
	source, err := e.sourceContext(req.SourceStrategy.Pattern)
	if err != nil {
		return nil, err
	}

	feasibility := e.feasibility(req.SourceStrategy.Pattern, source, target)

	if feasibility < e.cfg.FeasibilityGate {
		result := &Result{
			RunID:               req.RunID,
			TransferFeasibility: feasibility,
			AdaptedStrategy:     req.SourceStrategy.Pattern,
			AdaptationProtocol:  []Phase{},
			RiskAssessment: RiskAssessment{
				Level:       RiskHigh,
				Factors:     []string{fmt.Sprintf("transfer feasibility %.2f below gate %.2f", feasibility, e.cfg.FeasibilityGate)},
				Mitigations: []string{"select a source strategy structurally closer to the target domain"},
			},
			ImplementationPlan: Plan{
				Feasible:       false,
				Recommendation: "low feasibility: adaptation not attempted",
			},
			SuccessPrediction: e.cfg.ShortCircuitScore,
		}
		e.persist(ctx, req, result)
		return result, nil
	}

	adapted := e.adapt(req.SourceStrategy.Pattern, source, target)
	protocol := buildProtocol(req.TargetDomain)
	risk := e.assessRisk(feasibility, source, target)
	plan := buildPlan(protocol, req.Constraints)
	success := e.predictSuccess(req.SourceStrategy, feasibility, risk.Level, target)

	result := &Result{
		RunID:               req.RunID,
		TransferFeasibility: feasibility,
		AdaptedStrategy:     adapted,
		AdaptationProtocol:  protocol,
		RiskAssessment:      risk,
		ImplementationPlan:  plan,
		SuccessPrediction:   success,
	}
	e.persist(ctx, req, result)
	return result, nil
}

// sourceContext resolves the source domain profile from the catalogue.
func (e *Engine) sourceContext(pattern knowledge.StrategyPattern) (knowledge.DomainContext, error) {
	if pattern.SourceDomain == "" {
		return knowledge.DomainContext{}, core.NewMissingFieldError("sourceStrategy.pattern.sourceDomain")
	}
	return e.kb.DomainContext(pattern.SourceDomain)
}

// feasibility accumulates weighted compatibility contributions onto the base
// score. Contributions are symmetric around zero so the base of 0.5 is the
// "no information" point.
func (e *Engine) feasibility(pattern knowledge.StrategyPattern, source, target knowledge.DomainContext) float64 {
	score := e.cfg.FeasibilityBase

	switch source.Characteristics.TimeScale.Distance(target.Characteristics.TimeScale) {
	case 0:
		score += 0.10
	case 1:
		score += 0.05
	case 2:
		score -= 0.05
	default:
		score -= 0.10
	}

	stakeholderGap := math.Abs(float64(source.Characteristics.StakeholderComplexity-target.Characteristics.StakeholderComplexity)) / 9
	score += 0.10 * (1 - 2*stakeholderGap)

	switch source.Characteristics.InformationAvail.Distance(target.Characteristics.InformationAvail) {
	case 0:
		score += 0.08
	case 1:
		// neutral
	default:
		score -= 0.08
	}

	riskGap := math.Abs(source.Characteristics.RiskTolerance - target.Characteristics.RiskTolerance)
	score += 0.08 * (1 - 2*riskGap)

	intensityGap := math.Abs(source.Characteristics.CompetitiveIntensity - target.Characteristics.CompetitiveIntensity)
	score += 0.06 * (1 - 2*intensityGap)

	score += 0.18 * (pattern.TransferabilityScore - 0.5) * 2

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// adapt rewrites the strategy in the target domain's vocabulary and extends
// its conditions and risks with target-specific entries.
func (e *Engine) adapt(pattern knowledge.StrategyPattern, source, target knowledge.DomainContext) knowledge.StrategyPattern {
	adapted := pattern
	adapted.ID = core.PatternID(string(pattern.ID) + "-" + target.Name)
	adapted.Name = fmt.Sprintf("%s (adapted for %s)", pattern.Name, target.Name)
	adapted.SourceDomain = target.Name

	logic := rewriteForDomain(pattern.CoreLogic, target.Name)
	if source.Characteristics.TimeScale != target.Characteristics.TimeScale {
		logic += fmt.Sprintf(" Re-pace the approach: plan for %s-term execution rather than %s-term.",
			target.Characteristics.TimeScale, source.Characteristics.TimeScale)
	}
	if len(target.CulturalFactors) > 0 {
		logic += fmt.Sprintf(" Account for %s cultural factors: %s.",
			target.Name, strings.Join(target.CulturalFactors, ", "))
	}
	adapted.CoreLogic = logic

	conditions := append([]string{}, pattern.SuccessConditions...)
	for _, metric := range target.SuccessMetrics {
		conditions = append(conditions, fmt.Sprintf("progress measurable via %s", metric))
	}
	if target.Characteristics.RiskTolerance < 0.4 {
		conditions = append(conditions, "maintain a conservative posture consistent with the domain's low risk tolerance")
	}
	if target.Characteristics.RegulatoryConstraints > 0.7 {
		conditions = append(conditions, "secure regulatory clearance before any irreversible commitment")
	}
	adapted.SuccessConditions = conditions

	risks := append([]string{}, pattern.FailureRisks...)
	if target.Characteristics.CompetitiveIntensity > 0.8 {
		risks = append(risks, fmt.Sprintf("high competitive intensity in %s accelerates counter-moves", target.Name))
	}
	if target.Characteristics.StakeholderComplexity >= 7 {
		risks = append(risks, "stakeholder complexity multiplies coordination failure modes")
	}
	if target.Characteristics.InformationAvail == knowledge.InfoLimited {
		risks = append(risks, "limited information may hide disqualifying conditions until late")
	}
	adapted.FailureRisks = risks

	adapted.TransferabilityScore = pattern.TransferabilityScore * e.cfg.AdaptationPenalty
	return adapted
}

// buildProtocol returns the fixed 4-phase adaptation protocol.
func buildProtocol(targetDomain string) []Phase {
	return []Phase{
		{
			Name:          "Domain Analysis & Planning",
			DurationHours: 16,
			Resources:     []string{"domain analyst", "strategy lead"},
			Activities: []string{
				fmt.Sprintf("profile the %s landscape and its actors", targetDomain),
				"confirm structural preconditions of the source pattern",
			},
		},
		{
			Name:          "Strategy Adaptation",
			DurationHours: 24,
			Resources:     []string{"strategy lead", "domain expert"},
			Activities: []string{
				"translate core logic into domain vocabulary and constraints",
				"align success conditions with domain metrics",
			},
		},
		{
			Name:          "Risk Mitigation",
			DurationHours: 16,
			Resources:     []string{"risk officer", "domain expert"},
			Activities: []string{
				"design mitigations for each identified risk factor",
				"define abort criteria and fallback positions",
			},
		},
		{
			Name:          "Implementation Planning",
			DurationHours: 12,
			Resources:     []string{"program manager"},
			Activities: []string{
				"sequence the adapted strategy into an execution timeline",
				"assign owners and review checkpoints",
			},
		},
	}
}

// assessRisk aggregates qualitative risk factors into a three-level verdict.
func (e *Engine) assessRisk(feasibility float64, source, target knowledge.DomainContext) RiskAssessment {
	var factors, mitigations []string

	if feasibility < 0.5 {
		factors = append(factors, "marginal transfer feasibility")
		mitigations = append(mitigations, "pilot the adapted strategy at reduced scale first")
	}
	if target.Characteristics.StakeholderComplexity >= 7 {
		factors = append(factors, "high stakeholder complexity in the target domain")
		mitigations = append(mitigations, "map stakeholders and secure key endorsements before launch")
	}
	if target.Characteristics.InformationAvail == knowledge.InfoLimited {
		factors = append(factors, "limited information availability")
		mitigations = append(mitigations, "invest in reconnaissance before committing resources")
	}
	if target.Characteristics.CompetitiveIntensity > 0.8 {
		factors = append(factors, "high competitive intensity")
		mitigations = append(mitigations, "prepare counter-response plans for the two most likely rival reactions")
	}
	if jaccard(source.CulturalFactors, target.CulturalFactors) < 0.2 {
		factors = append(factors, "low cultural alignment between source and target domains")
		mitigations = append(mitigations, "recruit native domain expertise to vet the adaptation")
	}

	level := RiskLow
	switch {
	case len(factors) >= 3:
		level = RiskHigh
	case len(factors) >= 1:
		level = RiskMedium
	}
	return RiskAssessment{Level: level, Factors: factors, Mitigations: mitigations}
}

// buildPlan sums phase durations and applies the hard time-budget gate.
func buildPlan(protocol []Phase, constraints Constraints) Plan {
	var total float64
	for _, phase := range protocol {
		total += phase.DurationHours
	}
	plan := Plan{TotalHours: total, Feasible: true}
	if constraints.TimeToImplementHours > 0 && total > constraints.TimeToImplementHours {
		plan.Feasible = false
		plan.Recommendation = fmt.Sprintf(
			"adaptation needs %.0fh but only %.0fh is budgeted: extend the timeline or reduce scope",
			total, constraints.TimeToImplementHours)
	}
	return plan
}

// predictSuccess discounts the observed source performance by feasibility,
// risk level and target-domain penalties, clamped to the configured band.
func (e *Engine) predictSuccess(src SourceStrategy, feasibility float64, risk RiskLevel, target knowledge.DomainContext) float64 {
	base := src.Performance
	if base <= 0 {
		base = src.Pattern.HistoricalSuccessRate
	}
	prediction := base * feasibility
	switch risk {
	case RiskHigh:
		prediction *= e.cfg.RiskMultiplierHigh
	case RiskMedium:
		prediction *= e.cfg.RiskMultiplierMed
	default:
		prediction *= e.cfg.RiskMultiplierLow
	}
	if target.Characteristics.CompetitiveIntensity > 0.8 {
		prediction *= 0.9
	}
	if target.Characteristics.RegulatoryConstraints > 0.7 {
		prediction *= 0.9
	}
	if prediction < e.cfg.SuccessFloor {
		return e.cfg.SuccessFloor
	}
	if prediction > e.cfg.SuccessCeiling {
		return e.cfg.SuccessCeiling
	}
	return prediction
}

// persist writes the transfer outcome fire-and-forget.
func (e *Engine) persist(ctx context.Context, req Request, result *Result) {
	if e.store == nil {
		return
	}
	rec := ports.TransferRecord{
		ID:                  core.TransferID(core.NewID()),
		RunID:               req.RunID,
		SourceStrategy:      req.SourceStrategy.Pattern,
		AdaptedStrategy:     result.AdaptedStrategy,
		TransferFeasibility: result.TransferFeasibility,
		SuccessPrediction:   result.SuccessPrediction,
		CreatedAt:           core.Now(),
	}
	if err := e.store.SaveTransferResult(ctx, rec); err != nil {
		e.log.Warn("run %s: %v", req.RunID, errors.PersistenceError("transfer_results", err))
	}
}
