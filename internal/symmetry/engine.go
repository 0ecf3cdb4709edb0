// Package symmetry implements the pattern-mining engine: it condenses a
// scenario into a structural signature, scores it against every catalogued
// strategic pattern, and returns ranked cross-domain analogies with
// adaptation guidance.
package symmetry

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"stratcore/domain/core"
	"stratcore/domain/knowledge"
	"stratcore/domain/strategy"
	"stratcore/internal"
	"stratcore/internal/errors"
	"stratcore/ports"
)

const (
	defaultMaxAnalogies      = 5
	defaultSimilarityFloor   = 0.6
	maxReliability           = 0.95
	degradedReliability      = 0.1
	maxParallelDomainScans   = 4
	reliabilityPerAnalogy    = 0.08
	reliabilityBaseline      = 0.2
	reliabilitySimilarityWt  = 0.25
	reliabilitySuccessRateWt = 0.15
)

// Engine is the symmetry mining engine. Stateless per invocation: all call
// state lives on the stack, so one engine serves concurrent requests.
type Engine struct {
	kb       ports.KnowledgeRepository
	patterns ports.PatternStore
	weights  Weights
	floor    float64
	log      *internal.Logger
}

// NewEngine wires the engine. patternStore may be nil when persistence is
// not configured. floor is the default similarity threshold, overridable per
// request.
func NewEngine(kb ports.KnowledgeRepository, patternStore ports.PatternStore, floor float64, log *internal.Logger) *Engine {
	if floor <= 0 || floor > 1 {
		floor = defaultSimilarityFloor
	}
	return &Engine{
		kb:       kb,
		patterns: patternStore,
		weights:  DefaultWeights(),
		floor:    floor,
		log:      log.With("symmetry"),
	}
}

// Discover computes the scenario signature, scores every eligible pattern,
// and returns ranked analogies. Empty or malformed scenarios degrade to a
// low-confidence zero-analogy response rather than an error.
func (e *Engine) Discover(ctx context.Context, runID core.RunID, scenario Scenario, cfg Config) (*Result, error) {
	threshold := cfg.SimilarityThreshold
	if threshold <= 0 {
		threshold = e.floor
	}
	maxAnalogies := cfg.MaxAnalogies
	if maxAnalogies <= 0 {
		maxAnalogies = defaultMaxAnalogies
	}

	if scenario.Empty() {
		return &Result{
			RunID:                    runID,
			PatternDiscovery:         emptyDiscovery(cfg),
			StrategicRecommendations: []Recommendation{},
			AnalysisMetadata: Metadata{
				SimilarityThreshold: threshold,
				Reliability:         degradedReliability,
			},
		}, nil
	}

	sig := buildSignature(scenario, cfg)
	domains := cfg.DomainsToSearch
	if len(domains) == 0 {
		domains = e.kb.Domains()
	}

	var (
		mu         sync.Mutex
		candidates []strategy.Analogy
		evaluated  int
	)
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDomainScans)
	for _, domain := range domains {
		g.Go(func() error {
			matches, scanned := e.scanDomain(domain, scenario, sig, threshold)
			mu.Lock()
			candidates = append(candidates, matches...)
			evaluated += scanned
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Blended-score ranking; pattern name breaks ties so output is
	// deterministic regardless of scan scheduling.
	sort.SliceStable(candidates, func(i, j int) bool {
		si := candidates[i].BlendedScore(e.weights.SimilarityBlend, e.weights.SuccessBlend)
		sj := candidates[j].BlendedScore(e.weights.SimilarityBlend, e.weights.SuccessBlend)
		if si != sj {
			return si > sj
		}
		return candidates[i].StructuralMatch.PatternName < candidates[j].StructuralMatch.PatternName
	})
	if len(candidates) > maxAnalogies {
		candidates = candidates[:maxAnalogies]
	}

	result := &Result{
		RunID: runID,
		PatternDiscovery: Discovery{
			Analogies:              candidates,
			AbstractionInsights:    buildInsights(sig, candidates),
			MetaPatternRecognition: buildMetaPatterns(candidates),
		},
		StrategicRecommendations: buildRecommendations(candidates, e.weights),
		AnalysisMetadata: Metadata{
			Signature:           sig,
			DomainsSearched:     domains,
			PatternsEvaluated:   evaluated,
			SimilarityThreshold: threshold,
			Reliability:         reliability(candidates),
		},
	}

	e.persist(ctx, runID, candidates)
	return result, nil
}

// scanDomain scores every eligible pattern of one domain against the
// signature and returns matches clearing the threshold.
func (e *Engine) scanDomain(domain string, scenario Scenario, sig Signature, threshold float64) ([]strategy.Analogy, int) {
	patterns, err := e.kb.Lookup(domain)
	if err != nil {
		e.log.Debug("skipping unknown domain %q: %v", domain, err)
		return nil, 0
	}

	var matches []strategy.Analogy
	evaluated := 0
	for _, pattern := range patterns {
		if pattern.SourceDomain == scenario.Domain && sig.AbstractionLevel < sameDomainAbstraction {
			continue
		}
		evaluated++
		similarity := e.structuralSimilarity(sig, scenario, pattern)
		if similarity < threshold {
			continue
		}
		matches = append(matches, strategy.Analogy{
			SourceDomain:         pattern.SourceDomain,
			TargetDomain:         scenario.Domain,
			StructuralSimilarity: similarity,
			SuccessProbability:   pattern.HistoricalSuccessRate,
			StructuralMatch: strategy.StructuralMatch{
				PatternID:              pattern.ID,
				PatternName:            pattern.Name,
				PlayerStructure:        pattern.PlayerStructure,
				StrategicDynamics:      pattern.StrategicDynamics,
				InformationalStructure: pattern.InformationalStructure,
			},
			AnalogousStrategies:     buildSuggestions(pattern, scenario),
			MetaStrategicPrinciples: metaPrinciples(pattern),
			ImplementationGuidance:  buildGuidance(pattern, scenario),
		})
	}
	return matches, evaluated
}

// structuralSimilarity blends the four structural factors into [0,1].
func (e *Engine) structuralSimilarity(sig Signature, scenario Scenario, pattern knowledge.StrategyPattern) float64 {
	score := e.weights.PlayerCloseness * playerCloseness(sig.PlayerCount, pattern.PlayerStructure)
	if sig.InformationClass == pattern.InformationalStructure {
		score += e.weights.InfoEquality
	}
	score += e.weights.DynamicsOverlap * tokenOverlap(sig.PayoffStructure, pattern.StrategicDynamics)
	if knowledge.CrossDomain(scenario.Domain, pattern.SourceDomain) {
		score += e.weights.CrossDomainBonus
	}
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}

// buildInsights derives emergent themes (most frequent source domains) and
// attaches the static cluster map.
func buildInsights(sig Signature, analogies []strategy.Analogy) AbstractionInsights {
	counts := make(map[string]int)
	for _, a := range analogies {
		counts[a.SourceDomain]++
	}
	themes := make([]string, 0, len(counts))
	for domain := range counts {
		themes = append(themes, domain)
	}
	sort.Slice(themes, func(i, j int) bool {
		if counts[themes[i]] != counts[themes[j]] {
			return counts[themes[i]] > counts[themes[j]]
		}
		return themes[i] < themes[j]
	})
	return AbstractionInsights{
		AbstractionLevel: sig.AbstractionLevel,
		EmergentThemes:   themes,
		DomainClusters:   domainClusters,
	}
}

// buildMetaPatterns reports the dynamics concepts recurring across matches.
func buildMetaPatterns(analogies []strategy.Analogy) MetaPatternRecognition {
	counts := make(map[string]int)
	domains := make(map[string]bool)
	for _, a := range analogies {
		domains[a.SourceDomain] = true
		for tok := range recognizedTokens(a.StructuralMatch.StrategicDynamics) {
			counts[tok]++
		}
	}
	var dominant []string
	for tok, n := range counts {
		if n >= 2 {
			dominant = append(dominant, tok)
		}
	}
	sort.Strings(dominant)
	return MetaPatternRecognition{
		DominantDynamics:  dominant,
		CrossDomainSpread: len(domains),
	}
}

// buildRecommendations surfaces the lead suggestion of each analogy.
func buildRecommendations(analogies []strategy.Analogy, w Weights) []Recommendation {
	out := make([]Recommendation, 0, len(analogies))
	for _, a := range analogies {
		if len(a.AnalogousStrategies) == 0 {
			continue
		}
		lead := a.AnalogousStrategies[0]
		out = append(out, Recommendation{
			SourceDomain: a.SourceDomain,
			Pattern:      a.StructuralMatch.PatternName,
			Strategy:     lead.Strategy,
			Rationale:    lead.Rationale,
			Confidence:   a.BlendedScore(w.SimilarityBlend, w.SuccessBlend),
		})
	}
	return out
}

// reliability estimates how far the whole response can be trusted without
// human review, from analogy count and average similarity/success rate.
func reliability(analogies []strategy.Analogy) float64 {
	if len(analogies) == 0 {
		return degradedReliability
	}
	var simSum, successSum float64
	for _, a := range analogies {
		simSum += a.StructuralSimilarity
		successSum += a.SuccessProbability
	}
	n := float64(len(analogies))
	r := reliabilityBaseline +
		reliabilityPerAnalogy*n +
		reliabilitySimilarityWt*(simSum/n) +
		reliabilitySuccessRateWt*(successSum/n)
	if r > maxReliability {
		r = maxReliability
	}
	return r
}

func emptyDiscovery(cfg Config) Discovery {
	return Discovery{
		Analogies: []strategy.Analogy{},
		AbstractionInsights: AbstractionInsights{
			AbstractionLevel: cfg.AbstractionLevel,
			EmergentThemes:   []string{},
			DomainClusters:   domainClusters,
		},
		MetaPatternRecognition: MetaPatternRecognition{DominantDynamics: []string{}},
	}
}

// persist writes discovered analogies fire-and-forget.
func (e *Engine) persist(ctx context.Context, runID core.RunID, analogies []strategy.Analogy) {
	if e.patterns == nil || len(analogies) == 0 {
		return
	}
	if err := e.patterns.SaveDiscoveredAnalogies(ctx, runID, analogies); err != nil {
		e.log.Warn("run %s: %v", runID, errors.PersistenceError("strategic_patterns", err))
	}
}
