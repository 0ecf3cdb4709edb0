package symmetry

import (
	"stratcore/domain/knowledge"
)

const (
	defaultAbstraction = 5
	minAbstraction     = 1
	maxAbstraction     = 10

	// Same-domain patterns are only eligible at this abstraction or above,
	// forcing genuinely cross-domain matches at lower levels.
	sameDomainAbstraction = 8
)

// buildSignature condenses a scenario into the structural fingerprint that
// similarity scoring runs against.
func buildSignature(s Scenario, cfg Config) Signature {
	level := cfg.AbstractionLevel
	if level == 0 {
		level = defaultAbstraction
	}
	if level < minAbstraction {
		level = minAbstraction
	}
	if level > maxAbstraction {
		level = maxAbstraction
	}

	players := s.StrategicElements.PlayerCount
	if players <= 0 {
		players = len(s.Stakeholders)
	}
	if players < 2 {
		players = 2
	}

	info := s.StrategicElements.InformationAvail
	if info == "" {
		info = knowledge.InfoPartial
	}

	return Signature{
		PlayerCount:      players,
		InformationClass: info,
		PayoffStructure:  s.StrategicElements.PayoffStructure,
		StakeholderCount: len(s.Stakeholders),
		ActionSpaceSize:  len(s.StrategicElements.ActionSpace),
		Fingerprint:      knowledge.FingerprintOf(s.Domain),
		AbstractionLevel: level,
	}
}

// playerCloseness scores actor-topology similarity with ±1 tolerance.
func playerCloseness(scenarioPlayers int, structure knowledge.PlayerStructure) float64 {
	diff := scenarioPlayers - structure.Players()
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 1:
		return 1.0
	case diff <= 3:
		return 0.5
	default:
		return 0
	}
}
