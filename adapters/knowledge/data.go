package knowledge

import (
	dk "stratcore/domain/knowledge"
)

// defaultContexts returns the hand-curated structural profiles for the five
// reference domains.
func defaultContexts() []dk.DomainContext {
	return []dk.DomainContext{
		{
			Name: "military",
			Characteristics: dk.Characteristics{
				TimeScale:             dk.TimeMedium,
				StakeholderComplexity: 6,
				InformationAvail:      dk.InfoLimited,
				RegulatoryConstraints: 0.4,
				CompetitiveIntensity:  0.95,
				RiskTolerance:         0.3,
			},
			SuccessMetrics:   []string{"territorial_control", "attrition_ratio", "objective_seizure"},
			CommonStrategies: []string{"flanking_maneuver", "defense_in_depth", "concentration_of_force", "deception"},
			CulturalFactors:  []string{"chain_of_command", "unit_cohesion", "doctrine_adherence"},
		},
		{
			Name: "business",
			Characteristics: dk.Characteristics{
				TimeScale:             dk.TimeLong,
				StakeholderComplexity: 8,
				InformationAvail:      dk.InfoPartial,
				RegulatoryConstraints: 0.6,
				CompetitiveIntensity:  0.8,
				RiskTolerance:         0.5,
			},
			SuccessMetrics:   []string{"market_share", "revenue_growth", "customer_retention"},
			CommonStrategies: []string{"market_entry", "differentiation", "cost_leadership", "vertical_integration"},
			CulturalFactors:  []string{"shareholder_pressure", "brand_reputation", "quarterly_cadence"},
		},
		{
			Name: "politics",
			Characteristics: dk.Characteristics{
				TimeScale:             dk.TimeMedium,
				StakeholderComplexity: 9,
				InformationAvail:      dk.InfoPartial,
				RegulatoryConstraints: 0.8,
				CompetitiveIntensity:  0.85,
				RiskTolerance:         0.4,
			},
			SuccessMetrics:   []string{"vote_share", "coalition_stability", "policy_enactment"},
			CommonStrategies: []string{"coalition_building", "agenda_setting", "wedge_issue", "incumbency_defense"},
			CulturalFactors:  []string{"public_opinion", "media_framing", "party_discipline"},
		},
		{
			Name: "sports",
			Characteristics: dk.Characteristics{
				TimeScale:             dk.TimeImmediate,
				StakeholderComplexity: 3,
				InformationAvail:      dk.InfoComplete,
				RegulatoryConstraints: 0.9,
				CompetitiveIntensity:  1.0,
				RiskTolerance:         0.7,
			},
			SuccessMetrics:   []string{"win_rate", "point_differential", "season_standing"},
			CommonStrategies: []string{"tempo_control", "matchup_exploitation", "set_play", "counterattack"},
			CulturalFactors:  []string{"team_chemistry", "coaching_authority", "home_advantage"},
		},
		{
			Name: "evolution",
			Characteristics: dk.Characteristics{
				TimeScale:             dk.TimeLong,
				StakeholderComplexity: 2,
				InformationAvail:      dk.InfoLimited,
				RegulatoryConstraints: 0.0,
				CompetitiveIntensity:  0.9,
				RiskTolerance:         0.6,
			},
			SuccessMetrics:   []string{"reproductive_fitness", "niche_occupation", "population_persistence"},
			CommonStrategies: []string{"niche_specialization", "mimicry", "r_selection", "symbiosis"},
			CulturalFactors:  []string{"selection_pressure", "resource_scarcity", "environmental_volatility"},
		},
	}
}

// defaultPatterns returns the curated historical pattern records. Success
// rates are hand-estimated from the historical record, not fitted.
func defaultPatterns() []dk.StrategyPattern {
	return []dk.StrategyPattern{
		{
			ID:                     "mil-indirect-approach",
			Name:                   "Indirect Approach",
			SourceDomain:           "military",
			CoreLogic:              "Avoid the opponent's prepared strength; attack along the line of least expectation to dislocate their position before committing decisive force.",
			PlayerStructure:        dk.PlayersTwo,
			StrategicDynamics:      "deception maneuver asymmetry surprise",
			InformationalStructure: dk.InfoLimited,
			HistoricalSuccessRate:  0.72,
			SuccessConditions:      []string{"opponent committed to fixed positions", "mobility advantage", "reliable reconnaissance"},
			FailureRisks:           []string{"overextended supply lines", "opponent reserves uncommitted"},
			AdaptationRequirements: []string{"map opponent commitments", "identify unexpected axis"},
			TransferabilityScore:   0.85,
		},
		{
			ID:                     "mil-defense-in-depth",
			Name:                   "Defense in Depth",
			SourceDomain:           "military",
			CoreLogic:              "Trade space for time across layered positions, absorbing the attack's momentum until a counterstroke becomes decisive.",
			PlayerStructure:        dk.PlayersTwo,
			StrategicDynamics:      "attrition patience counterattack resilience",
			InformationalStructure: dk.InfoPartial,
			HistoricalSuccessRate:  0.64,
			SuccessConditions:      []string{"depth available to trade", "attacker on a timetable"},
			FailureRisks:           []string{"political cost of ceded ground", "layers collapse faster than planned"},
			AdaptationRequirements: []string{"define fallback layers", "preserve counterattack reserve"},
			TransferabilityScore:   0.7,
		},
		{
			ID:                     "biz-disruptive-entry",
			Name:                   "Disruptive Low-End Entry",
			SourceDomain:           "business",
			CoreLogic:              "Enter beneath the incumbent's margin structure with a simpler offering, then ride improvement trajectories upmarket before the incumbent can respond.",
			PlayerStructure:        dk.PlayersFew,
			StrategicDynamics:      "asymmetry incentive innovation patience",
			InformationalStructure: dk.InfoPartial,
			HistoricalSuccessRate:  0.55,
			SuccessConditions:      []string{"overserved mainstream customers", "incumbent margin lock-in"},
			FailureRisks:           []string{"incumbent counter-launch", "low-end price war"},
			AdaptationRequirements: []string{"identify overserved segment", "sustain improvement cadence"},
			TransferabilityScore:   0.8,
		},
		{
			ID:                     "biz-platform-envelopment",
			Name:                   "Platform Envelopment",
			SourceDomain:           "business",
			CoreLogic:              "Bundle an adjacent platform's functionality into an existing user base, converting network effects into a pincer the standalone rival cannot match.",
			PlayerStructure:        dk.PlayersFew,
			StrategicDynamics:      "network_effects aggregation leverage cooperation",
			InformationalStructure: dk.InfoPartial,
			HistoricalSuccessRate:  0.58,
			SuccessConditions:      []string{"overlapping user bases", "shared components lower bundle cost"},
			FailureRisks:           []string{"antitrust exposure", "bundle dilutes core product"},
			AdaptationRequirements: []string{"map user-base overlap", "price the bundle"},
			TransferabilityScore:   0.65,
		},
		{
			ID:                     "pol-minimum-winning-coalition",
			Name:                   "Minimum Winning Coalition",
			SourceDomain:           "politics",
			CoreLogic:              "Assemble the smallest coalition sufficient to win, maximizing per-member payoff while keeping defection costly through side agreements.",
			PlayerStructure:        dk.PlayersMulti,
			StrategicDynamics:      "cooperation bargaining commitment payoff_division",
			InformationalStructure: dk.InfoPartial,
			HistoricalSuccessRate:  0.61,
			SuccessConditions:      []string{"divisible payoffs", "enforceable side agreements"},
			FailureRisks:           []string{"razor-thin margin defections", "excluded actors coalesce"},
			AdaptationRequirements: []string{"rank partners by price", "design defection penalties"},
			TransferabilityScore:   0.75,
		},
		{
			ID:                     "pol-agenda-control",
			Name:                   "Agenda Control",
			SourceDomain:           "politics",
			CoreLogic:              "Shape which questions reach a decision at all; winning the ordering of choices substitutes for winning every vote.",
			PlayerStructure:        dk.PlayersMulti,
			StrategicDynamics:      "framing sequencing information_control leverage",
			InformationalStructure: dk.InfoPartial,
			HistoricalSuccessRate:  0.67,
			SuccessConditions:      []string{"procedural authority", "opponents divided on priorities"},
			FailureRisks:           []string{"procedural backlash", "agenda transparency demands"},
			AdaptationRequirements: []string{"secure gatekeeping position", "sequence favorable pairings"},
			TransferabilityScore:   0.7,
		},
		{
			ID:                     "spt-tempo-dictation",
			Name:                   "Tempo Dictation",
			SourceDomain:           "sports",
			CoreLogic:              "Force the contest to the rhythm your side is conditioned for, making the opponent spend energy adjusting instead of executing.",
			PlayerStructure:        dk.PlayersTwo,
			StrategicDynamics:      "tempo initiative conditioning disruption",
			InformationalStructure: dk.InfoComplete,
			HistoricalSuccessRate:  0.59,
			SuccessConditions:      []string{"superior conditioning", "opponent rhythm-dependent"},
			FailureRisks:           []string{"own side exhausts first", "opponent comfortable at any pace"},
			AdaptationRequirements: []string{"establish preferred rhythm early", "rotate to sustain pace"},
			TransferabilityScore:   0.8,
		},
		{
			ID:                     "spt-matchup-hunting",
			Name:                   "Matchup Hunting",
			SourceDomain:           "sports",
			CoreLogic:              "Maneuver repeatedly into the one pairing where you hold a decisive edge, accepting neutral exchanges everywhere else.",
			PlayerStructure:        dk.PlayersTwo,
			StrategicDynamics:      "asymmetry exploitation focus selection",
			InformationalStructure: dk.InfoComplete,
			HistoricalSuccessRate:  0.63,
			SuccessConditions:      []string{"identifiable mismatch", "mechanism to force the pairing"},
			FailureRisks:           []string{"opponent switches assignments", "predictability invites traps"},
			AdaptationRequirements: []string{"scout pairwise edges", "build plays that force the matchup"},
			TransferabilityScore:   0.75,
		},
		{
			ID:                     "evo-niche-partition",
			Name:                   "Niche Partitioning",
			SourceDomain:           "evolution",
			CoreLogic:              "Escape head-on competition by specializing along an underused resource axis, converting a crowded contest into an uncontested one.",
			PlayerStructure:        dk.PlayersPopulation,
			StrategicDynamics:      "specialization avoidance differentiation patience",
			InformationalStructure: dk.InfoLimited,
			HistoricalSuccessRate:  0.68,
			SuccessConditions:      []string{"partitionable resource axis", "heritable specialization"},
			FailureRisks:           []string{"niche collapse under environmental change", "over-specialization"},
			AdaptationRequirements: []string{"identify underused axis", "commit to specialization"},
			TransferabilityScore:   0.85,
		},
		{
			ID:                     "evo-costly-signaling",
			Name:                   "Costly Signaling",
			SourceDomain:           "evolution",
			CoreLogic:              "Advertise quality through displays too expensive for weaker rivals to fake, deterring contests without fighting them.",
			PlayerStructure:        dk.PlayersPopulation,
			StrategicDynamics:      "signaling deterrence credibility information_control",
			InformationalStructure: dk.InfoLimited,
			HistoricalSuccessRate:  0.6,
			SuccessConditions:      []string{"signal cost scales with quality", "audience reads the signal"},
			FailureRisks:           []string{"signal inflation arms race", "cost outweighs deterrence value"},
			AdaptationRequirements: []string{"choose unfakeable signal", "bound the display cost"},
			TransferabilityScore:   0.7,
		},
	}
}
