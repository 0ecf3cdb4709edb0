package knowledge

// Fingerprint abstracts a named domain into a coarse strategic category so
// structurally similar situations can be compared across unrelated fields.
type Fingerprint string

const (
	FingerprintPower        Fingerprint = "power_projection"
	FingerprintEconomic     Fingerprint = "economic_competition"
	FingerprintCoalition    Fingerprint = "coalition_dynamics"
	FingerprintContest      Fingerprint = "bounded_contest"
	FingerprintSelection    Fingerprint = "selection_pressure"
	FingerprintUnclassified Fingerprint = "unclassified"
)

// fingerprints is the fixed mapping from domain name to abstract category
var fingerprints = map[string]Fingerprint{
	"military":  FingerprintPower,
	"business":  FingerprintEconomic,
	"politics":  FingerprintCoalition,
	"sports":    FingerprintContest,
	"evolution": FingerprintSelection,
}

// FingerprintOf classifies a domain name; unknown domains map to the
// unclassified category, which never collides with a catalogued one.
func FingerprintOf(domain string) Fingerprint {
	if fp, ok := fingerprints[domain]; ok {
		return fp
	}
	return FingerprintUnclassified
}

// CrossDomain reports whether two domains live in different strategic
// categories, i.e. a match between them is a genuine cross-domain analogy.
func CrossDomain(a, b string) bool {
	return FingerprintOf(a) != FingerprintOf(b)
}
