package ports

import (
	"stratcore/domain/knowledge"
)

// KnowledgeRepository is the injected read-only catalogue of strategic
// patterns and domain contexts. Implementations must be safe for unlimited
// concurrent readers; engines never mutate what they are handed.
type KnowledgeRepository interface {
	// Lookup returns the catalogued patterns for a domain name.
	// Returns core.ErrDomainNotFound for unknown domains.
	Lookup(domain string) ([]knowledge.StrategyPattern, error)

	// DomainContext returns the structural profile of a domain.
	DomainContext(domain string) (knowledge.DomainContext, error)

	// Domains lists every catalogued domain name, sorted.
	Domains() []string
}
