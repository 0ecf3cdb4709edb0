// Package knowledge provides the static in-memory strategic pattern
// catalogue. This is configuration data, not logic: adding a domain or a
// pattern record here never requires touching engine code, because engines
// only see the ports.KnowledgeRepository interface.
package knowledge

import (
	"sort"

	"stratcore/domain/core"
	dk "stratcore/domain/knowledge"
	"stratcore/ports"
)

// Catalogue is a read-only repository backed by in-memory maps built at
// construction. Safe for unlimited concurrent readers.
type Catalogue struct {
	contexts map[string]dk.DomainContext
	patterns map[string][]dk.StrategyPattern
	domains  []string
}

var _ ports.KnowledgeRepository = (*Catalogue)(nil)

// NewCatalogue builds the default catalogue of curated domains and patterns.
func NewCatalogue() *Catalogue {
	return NewCatalogueFrom(defaultContexts(), defaultPatterns())
}

// NewCatalogueFrom builds a catalogue from caller-supplied data, which is how
// tests and extensions swap the knowledge base without touching engines.
func NewCatalogueFrom(contexts []dk.DomainContext, patterns []dk.StrategyPattern) *Catalogue {
	c := &Catalogue{
		contexts: make(map[string]dk.DomainContext, len(contexts)),
		patterns: make(map[string][]dk.StrategyPattern),
	}
	for _, ctx := range contexts {
		c.contexts[ctx.Name] = ctx
	}
	for _, p := range patterns {
		c.patterns[p.SourceDomain] = append(c.patterns[p.SourceDomain], p)
	}
	for name := range c.contexts {
		c.domains = append(c.domains, name)
	}
	sort.Strings(c.domains)
	return c
}

// Lookup returns the catalogued patterns for a domain name.
func (c *Catalogue) Lookup(domain string) ([]dk.StrategyPattern, error) {
	patterns, ok := c.patterns[domain]
	if !ok {
		if _, known := c.contexts[domain]; !known {
			return nil, core.ErrDomainNotFound
		}
		return nil, nil
	}
	return patterns, nil
}

// DomainContext returns the structural profile of a domain.
func (c *Catalogue) DomainContext(domain string) (dk.DomainContext, error) {
	ctx, ok := c.contexts[domain]
	if !ok {
		return dk.DomainContext{}, core.ErrDomainNotFound
	}
	return ctx, nil
}

// Domains lists every catalogued domain name, sorted.
func (c *Catalogue) Domains() []string {
	out := make([]string, len(c.domains))
	copy(out, c.domains)
	return out
}
