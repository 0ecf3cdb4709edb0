// Package report renders a human-readable analysis brief for a stored run:
// markdown for tooling, HTML for direct display.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"stratcore/domain/core"
	"stratcore/domain/strategy"
	"stratcore/internal/sensitivity"
)

// BriefMarkdown composes the run brief. Either section may be absent when
// the corresponding store has no data for the run.
func BriefMarkdown(runID core.RunID, tornado *sensitivity.Result, analogies []strategy.Analogy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Analysis Brief: %s\n\n", runID)

	if tornado != nil && len(tornado.Results) > 0 {
		b.WriteString("## Sensitivity (Tornado)\n\n")
		fmt.Fprintf(&b, "Most sensitive parameter: **%s** (%d samples per parameter)\n\n",
			tornado.Summary.MostSensitiveParam, tornado.Summary.SamplesPerParameter)
		b.WriteString("| Parameter | Avg Top EV | Min | Max | Spread |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, r := range tornado.Results {
			fmt.Fprintf(&b, "| %s | %.3f | %.3f | %.3f | %.3f |\n",
				r.Param, r.AvgTopEV, r.MinEV, r.MaxEV, r.RangeDelta)
		}
		b.WriteString("\n")
	}

	if len(analogies) > 0 {
		b.WriteString("## Cross-Domain Analogies\n\n")
		for i, a := range analogies {
			fmt.Fprintf(&b, "### %d. %s (%s → %s)\n\n", i+1,
				a.StructuralMatch.PatternName, a.SourceDomain, a.TargetDomain)
			fmt.Fprintf(&b, "Structural similarity %.2f, historical success %.0f%%.\n\n",
				a.StructuralSimilarity, a.SuccessProbability*100)
			for _, s := range a.AnalogousStrategies {
				fmt.Fprintf(&b, "- %s\n", s.Strategy)
			}
			b.WriteString("\n")
		}
	}

	if (tornado == nil || len(tornado.Results) == 0) && len(analogies) == 0 {
		b.WriteString("No stored results for this run.\n")
	}
	return b.String()
}

// ToHTML converts a markdown brief into a standalone HTML fragment.
func ToHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
