package transfer

import (
	"strings"
)

// termMappings rewrites abstract strategic vocabulary into each domain's own
// terms. Keys are matched case-insensitively as whole words in the source
// core-logic text.
var termMappings = map[string]map[string]string{
	"attack": {
		"military":  "assault",
		"business":  "market entry",
		"politics":  "campaign offensive",
		"sports":    "offensive push",
		"evolution": "range invasion",
	},
	"opponent": {
		"military":  "enemy force",
		"business":  "competitor",
		"politics":  "rival faction",
		"sports":    "opposing team",
		"evolution": "competing species",
	},
	"territory": {
		"military":  "ground",
		"business":  "market segment",
		"politics":  "constituency",
		"sports":    "court position",
		"evolution": "habitat",
	},
	"resources": {
		"military":  "reserves and materiel",
		"business":  "capital and talent",
		"politics":  "political capital",
		"sports":    "roster minutes",
		"evolution": "metabolic budget",
	},
	"position": {
		"military":  "defensive line",
		"business":  "market position",
		"politics":  "policy stance",
		"sports":    "formation",
		"evolution": "niche",
	},
	"force": {
		"military":  "combat power",
		"business":  "go-to-market capacity",
		"politics":  "voting bloc",
		"sports":    "lineup strength",
		"evolution": "population pressure",
	},
}

// rewriteForDomain substitutes mapped terms for the target domain. Unmapped
// text passes through untouched; unknown domains get no substitutions.
func rewriteForDomain(text, targetDomain string) string {
	out := text
	for generic, byDomain := range termMappings {
		replacement, ok := byDomain[targetDomain]
		if !ok {
			continue
		}
		out = replaceWord(out, generic, replacement)
	}
	return out
}

// replaceWord replaces whole-word, case-insensitive occurrences of old.
func replaceWord(text, old, repl string) string {
	var b strings.Builder
	words := strings.Fields(text)
	for i, w := range words {
		trimmed := strings.Trim(w, ",.;:'\"")
		if strings.EqualFold(trimmed, old) {
			w = strings.Replace(w, trimmed, repl, 1)
		} else if strings.EqualFold(trimmed, old+"s") {
			w = strings.Replace(w, trimmed, repl, 1)
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String()
}

// jaccard computes set overlap of two string slices, used for
// cultural-factor alignment.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := make(map[string]bool, len(a))
	for _, s := range a {
		setA[strings.ToLower(s)] = true
	}
	setB := make(map[string]bool, len(b))
	for _, s := range b {
		setB[strings.ToLower(s)] = true
	}
	inter := 0
	for s := range setA {
		if setB[s] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}
