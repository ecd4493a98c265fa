package embedding

import (
	"regexp"
	"strings"

	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
)

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// BuildSearchableText flattens a gemstone's descriptive fields into one
// normalized lowercase blob used as embedding input. Deterministic, no side
// effects; a record with no populated fields yields "".
func BuildSearchableText(g *gem.Gemstone) string {
	fields := make([]string, 0, 16)
	fields = append(fields, g.StoneName, g.VarietyOf)
	fields = append(fields, g.KnownAs...)
	for _, t := range g.Tags {
		fields = append(fields, t.Name)
	}

	ov := g.Sections.Overview
	fields = append(fields,
		ov.Description,
		ov.QuickFacts.Color,
		ov.QuickFacts.CrystalSystem,
		ov.QuickFacts.Classification,
		ov.QuickFacts.PrimaryUses,
		ov.Rarity.Label,
		ov.Rarity.Description,
	)

	fields = append(fields, g.Sections.Properties.HealingProperties...)
	for _, q := range g.Sections.Properties.Qualities {
		fields = append(fields, q.Name)
	}
	for _, l := range g.Sections.GeographicalOccurrence.Locations {
		fields = append(fields, l.Country+" "+l.Region)
	}

	kept := fields[:0]
	for _, f := range fields {
		if f != "" {
			kept = append(kept, f)
		}
	}

	text := strings.ToLower(strings.Join(kept, " "))
	text = nonWordRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
