package embedding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
)

func TestBuildSearchableText_EmptyRecord(t *testing.T) {
	assert.Equal(t, "", BuildSearchableText(&gem.Gemstone{}))
}

func TestBuildSearchableText_NormalizesCaseAndPunctuation(t *testing.T) {
	g := &gem.Gemstone{
		StoneName: "Lapis Lazuli",
		VarietyOf: "Lazurite",
		KnownAs:   []string{"Blue Stone!"},
	}
	g.Sections.Overview.Description = "A deep-blue metamorphic rock, prized since antiquity."

	got := BuildSearchableText(g)

	assert.Equal(t, strings.ToLower(got), got)
	assert.NotContains(t, got, ",")
	assert.NotContains(t, got, "!")
	assert.NotContains(t, got, "-")
	assert.NotContains(t, got, "  ", "runs of whitespace must collapse")
	assert.False(t, strings.HasPrefix(got, " "))
	assert.False(t, strings.HasSuffix(got, " "))
	assert.Contains(t, got, "lapis lazuli")
	assert.Contains(t, got, "blue stone")
	assert.Contains(t, got, "deep blue metamorphic rock")
}

func TestBuildSearchableText_FieldOrderIsStable(t *testing.T) {
	g := &gem.Gemstone{
		StoneName: "Amethyst",
		Tags:      []gem.Tag{{Name: "Quartz Family"}},
	}
	g.Sections.Overview.QuickFacts.Color = "Purple"
	g.Sections.Overview.Rarity.Label = "Common"
	g.Sections.Properties.HealingProperties = []string{"Calming"}
	g.Sections.GeographicalOccurrence.Locations = []gem.Location{
		{Country: "Brazil", Region: "Minas Gerais"},
	}

	want := "amethyst quartz family purple common calming brazil minas gerais"
	assert.Equal(t, want, BuildSearchableText(g))
}

func TestBuildSearchableText_Deterministic(t *testing.T) {
	g := &gem.Gemstone{StoneName: "Opal", KnownAs: []string{"Fire Opal", "Girasol"}}
	g.Sections.Overview.Description = "Hydrated amorphous silica"

	first := BuildSearchableText(g)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BuildSearchableText(g))
	}
}

func TestBuildSearchableText_SkipsEmptyFields(t *testing.T) {
	g := &gem.Gemstone{StoneName: "Jade"}
	g.Sections.Overview.QuickFacts.Color = ""
	g.Sections.Overview.QuickFacts.Classification = "Silicate"

	assert.Equal(t, "jade silicate", BuildSearchableText(g))
}
