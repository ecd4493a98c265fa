package gem

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softmindsol/stone-identifier-be/internal/runtime/vision"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

type stubGemRepo struct {
	stones []Gemstone
}

func (s *stubGemRepo) GetByID(ctx context.Context, id string) (*Gemstone, error) {
	for i := range s.stones {
		if s.stones[i].ID == id {
			return &s.stones[i], nil
		}
	}
	return nil, ErrGemstoneNotFound
}

func (s *stubGemRepo) FindByName(ctx context.Context, name string) (*Gemstone, error) {
	for i := range s.stones {
		if matchesName(&s.stones[i], name) {
			return &s.stones[i], nil
		}
	}
	return nil, ErrGemstoneNotFound
}

func (s *stubGemRepo) FindManyByNames(ctx context.Context, names []string) ([]Gemstone, error) {
	var out []Gemstone
	for _, name := range names {
		if g, err := s.FindByName(ctx, name); err == nil {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (s *stubGemRepo) ListPage(ctx context.Context, offset, limit int) ([]Gemstone, error) {
	return nil, nil
}

type stubIdentifier struct {
	result *vision.Result
	err    error
}

func (s *stubIdentifier) Identify(ctx context.Context, image []byte, mimeType string) (*vision.Result, error) {
	return s.result, s.err
}

func referenceStone(id, name string, aliases ...string) Gemstone {
	g := Gemstone{ID: id, StoneName: name, KnownAs: aliases, Albums: []string{name + " album"}}
	g.Sections.Overview.Description = name + " description"
	g.Sections.Overview.Rarity.Grade = "B"
	return g
}

func TestIdentifyFromImage_FoundInReference(t *testing.T) {
	repo := &stubGemRepo{stones: []Gemstone{
		referenceStone("id-1", "Amethyst"),
		referenceStone("id-2", "Citrine"),
	}}
	identifier := &stubIdentifier{result: &vision.Result{
		PrimaryMatch: vision.Match{Name: "Amethyst", Confidence: 0.92},
		AlternativeMatches: []vision.Match{
			{Name: "Citrine", Confidence: 0.45},
			{Name: "Unobtainium", Confidence: 0.12},
		},
		Reasoning: "purple hue and hexagonal habit",
		Metadata:  vision.Metadata{ModelUsed: "test-vision", ImageQualityScore: 7},
	}}
	svc := NewGemService(repo, identifier, Logger.Nop())

	resp, err := svc.IdentifyFromImage(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "found", resp.Status)
	assert.Equal(t, "Amethyst", resp.Name)
	assert.InDelta(t, 0.92, resp.Confidence, 1e-9)
	assert.Equal(t, "purple hue and hexagonal habit", resp.Reasoning)
	require.NotNil(t, resp.Overview)
	assert.Equal(t, "Amethyst description", resp.Overview.Description)

	require.Len(t, resp.AlternativeMatches, 2)
	assert.Equal(t, "id-2", resp.AlternativeMatches[0].ID, "known alternative resolves to its reference entry")
	assert.Empty(t, resp.AlternativeMatches[1].ID, "unknown alternative keeps AI data only")
}

func TestIdentifyFromImage_NotInReference(t *testing.T) {
	repo := &stubGemRepo{}
	identifier := &stubIdentifier{result: &vision.Result{
		PrimaryMatch: vision.Match{Name: "Painite", Confidence: 0.55},
		Reasoning:    "rare borate features",
	}}
	svc := NewGemService(repo, identifier, Logger.Nop())

	resp, err := svc.IdentifyFromImage(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "not_found", resp.Status)
	assert.Equal(t, "Painite", resp.Name)
	assert.Nil(t, resp.Overview, "no reference entry means no detail sections")
}

func TestIdentifyFromImage_MatchesAlias(t *testing.T) {
	repo := &stubGemRepo{stones: []Gemstone{
		referenceStone("id-1", "Corundum", "Ruby", "Sapphire"),
	}}
	identifier := &stubIdentifier{result: &vision.Result{
		PrimaryMatch: vision.Match{Name: "ruby", Confidence: 0.8},
	}}
	svc := NewGemService(repo, identifier, Logger.Nop())

	resp, err := svc.IdentifyFromImage(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "found", resp.Status)
	assert.Equal(t, "Corundum", resp.Name, "alias lookups return the canonical entry")
}

func TestIdentifyFromImage_ProviderError(t *testing.T) {
	identifier := &stubIdentifier{err: errors.New("model timeout")}
	svc := NewGemService(&stubGemRepo{}, identifier, Logger.Nop())

	_, err := svc.IdentifyFromImage(context.Background(), []byte("img"), "image/jpeg")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "model timeout"))
}

func TestGetDetails(t *testing.T) {
	repo := &stubGemRepo{stones: []Gemstone{referenceStone("id-1", "Amethyst")}}
	svc := NewGemService(repo, &stubIdentifier{}, Logger.Nop())

	resp, err := svc.GetDetails(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", resp.ID)
	assert.Equal(t, "Amethyst", resp.Name)
	assert.Equal(t, 1.0, resp.Confidence)
	require.NotNil(t, resp.Rarity)
	assert.Equal(t, "B", resp.Rarity.Grade)

	_, err = svc.GetDetails(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrGemstoneNotFound)
}
