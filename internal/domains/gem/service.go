package gem

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/softmindsol/stone-identifier-be/internal/runtime/vision"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

var ErrGemstoneNotFound = errors.New("gemstone not found")

// AlternativeMatch is a lower-confidence candidate surfaced next to the
// primary identification, resolved against the reference table when
// possible.
type AlternativeMatch struct {
	Name       string   `json:"name"`
	Confidence float64  `json:"confidence"`
	ID         string   `json:"id,omitempty"`
	Albums     []string `json:"albums,omitempty"`
}

// DetailOverview groups the display sections assembled for a stone detail.
type DetailOverview struct {
	CurrentMarketRange     CurrentMarketRange     `json:"current_market_range"`
	Description            string                 `json:"description"`
	StoneProfile           StoneProfile           `json:"stone_profile"`
	Price                  Price                  `json:"price"`
	HowToSelect            string                 `json:"how_to_select"`
	HowToIdentify          HowToIdentify          `json:"how_to_identify"`
	GeographicalOccurrence GeographicalOccurrence `json:"geographical_occurrence"`
	PeopleOftenAsk         []FAQ                  `json:"people_often_ask"`
}

// PropertiesAndLore merges metaphysical properties with the history section.
type PropertiesAndLore struct {
	Properties
	History   string `json:"history"`
	Mythology string `json:"mythology"`
	Lore      string `json:"lore"`
}

// IdentificationResponse is the full identify/detail payload.
type IdentificationResponse struct {
	ID                 string             `json:"id,omitempty"`
	Name               string             `json:"name"`
	Confidence         float64            `json:"confidence"`
	VarietyOf          string             `json:"variety_of,omitempty"`
	KnownAs            []string           `json:"known_as,omitempty"`
	Albums             []string           `json:"albums,omitempty"`
	Tags               []Tag              `json:"tags,omitempty"`
	Rarity             *Rarity            `json:"rarity,omitempty"`
	QuickFacts         *QuickFacts        `json:"quick_facts,omitempty"`
	Overview           *DetailOverview    `json:"overview,omitempty"`
	Meanings           *Meanings          `json:"meanings,omitempty"`
	PropertiesAndLore  *PropertiesAndLore `json:"properties_and_lore,omitempty"`
	More               *More              `json:"more,omitempty"`
	AlternativeMatches []AlternativeMatch `json:"alternative_matches,omitempty"`
	Reasoning          string             `json:"reasoning,omitempty"`
	Metadata           *vision.Metadata   `json:"metadata,omitempty"`
	Status             string             `json:"status,omitempty"`
}

// GemService identifies stones from photos and serves reference details.
type GemService interface {
	IdentifyFromImage(ctx context.Context, image []byte, mimeType string) (*IdentificationResponse, error)
	GetDetails(ctx context.Context, id string) (*IdentificationResponse, error)
	GetByID(ctx context.Context, id string) (*Gemstone, error)
}

type gemService struct {
	repository GemstoneRepository
	identifier vision.Identifier
	logger     *Logger.Logger
}

// NewGemService creates a new gem service
func NewGemService(repository GemstoneRepository, identifier vision.Identifier, logger *Logger.Logger) GemService {
	return &gemService{
		repository: repository,
		identifier: identifier,
		logger:     logger,
	}
}

// IdentifyFromImage implements GemService
func (s *gemService) IdentifyFromImage(ctx context.Context, image []byte, mimeType string) (*IdentificationResponse, error) {
	aiResult, err := s.identifier.Identify(ctx, image, mimeType)
	if err != nil {
		return nil, err
	}

	primary, err := s.repository.FindByName(ctx, aiResult.PrimaryMatch.Name)
	if err != nil && !errors.Is(err, ErrGemstoneNotFound) {
		return nil, fmt.Errorf("failed to look up primary match: %w", err)
	}

	altNames := make([]string, 0, len(aiResult.AlternativeMatches))
	for _, m := range aiResult.AlternativeMatches {
		altNames = append(altNames, m.Name)
	}
	altGems, err := s.repository.FindManyByNames(ctx, altNames)
	if err != nil {
		s.logger.Errorf("failed to resolve alternative matches: %v", err)
		altGems = nil
	}
	alternatives := resolveAlternatives(aiResult.AlternativeMatches, altGems)

	if primary == nil {
		// AI-only response when the stone has no reference entry yet
		return &IdentificationResponse{
			Name:               aiResult.PrimaryMatch.Name,
			Confidence:         aiResult.PrimaryMatch.Confidence,
			Reasoning:          aiResult.Reasoning,
			Metadata:           &aiResult.Metadata,
			AlternativeMatches: alternatives,
			Status:             "not_found",
		}, nil
	}

	resp := buildDetailResponse(primary)
	resp.Confidence = aiResult.PrimaryMatch.Confidence
	resp.Reasoning = aiResult.Reasoning
	resp.Metadata = &aiResult.Metadata
	resp.AlternativeMatches = alternatives
	resp.Status = "found"
	return resp, nil
}

// GetDetails implements GemService
func (s *gemService) GetDetails(ctx context.Context, id string) (*IdentificationResponse, error) {
	g, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := buildDetailResponse(g)
	resp.ID = g.ID
	resp.Confidence = 1.0
	resp.Metadata = &vision.Metadata{
		ModelUsed:         "database-lookup",
		AnalysisTimestamp: time.Now().UTC().Format(time.RFC3339),
		ImageQualityScore: 10,
	}
	return resp, nil
}

// GetByID implements GemService
func (s *gemService) GetByID(ctx context.Context, id string) (*Gemstone, error) {
	return s.repository.GetByID(ctx, id)
}

func buildDetailResponse(g *Gemstone) *IdentificationResponse {
	sec := g.Sections
	return &IdentificationResponse{
		Name:       g.StoneName,
		VarietyOf:  g.VarietyOf,
		KnownAs:    g.KnownAs,
		Albums:     g.Albums,
		Tags:       g.Tags,
		Rarity:     &sec.Overview.Rarity,
		QuickFacts: &sec.Overview.QuickFacts,
		Overview: &DetailOverview{
			CurrentMarketRange:     sec.Overview.CurrentMarketRange,
			Description:            sec.Overview.Description,
			StoneProfile:           sec.Overview.StoneProfile,
			Price:                  sec.Overview.Price,
			HowToSelect:            sec.SelectionIdentification.HowToSelect,
			HowToIdentify:          sec.SelectionIdentification.HowToIdentify,
			GeographicalOccurrence: sec.GeographicalOccurrence,
			PeopleOftenAsk:         sec.PeopleOftenAsk,
		},
		Meanings: &sec.Meanings,
		PropertiesAndLore: &PropertiesAndLore{
			Properties: sec.Properties,
			History:    sec.HistoryLore.History,
			Mythology:  sec.HistoryLore.Mythology,
			Lore:       sec.HistoryLore.Lore,
		},
		More: &sec.More,
	}
}

func resolveAlternatives(matches []vision.Match, gems []Gemstone) []AlternativeMatch {
	out := make([]AlternativeMatch, 0, len(matches))
	for _, m := range matches {
		alt := AlternativeMatch{Name: m.Name, Confidence: m.Confidence}
		for i := range gems {
			if matchesName(&gems[i], m.Name) {
				alt.ID = gems[i].ID
				alt.Albums = gems[i].Albums
				break
			}
		}
		out = append(out, alt)
	}
	return out
}

func matchesName(g *Gemstone, name string) bool {
	if strings.EqualFold(g.StoneName, name) {
		return true
	}
	for _, alias := range g.KnownAs {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}
