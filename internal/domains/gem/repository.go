package gem

import (
	"context"
	"time"
)

// Tag is a display label attached to a gemstone.
type Tag struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

type Badge struct {
	Text string `json:"text"`
}

type Rarity struct {
	Grade       string `json:"grade"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Badge       Badge  `json:"badge"`
}

// QuickFacts keeps the original display-facing keys so mobile clients render
// them without remapping.
type QuickFacts struct {
	CrystalSystem  string `json:"Crystal System,omitempty"`
	Transparency   string `json:"Transparency,omitempty"`
	Color          string `json:"Color,omitempty"`
	Classification string `json:"Classification,omitempty"`
	PrimaryUses    string `json:"Primary Uses,omitempty"`
	Hardness       string `json:"Hardness,omitempty"`
}

type CurrentMarketRange struct {
	PriceRange string `json:"price_range"`
	Info       string `json:"info"`
}

type ProfileGrade struct {
	Value string `json:"value"`
	Grade string `json:"grade"`
}

type StoneProfile struct {
	Rarity         ProfileGrade `json:"rarity"`
	Durability     ProfileGrade `json:"durability"`
	Significance   ProfileGrade `json:"significance"`
	Aesthetics     ProfileGrade `json:"aesthetics"`
	OverallProfile ProfileGrade `json:"overall_profile"`
}

type PriceRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
	Unit     string  `json:"unit"`
}

type Price struct {
	Rough   PriceRange `json:"rough"`
	Tumbled PriceRange `json:"tumbled"`
	Gem     PriceRange `json:"gem"`
}

type Overview struct {
	Rarity             Rarity             `json:"rarity"`
	QuickFacts         QuickFacts         `json:"quick_facts"`
	CurrentMarketRange CurrentMarketRange `json:"current_market_range"`
	Description        string             `json:"description"`
	StoneProfile       StoneProfile       `json:"stone_profile"`
	Price              Price              `json:"price"`
}

type IdentificationItem struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

type HowToIdentify struct {
	Color  IdentificationItem `json:"color"`
	Luster IdentificationItem `json:"luster"`
}

type SelectionIdentification struct {
	HowToSelect   string        `json:"how_to_select"`
	HowToIdentify HowToIdentify `json:"how_to_identify"`
}

type Location struct {
	Country string `json:"country"`
	Region  string `json:"region"`
}

type GeographicalOccurrence struct {
	Locations []Location `json:"locations"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type PhysicalProperties struct {
	CrystalSystem string `json:"crystal_system"`
	Color         string `json:"color"`
	Luster        string `json:"luster"`
}

type ChemicalProperties struct {
	Classification string   `json:"classification"`
	Formula        string   `json:"formula"`
	ElementsListed []string `json:"elements_listed"`
}

type Meanings struct {
	PhysicalProperties PhysicalProperties `json:"physical_properties"`
	ChemicalProperties ChemicalProperties `json:"chemical_properties"`
	Formation          string             `json:"formation"`
	AgeDistribution    string             `json:"age_distribution"`
	Durability         string             `json:"durability"`
	ScratchResistance  string             `json:"scratch_resistance"`
	Toughness          string             `json:"toughness"`
	Stability          string             `json:"stability"`
}

type QualityItem struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Properties struct {
	HealingProperties []string      `json:"healing_properties"`
	Qualities         []QualityItem `json:"qualities"`
	Chakras           []QualityItem `json:"chakras"`
	ZodiacSigns       []QualityItem `json:"zodiac_signs"`
	Elements          []QualityItem `json:"elements"`
}

type HistoryLore struct {
	History   string `json:"history"`
	Mythology string `json:"mythology"`
	Lore      string `json:"lore"`
}

type Caution struct {
	Warning          string `json:"warning"`
	Information      string `json:"information"`
	ShortDescription string `json:"short_description"`
}

type CareTip struct {
	Title string `json:"title"`
	Tip   string `json:"tip"`
}

type SimilarStone struct {
	StoneName   string   `json:"stone_name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Differences []string `json:"differences"`
}

type More struct {
	Caution       Caution        `json:"caution"`
	Usage         string         `json:"usage"`
	CareTips      []CareTip      `json:"care_tips"`
	SimilarStones []SimilarStone `json:"similar_stones"`
}

// Sections is the full reference document for one stone.
type Sections struct {
	Overview                Overview                `json:"overview"`
	SelectionIdentification SelectionIdentification `json:"selection_identification"`
	GeographicalOccurrence  GeographicalOccurrence  `json:"geographical_occurrence"`
	PeopleOftenAsk          []FAQ                   `json:"people_often_ask"`
	Meanings                Meanings                `json:"meanings"`
	Properties              Properties              `json:"properties"`
	HistoryLore             HistoryLore             `json:"history_lore"`
	More                    More                    `json:"more"`
}

// Gemstone is the canonical reference entry for one mineral or variety.
type Gemstone struct {
	ID        string    `json:"id"`
	StoneName string    `json:"stone_name"`
	Albums    []string  `json:"albums"`
	VarietyOf string    `json:"variety_of,omitempty"`
	KnownAs   []string  `json:"known_as,omitempty"`
	Tags      []Tag     `json:"tags"`
	Sections  Sections  `json:"sections"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GemstoneRepository defines read access to the gemstone reference data.
type GemstoneRepository interface {
	// Get gemstone by ID
	GetByID(ctx context.Context, id string) (*Gemstone, error)

	// Exact-name lookup against stone_name or any known_as alias,
	// case-insensitive
	FindByName(ctx context.Context, name string) (*Gemstone, error)

	// Batch variant of FindByName for alternative-match resolution
	FindManyByNames(ctx context.Context, names []string) ([]Gemstone, error)

	// Paginated walk over the whole table in stable order; an empty page
	// signals end of data
	ListPage(ctx context.Context, offset, limit int) ([]Gemstone, error)
}
