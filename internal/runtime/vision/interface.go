package vision

import "context"

// Match is one candidate species for an analyzed image.
type Match struct {
	Name       string  `json:"name"`
	StoneName  string  `json:"stone_name,omitempty"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// Metadata describes how an identification was produced.
type Metadata struct {
	ModelUsed         string `json:"model_used"`
	AnalysisTimestamp string `json:"analysis_timestamp"`
	ImageQualityScore int    `json:"image_quality_score"`
}

// Result is the parsed identification output of the vision model.
type Result struct {
	PrimaryMatch       Match    `json:"primary_match"`
	AlternativeMatches []Match  `json:"alternative_matches"`
	Reasoning          string   `json:"reasoning"`
	Metadata           Metadata `json:"metadata"`
}

// Identifier analyzes a gemstone photo and proposes candidate species.
type Identifier interface {
	Identify(ctx context.Context, image []byte, mimeType string) (*Result, error)
}
