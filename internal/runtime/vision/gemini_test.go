package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResult_PlainJSON(t *testing.T) {
	result, err := parseResult(`{
		"primary_match": {"name": "Amethyst", "confidence": 0.91},
		"alternative_matches": [{"name": "Fluorite", "confidence": 0.3}],
		"reasoning": "purple coloration"
	}`)
	require.NoError(t, err)
	assert.Equal(t, "Amethyst", result.PrimaryMatch.Name)
	assert.InDelta(t, 0.91, result.PrimaryMatch.Confidence, 1e-9)
	require.Len(t, result.AlternativeMatches, 1)
	assert.Equal(t, "purple coloration", result.Reasoning)
}

func TestParseResult_CodeFenced(t *testing.T) {
	result, err := parseResult("```json\n{\"primary_match\": {\"name\": \"Jade\", \"confidence\": 0.7}}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Jade", result.PrimaryMatch.Name)
}

func TestParseResult_JSONBuriedInProse(t *testing.T) {
	result, err := parseResult(`Here is my analysis of the stone:
{"primary_match": {"name": "Opal", "confidence": 0.6}}
Let me know if you need anything else.`)
	require.NoError(t, err)
	assert.Equal(t, "Opal", result.PrimaryMatch.Name)
}

func TestParseResult_StoneNameFallback(t *testing.T) {
	result, err := parseResult(`{
		"primary_match": {"stone_name": "Citrine", "confidence": 0.8, "reasoning": "yellow quartz"},
		"alternative_matches": [{"stone_name": "Topaz", "confidence": 0.2}]
	}`)
	require.NoError(t, err)
	assert.Equal(t, "Citrine", result.PrimaryMatch.Name)
	assert.Equal(t, "Topaz", result.AlternativeMatches[0].Name)
	assert.Equal(t, "yellow quartz", result.Reasoning, "top-level reasoning falls back to the primary match")
}

func TestParseResult_NilAlternativesBecomeEmptySlice(t *testing.T) {
	result, err := parseResult(`{"primary_match": {"name": "Quartz", "confidence": 0.5}}`)
	require.NoError(t, err)
	assert.NotNil(t, result.AlternativeMatches)
	assert.Empty(t, result.AlternativeMatches)
}

func TestParseResult_Invalid(t *testing.T) {
	_, err := parseResult("the model refused to answer")
	assert.Error(t, err)

	_, err = parseResult(`{"primary_match": {"confidence": 0.5}}`)
	assert.Error(t, err, "missing name must be rejected")

	_, err = parseResult(`{"primary_match": {"name": "Quartz", "confidence": 1.5}}`)
	assert.Error(t, err, "confidence outside [0,1] must be rejected")
}

func TestEstimateImageQuality(t *testing.T) {
	assert.Equal(t, 3, estimateImageQuality(10*1024))
	assert.Equal(t, 5, estimateImageQuality(100*1024))
	assert.Equal(t, 7, estimateImageQuality(300*1024))
	assert.Equal(t, 8, estimateImageQuality(700*1024))
	assert.Equal(t, 9, estimateImageQuality(2*1024*1024))
}
