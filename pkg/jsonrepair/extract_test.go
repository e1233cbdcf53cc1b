package jsonrepair

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/pkg/utils"
)

func TestExtractPlainObject(t *testing.T) {
	doc, err := Extract(`{"destination":"Goa","days":3}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"destination":"Goa","days":3}`, string(doc))
}

func TestExtractFencedObject(t *testing.T) {
	raw := "```json\n{\"destination\": \"Goa\", \"days\": 3}\n```"
	doc, err := Extract(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"destination":"Goa","days":3}`, string(doc))
}

func TestExtractBareFence(t *testing.T) {
	raw := "```\n{\"ok\": true}\n```"
	doc, err := Extract(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(doc))
}

func TestExtractSurroundingProse(t *testing.T) {
	raw := `Sure! Your itinerary is below.
{"destination": "Paris", "days": 2}
Let me know if you need changes.`
	doc, err := Extract(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"destination":"Paris","days":2}`, string(doc))
}

func TestExtractKnownPrefix(t *testing.T) {
	raw := `I could not fit everything { sorry }. Here is the JSON: {"a": 1} trailing notes follow }`
	doc, err := Extract(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(doc))
}

func TestExtractPrefersLongestCandidate(t *testing.T) {
	raw := `{"partial": } broken {"destination": "Rome", "days": [1, 2]} {"x":1}`
	doc, err := Extract(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"destination":"Rome","days":[1,2]}`, string(doc))
}

func TestExtractBracesInsideStrings(t *testing.T) {
	raw := `noise {"tip": "pack {light} bags", "days": 1} noise`
	doc, err := Extract(raw)
	require.NoError(t, err)

	var got struct {
		Tip  string `json:"tip"`
		Days int    `json:"days"`
	}
	require.NoError(t, json.Unmarshal(doc, &got))
	assert.Equal(t, "pack {light} bags", got.Tip)
}

func TestExtractRepairsTruncatedOutput(t *testing.T) {
	raw := `{"destination": "Goa", "summary": "Beach trip", "packingList": ["sunscreen", "hat"`
	doc, err := Extract(raw)
	require.NoError(t, err)

	var got struct {
		Destination string   `json:"destination"`
		PackingList []string `json:"packingList"`
	}
	require.NoError(t, json.Unmarshal(doc, &got))
	assert.Equal(t, "Goa", got.Destination)
	assert.Equal(t, []string{"sunscreen", "hat"}, got.PackingList)
}

func TestExtractTrailingCommaBeforeCut(t *testing.T) {
	raw := `{"destination": "Goa", "summary": "Beach trip",`
	doc, err := Extract(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"destination":"Goa","summary":"Beach trip"}`, string(doc))
}

func TestExtractTruncatedPlanFallsBackToInnerObject(t *testing.T) {
	// A plan cut mid-array still contains complete day objects; candidate
	// enumeration recovers the longest of them before repair runs.
	raw := `{"days": [{"day": 1, "theme": "beaches"}, {"day": 2, "theme": "`
	doc, err := Extract(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":1,"theme":"beaches"}`, string(doc))
}

func TestCloseTruncatedAppendsBracketsThenBraces(t *testing.T) {
	fixed := closeTruncated(`{"a": [1, 2`)
	assert.Equal(t, `{"a": [1, 2]}`, fixed)
	assert.True(t, json.Valid([]byte(fixed)))
}

func TestExtractSalvagesProseTail(t *testing.T) {
	raw := `{"destination": "Lisbon"} I hope this helps with your trip planning!`
	doc, err := Extract(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"destination":"Lisbon"}`, string(doc))
}

func TestExtractNoJSONAtAll(t *testing.T) {
	raw := "no json here at all"
	doc, err := Extract(raw)
	require.Error(t, err)
	assert.Nil(t, doc)

	var extractErr *utils.ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, raw, extractErr.Raw)
}

func TestExtractEmptyInput(t *testing.T) {
	_, err := Extract("")
	require.Error(t, err)

	var extractErr *utils.ExtractionError
	assert.ErrorAs(t, err, &extractErr)
}
