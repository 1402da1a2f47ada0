package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionItem_KindOrdering(t *testing.T) {
	// A string item wins over every structured field, and degree wins over
	// role when a payload carries both.
	assert.Equal(t, ItemString, StringItem("Go").Kind())
	assert.Equal(t, ItemDegree, SectionItem{Degree: "BSc", Role: "Lead"}.Kind())
	assert.Equal(t, ItemRole, SectionItem{Role: "Lead", Text: "ignored"}.Kind())
	assert.Equal(t, ItemText, SectionItem{Text: "note"}.Kind())
	assert.Equal(t, ItemText, SectionItem{}.Kind())
}

func TestSectionItem_DecodeShapes(t *testing.T) {
	var items []SectionItem
	require.NoError(t, json.Unmarshal([]byte(`[
		"Plain",
		{"degree": "MSc"},
		{"role": "Lead", "company": "Acme"},
		{"text": "note"},
		42
	]`), &items))
	require.Len(t, items, 5)

	assert.Equal(t, ItemString, items[0].Kind())
	assert.Equal(t, "Plain", items[0].Text)
	assert.Equal(t, ItemDegree, items[1].Kind())
	assert.Equal(t, ItemRole, items[2].Kind())
	assert.Equal(t, ItemText, items[3].Kind())
	assert.Equal(t, ItemRaw, items[4].Kind())
	assert.Equal(t, "42", items[4].Raw())
}

func TestSectionItem_StringRoundTrip(t *testing.T) {
	// Plain strings must stay plain strings on re-encode, not become
	// {"text": ...} objects.
	out, err := json.Marshal([]SectionItem{StringItem("Go"), {Text: "note"}})
	require.NoError(t, err)
	assert.JSONEq(t, `["Go", {"text": "note"}]`, string(out))
}
