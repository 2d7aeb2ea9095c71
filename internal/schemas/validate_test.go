package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() map[string]any {
	return map[string]any{
		"hero": map[string]any{
			"personal_info": map[string]any{
				"name":        "Thomas",
				"titles":      []string{"Developer"},
				"description": "Builds things for the web.",
			},
			"social_links": map[string]any{"email": "thomas@example.com"},
		},
		"experience": []any{
			map[string]any{
				"id":          "e1",
				"title":       "Data Engineer",
				"company":     "Nolimit Indonesia",
				"work_type":   "On-site",
				"location":    "Jakarta",
				"start_date":  "2023-12-11",
				"description": "Build automated extraction tools and data pipelines.",
				"skills":      []string{"Go"},
				"order":       0,
			},
		},
		"education": []any{},
		"skills": map[string]any{
			"Backend": []any{
				map[string]any{"id": "s1", "name": "Go", "logo_url": "https://x/go.svg", "proficiency_level": 5, "order": 0},
			},
		},
		"projects": []any{},
		"contact": map[string]any{
			"email_relay_config": map[string]any{},
			"social_links":       map[string]any{"email": "thomas@example.com"},
		},
	}
}

func marshal(t *testing.T, doc map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestValidateContent_ValidDocument(t *testing.T) {
	assert.NoError(t, ValidateContent(marshal(t, validDocument())))
}

func TestValidateContent_MissingSections(t *testing.T) {
	doc := validDocument()
	delete(doc, "contact")
	delete(doc, "skills")

	err := ValidateContent(marshal(t, doc))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.GreaterOrEqual(t, len(ve.Errors), 2)
}

func TestValidateContent_FieldViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc map[string]any)
	}{
		{
			name: "work type outside enum",
			mutate: func(doc map[string]any) {
				doc["experience"].([]any)[0].(map[string]any)["work_type"] = "Freelance"
			},
		},
		{
			name: "proficiency above range",
			mutate: func(doc map[string]any) {
				doc["skills"].(map[string]any)["Backend"].([]any)[0].(map[string]any)["proficiency_level"] = 6
			},
		},
		{
			name: "empty titles list",
			mutate: func(doc map[string]any) {
				doc["hero"].(map[string]any)["personal_info"].(map[string]any)["titles"] = []string{}
			},
		},
		{
			name: "short description",
			mutate: func(doc map[string]any) {
				doc["hero"].(map[string]any)["personal_info"].(map[string]any)["description"] = "short"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)

			err := ValidateContent(marshal(t, doc))
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidateContent_NotJSON(t *testing.T) {
	err := ValidateContent([]byte("not json at all"))
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
}
