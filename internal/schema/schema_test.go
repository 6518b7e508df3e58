package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/recipe-service/internal/model"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestValidateMinimalRecipe(t *testing.T) {
	doc := decode(t, `{
		"name": "Toast",
		"ingredients": ["bread"],
		"instructions": ["toast it"]
	}`)
	assert.NoError(t, Validate(doc))
}

func TestValidateFullRecipe(t *testing.T) {
	doc := decode(t, `{
		"name": "Spaghetti Carbonara",
		"datePublished": "2020-03-14",
		"description": "Roman classic",
		"rating": 4.8,
		"prepTime": "00:15",
		"cookTime": "00:20",
		"ingredients": ["spaghetti", "guanciale", "eggs", "pecorino"],
		"instructions": ["boil pasta", "render guanciale", "combine off heat"],
		"nutrition": {"calories": 650, "servingSize": "1 plate"}
	}`)
	assert.NoError(t, Validate(doc))
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing name", `{"ingredients": ["bread"], "instructions": ["toast"]}`},
		{"missing ingredients", `{"name": "Toast", "instructions": ["toast"]}`},
		{"missing instructions", `{"name": "Toast", "ingredients": ["bread"]}`},
		{"empty ingredients", `{"name": "Toast", "ingredients": [], "instructions": ["toast"]}`},
		{"non-string ingredient", `{"name": "Toast", "ingredients": [1], "instructions": ["toast"]}`},
		{"rating as string", `{"name": "Toast", "ingredients": ["bread"], "instructions": ["toast"], "rating": "five"}`},
		{"fractional calories", `{"name": "Toast", "ingredients": ["bread"], "instructions": ["toast"], "nutrition": {"calories": 90.5}}`},
		{"unknown nutrition key", `{"name": "Toast", "ingredients": ["bread"], "instructions": ["toast"], "nutrition": {"fat": 3}}`},
		{"unknown property", `{"name": "Toast", "ingredients": ["bread"], "instructions": ["toast"], "author": "me"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(decode(t, tc.raw))
			assert.ErrorIs(t, err, model.ErrInvalid)
		})
	}
}

func TestValidateAcceptsIntegerCalories(t *testing.T) {
	// encoding/json decodes 90 to float64(90); the schema must still treat
	// it as an integer.
	doc := decode(t, `{
		"name": "Toast",
		"ingredients": ["bread"],
		"instructions": ["toast it"],
		"nutrition": {"calories": 90}
	}`)
	assert.NoError(t, Validate(doc))
}
