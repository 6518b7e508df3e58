package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid classifies every validation failure: empty required fields,
// schema mismatches, malformed projections. Callers branch on it with
// errors.Is to distinguish bad input from storage failures.
var ErrInvalid = errors.New("invalid recipe")

// Nutrition holds the optional nutrition facts of a recipe. Pointer fields
// distinguish absent from zero.
type Nutrition struct {
	Calories    *int64
	ServingSize *string
}

func (n Nutrition) isEmpty() bool {
	return n.Calories == nil && n.ServingSize == nil
}

// RecipeEntry is the canonical in-process representation of one recipe.
// name, ingredients and instructions are always present and non-empty;
// the remaining fields start absent and, once set, cannot be cleared.
type RecipeEntry struct {
	name          string
	datePublished *string
	description   *string
	rating        *float64
	prepTime      *string
	cookTime      *string
	ingredients   []string
	instructions  []string
	nutrition     *Nutrition
}

// New constructs a RecipeEntry from its required fields.
func New(name string, ingredients, instructions []string) (*RecipeEntry, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name has invalid value %q", ErrInvalid, name)
	}
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("%w: ingredients has invalid value %v", ErrInvalid, ingredients)
	}
	if len(instructions) == 0 {
		return nil, fmt.Errorf("%w: instructions has invalid value %v", ErrInvalid, instructions)
	}
	return &RecipeEntry{
		name:         name,
		ingredients:  append([]string(nil), ingredients...),
		instructions: append([]string(nil), instructions...),
	}, nil
}

func (r *RecipeEntry) Name() string { return r.name }

// Ingredients returns a copy; mutating it does not affect the entry.
func (r *RecipeEntry) Ingredients() []string {
	return append([]string(nil), r.ingredients...)
}

func (r *RecipeEntry) Instructions() []string {
	return append([]string(nil), r.instructions...)
}

func (r *RecipeEntry) DatePublished() (string, bool) { return strValue(r.datePublished) }
func (r *RecipeEntry) Description() (string, bool)   { return strValue(r.description) }
func (r *RecipeEntry) PrepTime() (string, bool)      { return strValue(r.prepTime) }
func (r *RecipeEntry) CookTime() (string, bool)      { return strValue(r.cookTime) }

func (r *RecipeEntry) Rating() (float64, bool) {
	if r.rating == nil {
		return 0, false
	}
	return *r.rating, true
}

func (r *RecipeEntry) Nutrition() (Nutrition, bool) {
	if r.nutrition == nil {
		return Nutrition{}, false
	}
	return *r.nutrition, true
}

func (r *RecipeEntry) SetName(v string) error {
	if v == "" {
		return fmt.Errorf("%w: name has invalid value %q", ErrInvalid, v)
	}
	r.name = v
	return nil
}

func (r *RecipeEntry) SetIngredients(v []string) error {
	if len(v) == 0 {
		return fmt.Errorf("%w: ingredients has invalid value %v", ErrInvalid, v)
	}
	r.ingredients = append([]string(nil), v...)
	return nil
}

func (r *RecipeEntry) SetInstructions(v []string) error {
	if len(v) == 0 {
		return fmt.Errorf("%w: instructions has invalid value %v", ErrInvalid, v)
	}
	r.instructions = append([]string(nil), v...)
	return nil
}

func (r *RecipeEntry) SetDatePublished(v string) error {
	return setStr(&r.datePublished, "datePublished", v)
}

func (r *RecipeEntry) SetDescription(v string) error {
	return setStr(&r.description, "description", v)
}

func (r *RecipeEntry) SetPrepTime(v string) error {
	return setStr(&r.prepTime, "prepTime", v)
}

func (r *RecipeEntry) SetCookTime(v string) error {
	return setStr(&r.cookTime, "cookTime", v)
}

func (r *RecipeEntry) SetRating(v float64) {
	r.rating = &v
}

func (r *RecipeEntry) SetNutrition(v Nutrition) error {
	if v.isEmpty() {
		return fmt.Errorf("%w: nutrition has invalid value %+v", ErrInvalid, v)
	}
	n := v
	r.nutrition = &n
	return nil
}

// Projection emits the external representation: a mapping containing only
// the fields that are present. FromProjection reconstructs an equal entry
// from it.
func (r *RecipeEntry) Projection() map[string]any {
	d := map[string]any{
		"name":         r.name,
		"ingredients":  r.Ingredients(),
		"instructions": r.Instructions(),
	}
	if r.datePublished != nil {
		d["datePublished"] = *r.datePublished
	}
	if r.description != nil {
		d["description"] = *r.description
	}
	if r.rating != nil {
		d["rating"] = *r.rating
	}
	if r.prepTime != nil {
		d["prepTime"] = *r.prepTime
	}
	if r.cookTime != nil {
		d["cookTime"] = *r.cookTime
	}
	if r.nutrition != nil {
		n := map[string]any{}
		if r.nutrition.Calories != nil {
			n["calories"] = *r.nutrition.Calories
		}
		if r.nutrition.ServingSize != nil {
			n["servingSize"] = *r.nutrition.ServingSize
		}
		d["nutrition"] = n
	}
	return d
}

// FromProjection is the inverse of Projection. It also accepts any decoded
// JSON document conforming to the recipe schema, where encoding/json has
// produced []any and float64 values.
func FromProjection(doc map[string]any) (*RecipeEntry, error) {
	name, _ := doc["name"].(string)
	ingredients, err := stringSlice(doc["ingredients"], "ingredients")
	if err != nil {
		return nil, err
	}
	instructions, err := stringSlice(doc["instructions"], "instructions")
	if err != nil {
		return nil, err
	}

	r, err := New(name, ingredients, instructions)
	if err != nil {
		return nil, err
	}

	for _, f := range []struct {
		key string
		set func(string) error
	}{
		{"datePublished", r.SetDatePublished},
		{"description", r.SetDescription},
		{"prepTime", r.SetPrepTime},
		{"cookTime", r.SetCookTime},
	} {
		if v, ok := doc[f.key]; ok {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s has invalid value %v", ErrInvalid, f.key, v)
			}
			if err := f.set(s); err != nil {
				return nil, err
			}
		}
	}

	if v, ok := doc["rating"]; ok {
		f, ok := floatValue(v)
		if !ok {
			return nil, fmt.Errorf("%w: rating has invalid value %v", ErrInvalid, v)
		}
		r.SetRating(f)
	}

	if v, ok := doc["nutrition"]; ok {
		raw, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: nutrition has invalid value %v", ErrInvalid, v)
		}
		var n Nutrition
		if c, ok := raw["calories"]; ok {
			i, ok := intValue(c)
			if !ok {
				return nil, fmt.Errorf("%w: calories has invalid value %v", ErrInvalid, c)
			}
			n.Calories = &i
		}
		if s, ok := raw["servingSize"]; ok {
			str, ok := s.(string)
			if !ok {
				return nil, fmt.Errorf("%w: servingSize has invalid value %v", ErrInvalid, s)
			}
			n.ServingSize = &str
		}
		if !n.isEmpty() {
			if err := r.SetNutrition(n); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

func strValue(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

func setStr(field **string, name, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s has invalid value %q", ErrInvalid, name, v)
	}
	s := v
	*field = &s
	return nil
}

func stringSlice(v any, name string) ([]string, error) {
	switch vv := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return vv, nil
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s has invalid value %v", ErrInvalid, name, v)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s has invalid value %v", ErrInvalid, name, v)
	}
}

func floatValue(v any) (float64, bool) {
	switch vv := v.(type) {
	case float64:
		return vv, true
	case int:
		return float64(vv), true
	case int64:
		return float64(vv), true
	}
	return 0, false
}

func intValue(v any) (int64, bool) {
	switch vv := v.(type) {
	case int64:
		return vv, true
	case int:
		return int64(vv), true
	case float64:
		if vv == math.Trunc(vv) {
			return int64(vv), true
		}
	}
	return 0, false
}
