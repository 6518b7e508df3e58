// Package schema validates external recipe documents against the fixed
// recipe JSON Schema before they reach the data model.
package schema

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/platewise/recipe-service/internal/model"
)

//go:embed recipe-v1.0.json
var recipeSchemaJSON []byte

var recipeSchema *gojsonschema.Schema

func init() {
	var err error
	recipeSchema, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(recipeSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("schema: compiling recipe-v1.0.json: %v", err))
	}
}

// Validate checks a decoded recipe document against the recipe schema.
// Failures carry model.ErrInvalid so callers can classify them as rejected
// input rather than storage errors.
func Validate(doc map[string]any) error {
	result, err := recipeSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: JSON Schema validation failed: %v", model.ErrInvalid, err)
	}
	if !result.Valid() {
		return fmt.Errorf("%w: JSON Schema validation failed: %s", model.ErrInvalid, result.Errors()[0])
	}
	return nil
}
