package harness

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaSource string

// schemaDefinition is the definition every scenario must satisfy.
const schemaDefinition = "#Scenario"

// validateSchema unifies the scenario with the embedded CUE schema.
// It catches value-level errors the Go checks leave open: name format,
// enum membership, and duplicate counts below two.
func validateSchema(s *Scenario) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile scenario schema: %w", err)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(s.Name+".json"))
	if err := value.Err(); err != nil {
		return fmt.Errorf("load scenario into CUE: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath(schemaDefinition)).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
