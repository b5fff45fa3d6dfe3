package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/mockround/internal/interview"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://mockround/catalog.json"

// ValidationError reports a catalog that failed schema or structural
// checks.
type ValidationError struct {
	Source string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid catalog %s: %v", e.Source, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateSchema checks raw catalog JSON against the embedded schema.
func validateSchema(data []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// validateQuestions performs the checks the schema cannot express.
// Returns a combined error describing every problem found.
func validateQuestions(questions []interview.Question) error {
	var errs []string

	ids := make(map[string]bool, len(questions))
	for _, q := range questions {
		if ids[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		ids[q.ID] = true

		if !q.Difficulty.Valid() {
			errs = append(errs, fmt.Sprintf("question %q: unknown difficulty %q", q.ID, q.Difficulty))
		}
		if q.TimeLimitSeconds <= 0 {
			errs = append(errs, fmt.Sprintf("question %q: time limit must be > 0, got %d", q.ID, q.TimeLimitSeconds))
		}
		for _, kw := range q.ExpectedKeywords {
			if strings.TrimSpace(kw) == "" {
				errs = append(errs, fmt.Sprintf("question %q: blank expected keyword", q.ID))
				break
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
