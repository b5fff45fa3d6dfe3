// Package catalog loads and validates interview question banks.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/abhisek/mockround/internal/interview"
)

//go:embed questions.json
var defaultQuestions []byte

// file is the on-disk catalog layout.
type file struct {
	Version   int                  `json:"version"`
	Questions []interview.Question `json:"questions"`
}

// Catalog is an immutable, validated question bank. It implements
// interview.QuestionSource.
type Catalog struct {
	source    string
	questions []interview.Question
}

var _ interview.QuestionSource = (*Catalog)(nil)

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Parse(defaultQuestions, "embedded")
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
})

// Default returns the built-in question bank.
func Default() *Catalog {
	return defaultCatalog()
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data, path)
}

// Parse validates data against the catalog schema and the cross-entry
// rules, then decodes it. source names the data in errors.
func Parse(data []byte, source string) (*Catalog, error) {
	if err := validateSchema(data); err != nil {
		return nil, &ValidationError{Source: source, Err: err}
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &ValidationError{Source: source, Err: fmt.Errorf("decode: %w", err)}
	}
	if err := validateQuestions(f.Questions); err != nil {
		return nil, &ValidationError{Source: source, Err: err}
	}
	return &Catalog{source: source, questions: f.Questions}, nil
}

// Source names where the catalog was loaded from.
func (c *Catalog) Source() string { return c.source }

// Len returns the number of questions.
func (c *Catalog) Len() int { return len(c.questions) }

// Questions returns a copy of every question in file order.
func (c *Catalog) Questions() []interview.Question {
	out := make([]interview.Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Filter returns the questions at difficulty d, optionally restricted to
// one skill. An empty d matches every tier; an empty skill matches every
// skill.
func (c *Catalog) Filter(d interview.Difficulty, skill string) []interview.Question {
	var out []interview.Question
	for _, q := range c.questions {
		if d != "" && q.Difficulty != d {
			continue
		}
		if skill != "" && q.Skill != skill {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Skills returns the sorted set of skills covered by the catalog.
func (c *Catalog) Skills() []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range c.questions {
		if !seen[q.Skill] {
			seen[q.Skill] = true
			out = append(out, q.Skill)
		}
	}
	sort.Strings(out)
	return out
}

// CountByDifficulty returns the number of questions at each tier.
func (c *Catalog) CountByDifficulty() map[interview.Difficulty]int {
	out := make(map[interview.Difficulty]int, len(interview.Difficulties))
	for _, d := range interview.Difficulties {
		out[d] = 0
	}
	for _, q := range c.questions {
		out[q.Difficulty]++
	}
	return out
}
