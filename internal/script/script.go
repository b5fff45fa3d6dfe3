// Package script drives an interview from a YAML answer file.
package script

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/mockround/internal/interview"
)

// ExhaustedReason is the override reason used when the script has no
// answer for the pending question.
const ExhaustedReason = "Answer script exhausted."

// Answer is one scripted response.
type Answer struct {
	Text    string  `yaml:"answer"`
	Elapsed float64 `yaml:"elapsed"`
}

// Script is a scripted interview. Answers are looked up by question id
// first, then by position, then Default.
type Script struct {
	Candidate *interview.CandidateProfile `yaml:"candidate,omitempty"`
	Job       *interview.JobDescription   `yaml:"job,omitempty"`
	Seed      *uint64                     `yaml:"seed,omitempty"`

	ByQuestion map[string]Answer `yaml:"by_question,omitempty"`
	Sequence   []Answer          `yaml:"sequence,omitempty"`
	Default    *Answer           `yaml:"default,omitempty"`
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and checks a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(s.ByQuestion) == 0 && len(s.Sequence) == 0 && s.Default == nil {
		return nil, fmt.Errorf("no answers: set by_question, sequence or default")
	}
	for id, a := range s.ByQuestion {
		if err := checkElapsed(a.Elapsed); err != nil {
			return nil, fmt.Errorf("by_question %s: %w", id, err)
		}
	}
	for i, a := range s.Sequence {
		if err := checkElapsed(a.Elapsed); err != nil {
			return nil, fmt.Errorf("sequence[%d]: %w", i, err)
		}
	}
	if s.Default != nil {
		if err := checkElapsed(s.Default.Elapsed); err != nil {
			return nil, fmt.Errorf("default: %w", err)
		}
	}
	return &s, nil
}

func checkElapsed(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("elapsed must be a finite number >= 0, got %v", v)
	}
	return nil
}

// AnswerFor returns the scripted answer for the index-th question
// (zero based).
func (s *Script) AnswerFor(index int, q interview.Question) (Answer, bool) {
	if a, ok := s.ByQuestion[q.ID]; ok {
		return a, true
	}
	if index < len(s.Sequence) {
		return s.Sequence[index], true
	}
	if s.Default != nil {
		return *s.Default, true
	}
	return Answer{}, false
}

// Run starts e and answers every question from s until the session ends.
// A question without a scripted answer aborts the session with
// ExhaustedReason.
func Run(e *interview.Engine, s *Script) (interview.InterviewResult, error) {
	q, err := e.Start()
	if err != nil {
		return interview.InterviewResult{}, fmt.Errorf("start: %w", err)
	}

	for i := 0; q != nil; i++ {
		a, ok := s.AnswerFor(i, *q)
		if !ok {
			if err := e.Abort(ExhaustedReason); err != nil {
				return interview.InterviewResult{}, fmt.Errorf("abort: %w", err)
			}
			break
		}
		q, err = e.ProcessResponse(*q, a.Text, a.Elapsed)
		if err != nil {
			return interview.InterviewResult{}, fmt.Errorf("answer %d: %w", i+1, err)
		}
	}
	return e.Report()
}
