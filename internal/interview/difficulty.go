package interview

import (
	"fmt"
	"strings"
)

// Difficulty is a question tier. Tiers are ordered Easy < Medium < Hard.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists every tier in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	return d.rank() >= 0
}

func (d Difficulty) rank() int {
	for i, t := range Difficulties {
		if t == d {
			return i
		}
	}
	return -1
}

// Harder returns the next tier up, or d itself at Hard.
func (d Difficulty) Harder() Difficulty {
	r := d.rank()
	if r < 0 || r == len(Difficulties)-1 {
		return d
	}
	return Difficulties[r+1]
}

// Easier returns the next tier down, or d itself at Easy.
func (d Difficulty) Easier() Difficulty {
	r := d.rank()
	if r <= 0 {
		return d
	}
	return Difficulties[r-1]
}

// ParseDifficulty accepts a tier name in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// Seniority is the candidate's declared level.
type Seniority string

const (
	Entry  Seniority = "Entry"
	Mid    Seniority = "Mid"
	Senior Seniority = "Senior"
	Lead   Seniority = "Lead"
)

// ParseSeniority accepts a seniority name in any case. "mid-level" is
// accepted as Mid.
func ParseSeniority(s string) (Seniority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "entry", "junior":
		return Entry, nil
	case "mid", "mid-level":
		return Mid, nil
	case "senior":
		return Senior, nil
	case "lead":
		return Lead, nil
	}
	return "", fmt.Errorf("unknown seniority %q", s)
}

// EntryDifficulty is the tier a session opens at. Senior and Lead
// candidates skip the Easy tier.
func (s Seniority) EntryDifficulty() Difficulty {
	switch s {
	case Senior, Lead:
		return Medium
	default:
		return Easy
	}
}
