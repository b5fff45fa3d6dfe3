package interview

import "math/rand/v2"

// Selector picks the next question. Its random source is the only
// non-deterministic input of a session.
type Selector struct {
	rng *rand.Rand
}

// NewSelector wraps a random source. A nil source is replaced with a
// PCG seeded with zero so the selector is always usable.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 0))
	}
	return &Selector{rng: rng}
}

// RelevantSkills is the overlap of candidate and required skills, or all
// required skills when the overlap is empty. Order follows required.
func RelevantSkills(candidate, required []string) []string {
	have := make(map[string]bool, len(candidate))
	for _, s := range candidate {
		have[s] = true
	}
	var overlap []string
	for _, s := range required {
		if have[s] {
			overlap = append(overlap, s)
		}
	}
	if len(overlap) == 0 {
		return required
	}
	return overlap
}

// Next returns a question of the given tier that is not in asked,
// preferring questions whose skill is relevant. ok is false when no
// unasked question remains at that tier.
func (s *Selector) Next(pool []Question, tier Difficulty, asked map[string]bool, candidateSkills, requiredSkills []string) (q Question, ok bool) {
	relevant := make(map[string]bool)
	for _, sk := range RelevantSkills(candidateSkills, requiredSkills) {
		relevant[sk] = true
	}

	var preferred, fallback []Question
	for _, c := range pool {
		if c.Difficulty != tier || asked[c.ID] {
			continue
		}
		fallback = append(fallback, c)
		if relevant[c.Skill] {
			preferred = append(preferred, c)
		}
	}

	switch {
	case len(preferred) > 0:
		return preferred[s.rng.IntN(len(preferred))], true
	case len(fallback) > 0:
		return fallback[s.rng.IntN(len(fallback))], true
	}
	return Question{}, false
}
