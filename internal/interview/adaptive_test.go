package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestController_StepUpAfterTwoStrong(t *testing.T) {
	c := NewController(Easy, 2)

	adj := c.Record(85)
	assert.False(t, adj.Changed())
	strong, _ := c.Streaks()
	assert.Equal(t, 1, strong)

	adj = c.Record(90)
	assert.True(t, adj.SteppedUp)
	assert.Equal(t, Easy, adj.From)
	assert.Equal(t, Medium, adj.To)
	assert.Equal(t, Medium, c.Difficulty())

	strong, weak := c.Streaks()
	assert.Zero(t, strong)
	assert.Zero(t, weak)
}

func TestController_StepUpSaturatesAtHard(t *testing.T) {
	c := NewController(Hard, 2)
	c.Record(95)
	adj := c.Record(95)

	assert.False(t, adj.SteppedUp)
	assert.False(t, adj.Changed())
	assert.Equal(t, Hard, c.Difficulty())
	strong, _ := c.Streaks()
	assert.Zero(t, strong, "counter resets even when the tier cannot rise")
}

func TestController_StepDownAfterTwoWeak(t *testing.T) {
	c := NewController(Hard, 2)
	c.Record(20)
	adj := c.Record(39.9)

	assert.True(t, adj.SteppedDn)
	assert.Equal(t, Medium, c.Difficulty())
	_, weak := c.Streaks()
	assert.Zero(t, weak)
}

func TestController_StepDownSaturatesAtEasy(t *testing.T) {
	c := NewController(Easy, 2)
	c.Record(10)
	adj := c.Record(10)

	assert.False(t, adj.SteppedDn)
	assert.Equal(t, Easy, c.Difficulty())
}

func TestController_NeutralBreaksStreaks(t *testing.T) {
	c := NewController(Easy, 2)
	c.Record(85)
	c.Record(60)
	adj := c.Record(85)

	assert.False(t, adj.Changed())
	assert.Equal(t, Easy, c.Difficulty())

	c.Record(30)
	strong, weak := c.Streaks()
	assert.Zero(t, strong, "weak answer resets strong streak")
	assert.Equal(t, 1, weak)
}

func TestController_BoundaryScores(t *testing.T) {
	c := NewController(Easy, 1)
	assert.True(t, c.Record(80).SteppedUp, "80 counts as strong")

	c = NewController(Medium, 1)
	assert.False(t, c.Record(40).Changed(), "40 is neutral")
	assert.True(t, c.Record(39.99).SteppedDn)
}

func TestController_ThresholdFromRampRate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RampRate = 1.5
	c := NewController(Easy, cfg.StreakThreshold())

	c.Record(90)
	c.Record(90)
	assert.Equal(t, Easy, c.Difficulty())
	c.Record(90)
	assert.Equal(t, Medium, c.Difficulty())
}

func TestController_NeverSkipsATier(t *testing.T) {
	scores := []float64{100, 100, 100, 100, 100, 0, 0, 0, 0, 0, 85, 20, 85, 85, 10, 10}
	c := NewController(Easy, 1)
	prev := c.Difficulty()
	for _, s := range scores {
		c.Record(s)
		cur := c.Difficulty()
		assert.LessOrEqual(t, abs(cur.rank()-prev.rank()), 1)
		assert.True(t, cur.Valid())
		prev = cur
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestDifficulty_HarderEasier(t *testing.T) {
	assert.Equal(t, Medium, Easy.Harder())
	assert.Equal(t, Hard, Medium.Harder())
	assert.Equal(t, Hard, Hard.Harder())
	assert.Equal(t, Medium, Hard.Easier())
	assert.Equal(t, Easy, Medium.Easier())
	assert.Equal(t, Easy, Easy.Easier())
}

func TestSeniority_EntryDifficulty(t *testing.T) {
	assert.Equal(t, Easy, Entry.EntryDifficulty())
	assert.Equal(t, Easy, Mid.EntryDifficulty())
	assert.Equal(t, Medium, Senior.EntryDifficulty())
	assert.Equal(t, Medium, Lead.EntryDifficulty())
}

func TestParseSeniority(t *testing.T) {
	s, err := ParseSeniority("mid-level")
	assert.NoError(t, err)
	assert.Equal(t, Mid, s)

	_, err = ParseSeniority("intern")
	assert.Error(t, err)
}
