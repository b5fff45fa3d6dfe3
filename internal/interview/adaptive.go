package interview

// Score bands used for streak tracking.
const (
	StrongScore = 80.0
	WeakScore   = 40.0
)

// Adjustment describes the effect of one score on the controller.
type Adjustment struct {
	From      Difficulty
	To        Difficulty
	SteppedUp bool // threshold of strong answers reached and tier rose
	SteppedDn bool // threshold of weak answers reached and tier fell
}

// Changed reports whether the tier moved.
func (a Adjustment) Changed() bool { return a.From != a.To }

// Controller tracks strong/weak streaks and moves the difficulty tier.
type Controller struct {
	threshold int
	strong    int
	weak      int
	current   Difficulty
}

// NewController starts a controller at the given tier. threshold is the
// streak length that moves the tier; values below 1 are treated as 1.
func NewController(start Difficulty, threshold int) *Controller {
	if threshold < 1 {
		threshold = 1
	}
	return &Controller{threshold: threshold, current: start}
}

// Difficulty returns the current tier.
func (c *Controller) Difficulty() Difficulty { return c.current }

// Streaks returns the current strong and weak counters.
func (c *Controller) Streaks() (strong, weak int) { return c.strong, c.weak }

// Record feeds one overall score into the controller. The step-down check
// runs after the step-up check on the same call; the two act on
// independent counters.
func (c *Controller) Record(overall float64) Adjustment {
	switch {
	case overall >= StrongScore:
		c.strong++
		c.weak = 0
	case overall < WeakScore:
		c.weak++
		c.strong = 0
	default:
		c.strong = 0
		c.weak = 0
	}

	adj := Adjustment{From: c.current}

	if c.strong >= c.threshold {
		next := c.current.Harder()
		adj.SteppedUp = next != c.current
		c.current = next
		c.strong = 0
	}

	if c.weak >= c.threshold {
		next := c.current.Easier()
		adj.SteppedDn = next != c.current
		c.current = next
		c.weak = 0
	}

	adj.To = c.current
	return adj
}
