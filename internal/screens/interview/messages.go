package interview

import "time"

// timerTickMsg is sent every second to update the answer clock.
type timerTickMsg time.Time
