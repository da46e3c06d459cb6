package exam

import "time"

// timerTickMsg is sent every second to advance the session clock.
type timerTickMsg time.Time
