// Package clock implements the digital clock widget: a once-per-second
// ticking timestamp and a 12/24-hour display mode.
package clock

import (
	"fmt"
	"time"
)

// Format renders t as "HH:MM:SS" in local wall-clock fields. In 12-hour mode
// midnight and noon both render as "12".
func Format(t time.Time, use24Hour bool) string {
	h := t.Hour()
	if !use24Hour {
		h %= 12
		if h == 0 {
			h = 12
		}
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, t.Minute(), t.Second())
}
