package handlers

import (
	"fmt"
	"time"
)

// timeAgo renders a coarse relative-time label, integer-truncated at each
// unit boundary.
func timeAgo(t, now time.Time) string {
	seconds := now.Sub(t).Seconds()
	switch {
	case seconds < 60:
		return "Just now"
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", int(seconds/60))
	case seconds < 86400:
		return fmt.Sprintf("%dh ago", int(seconds/3600))
	default:
		return fmt.Sprintf("%dd ago", int(seconds/86400))
	}
}
