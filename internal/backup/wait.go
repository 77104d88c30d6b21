package backup

import (
	"fmt"
	"time"
)

// FormatWait phrases d as "<N> minutes[ <M> seconds]", dropping the
// seconds clause when it is zero. Sub-second remainders are rounded.
func FormatWait(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int64(d / time.Minute)
	seconds := int64(d % time.Minute / time.Second)

	s := unit(minutes, "minute")
	if seconds != 0 {
		s += " " + unit(seconds, "second")
	}
	return s
}

func unit(n int64, name string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, name)
	}
	return fmt.Sprintf("%d %ss", n, name)
}
