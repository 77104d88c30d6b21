package backup

import "time"

// LabelLayout renders YYYY-MM-DD.HH.MM.SS. and is dot-terminated so the
// label can be used directly as a filename prefix.
const LabelLayout = "2006-01-02.15.04.05."

// Label returns the timestamp label for t in t's own location.
func Label(t time.Time) string {
	return t.Format(LabelLayout)
}
