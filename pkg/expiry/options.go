package expiry

import (
	"fmt"
	"strconv"
	"time"
)

// YearsAhead is how far the year selector extends past the current year.
const YearsAhead = 14

// Option is a value/label pair for rendering a select input.
type Option struct {
	Value string
	Label string
}

// MonthOptions returns the twelve month choices with card-style labels such
// as "01 (Jan)". Localized month names are a concern of the caller's
// translation layer; the labels here are the English defaults.
func MonthOptions() []Option {
	opts := make([]Option, 0, 12)
	for m := time.January; m <= time.December; m++ {
		opts = append(opts, Option{
			Value: strconv.Itoa(int(m)),
			Label: fmt.Sprintf("%02d (%s)", int(m), m.String()[:3]),
		})
	}
	return opts
}

// YearOptions returns choices from the year of now through YearsAhead years on.
func YearOptions(now time.Time) []Option {
	opts := make([]Option, 0, YearsAhead+1)
	for y := now.Year(); y <= now.Year()+YearsAhead; y++ {
		s := strconv.Itoa(y)
		opts = append(opts, Option{Value: s, Label: s})
	}
	return opts
}
