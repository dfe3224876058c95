package humanise

import (
	"fmt"
	"time"
)

// Millisecond counts per unit. Units stop at days: months and years have no
// fixed millisecond length, so there is nothing sensible to divide by.
const (
	msPerSecond uint64 = 1000
	msPerMinute        = 60 * msPerSecond
	msPerHour          = 60 * msPerMinute
	msPerDay           = 24 * msPerHour
)

// Breakdown is the tuple of whole-unit counts derived from a total
// millisecond count. Days is unbounded; each smaller field is strictly less
// than its carry limit (Hours < 24, Minutes < 60, Seconds < 60,
// Milliseconds < 1000).
type Breakdown struct {
	Days         uint64 `json:"days" yaml:"days"`
	Hours        uint64 `json:"hours" yaml:"hours"`
	Minutes      uint64 `json:"minutes" yaml:"minutes"`
	Seconds      uint64 `json:"seconds" yaml:"seconds"`
	Milliseconds uint64 `json:"milliseconds" yaml:"milliseconds"`
}

// Decompose splits a millisecond count into whole days, hours, minutes,
// seconds and milliseconds, largest unit first, carrying each remainder down.
// Reconstructing Days*86400000 + Hours*3600000 + Minutes*60000 +
// Seconds*1000 + Milliseconds yields ms exactly.
func Decompose(ms uint64) Breakdown {
	var b Breakdown
	b.Days = ms / msPerDay
	ms %= msPerDay
	b.Hours = ms / msPerHour
	ms %= msPerHour
	b.Minutes = ms / msPerMinute
	ms %= msPerMinute
	b.Seconds = ms / msPerSecond
	b.Milliseconds = ms % msPerSecond
	return b
}

// DurationMS renders a millisecond count as an English phrase, for example
// "1 minute, 2 seconds, and 345 milliseconds". Zero-count units are omitted
// entirely; a zero total renders as "0 seconds" (or "0 secs"). With verbose
// false the words for minutes, seconds and milliseconds shrink to "min ",
// "sec"/"secs" and "ms"; days and hours always use full words.
//
// A uint64 of milliseconds spans roughly 584 million years, the practical
// ceiling for inputs.
func DurationMS(ms uint64, verbose bool) string {
	if ms == 0 {
		if verbose {
			return "0 seconds"
		}
		return "0 secs"
	}

	b := Decompose(ms)

	var phrases []string
	if b.Days > 0 {
		phrases = append(phrases, fmt.Sprintf("%d %s", b.Days, PluralSuffix(b.Days, "day", false)))
	}
	if b.Hours > 0 {
		phrases = append(phrases, fmt.Sprintf("%d %s", b.Hours, PluralSuffix(b.Hours, "hour", false)))
	}
	if b.Minutes > 0 {
		// The abbreviated form is the fixed string "min " with its trailing
		// space, never pluralized. Matches the long-observed output; do not
		// tidy it up.
		word := "min "
		if verbose {
			word = PluralSuffix(b.Minutes, "minute", false)
		}
		phrases = append(phrases, fmt.Sprintf("%d %s", b.Minutes, word))
	}
	if b.Seconds > 0 {
		word := "sec"
		if verbose {
			word = "second"
		}
		phrases = append(phrases, fmt.Sprintf("%d %s", b.Seconds, PluralSuffix(b.Seconds, word, false)))
	}
	if b.Milliseconds > 0 {
		// "ms" never pluralizes either, unlike "sec"/"secs".
		word := "ms"
		if verbose {
			word = PluralSuffix(b.Milliseconds, "millisecond", false)
		}
		phrases = append(phrases, fmt.Sprintf("%d %s", b.Milliseconds, word))
	}

	return List(phrases)
}

// Duration converts d to a whole number of milliseconds and renders it with
// DurationMS. Negative durations are absolute-valued first; sub-millisecond
// precision is discarded.
func Duration(d time.Duration, verbose bool) string {
	// Negate the millisecond count, not the duration: -MinInt64 overflows,
	// while the count is always far from the int64 boundary.
	ms := d.Milliseconds()
	if ms < 0 {
		ms = -ms
	}
	return DurationMS(uint64(ms), verbose)
}
