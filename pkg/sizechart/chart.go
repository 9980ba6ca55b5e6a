// Package sizechart classifies a foot length in millimeters into a shoe
// size bucket and formats it for a chosen sizing system.
package sizechart

import (
	"fmt"
	"sort"
	"strconv"
)

// Bucket maps lengths strictly below UpperMm to a size label. Buckets are
// half-open intervals: a length exactly at UpperMm belongs to the next
// bucket up.
type Bucket struct {
	UpperMm float64
	Label   string
}

// Chart is an ordered set of buckets plus a fallback label for lengths at
// or above the last threshold.
type Chart struct {
	Name    string
	Buckets []Bucket
	Final   string
}

// DefaultUK is the built-in UK men's chart.
func DefaultUK() *Chart {
	return &Chart{
		Name: "UK",
		Buckets: []Bucket{
			{UpperMm: 240, Label: "5"},
			{UpperMm: 250, Label: "6"},
			{UpperMm: 260, Label: "7"},
			{UpperMm: 270, Label: "8"},
			{UpperMm: 280, Label: "9"},
		},
		Final: "10",
	}
}

// Validate checks that thresholds are strictly increasing and a fallback
// label is present.
func (c *Chart) Validate() error {
	if c.Final == "" {
		return fmt.Errorf("chart %q: missing else rule", c.Name)
	}
	if len(c.Buckets) == 0 {
		return fmt.Errorf("chart %q: no buckets", c.Name)
	}
	for i := 1; i < len(c.Buckets); i++ {
		if c.Buckets[i].UpperMm <= c.Buckets[i-1].UpperMm {
			return fmt.Errorf("chart %q: threshold %.1f is not above %.1f",
				c.Name, c.Buckets[i].UpperMm, c.Buckets[i-1].UpperMm)
		}
	}
	return nil
}

// Classify returns the size label for a foot length in millimeters.
// Comparisons are strict: a length equal to a threshold falls into the
// higher bucket.
func (c *Chart) Classify(mm float64) string {
	i := sort.Search(len(c.Buckets), func(i int) bool { return mm < c.Buckets[i].UpperMm })
	if i < len(c.Buckets) {
		return c.Buckets[i].Label
	}
	return c.Final
}

// BucketIndex returns the ordinal of the bucket mm falls into, with the
// fallback counting as the last ordinal. Useful for ordering checks.
func (c *Chart) BucketIndex(mm float64) int {
	return sort.Search(len(c.Buckets), func(i int) bool { return mm < c.Buckets[i].UpperMm })
}

// System selects how a UK-based size is displayed.
type System int

const (
	SystemUK System = iota
	SystemUS
	SystemIND
)

func (s System) String() string {
	switch s {
	case SystemUK:
		return "UK"
	case SystemUS:
		return "US"
	case SystemIND:
		return "IND"
	}
	return "UK"
}

// ParseSystem reads a sizing system name. Both the lowercase CLI
// spellings and the uppercase display names are accepted.
func ParseSystem(s string) (System, error) {
	switch s {
	case "uk", "UK":
		return SystemUK, nil
	case "us", "US":
		return SystemUS, nil
	case "ind", "IND":
		return SystemIND, nil
	}
	return SystemUK, fmt.Errorf("unknown size system %q (want uk, us or ind)", s)
}

// Display formats a UK size label for the given system. The US mapping is
// the fixed UK+1 shift this tool has always used, not an anatomical
// conversion table; IND passes the UK size through unchanged. Labels that
// are not plain integers are shown as-is under every system.
func Display(label string, system System) string {
	if system == SystemUS {
		if n, err := strconv.Atoi(label); err == nil {
			label = strconv.Itoa(n + 1)
		}
	}
	return fmt.Sprintf("%s %s", system, label)
}
