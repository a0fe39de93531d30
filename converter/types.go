package converter

import (
	"fmt"
	"time"

	"github.com/bcparks/scrape-cleanup/internal/logging"
	"github.com/bcparks/scrape-cleanup/mapping"
	"github.com/bcparks/scrape-cleanup/slugs"
)

// Policy decides what happens to a record that fails mapping.
type Policy string

const (
	// PolicyFail aborts the converter; no output is written.
	PolicyFail Policy = "fail"
	// PolicySkip drops the record and keeps going.
	PolicySkip Policy = "skip"
)

// ParsePolicy accepts "fail", "skip", or "" (fail).
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyFail:
		return PolicyFail, nil
	case PolicySkip:
		return PolicySkip, nil
	default:
		return "", fmt.Errorf("unknown missing-field policy %q (want fail or skip)", s)
	}
}

// Options contains everything needed to build a Converter.
type Options struct {
	// Name identifies the converter in logs and reports. Defaults to Kind.
	Name string
	// Kind is informational; the Table decides the mapping.
	Kind Kind

	Source      string
	Destination string

	// Table is the field mapping. Required.
	Table mapping.Table
	// Identifier overrides the park identifier target (default "orcs").
	Identifier string
	// Slugs enables URL enrichment. Leave nil to disable it.
	Slugs *slugs.Table

	Policy Policy
	// Indent pretty-prints output when non-empty.
	Indent string

	Logger logging.Logger
}

// Result describes one converter run.
type Result struct {
	Name        string
	Source      string
	Destination string
	Read        int
	Written     int
	Skipped     int
	Duration    time.Duration
	Err         error
}

// OK reports whether the run succeeded.
func (r Result) OK() bool { return r.Err == nil }
