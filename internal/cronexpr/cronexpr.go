// Package cronexpr describes cron expressions in English and lists their next
// run times.
package cronexpr

import (
	"errors"
	"fmt"
	"strings"
	"time"

	describe "github.com/lnquy/cron"
	"github.com/robfig/cron/v3"
)

var ErrEmpty = errors.New("empty expression")

type Example struct {
	Expr  string
	Label string
}

var Examples = []Example{
	{"* * * * *", "Every minute"},
	{"0 0 * * *", "Every day at midnight"},
	{"0 0 1 * *", "First day of every month at midnight"},
	{"0 0 * * 0", "Every Sunday at midnight"},
}

var parser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Describe returns a sentence such as "At 12:00 AM, on day 1 of the month".
func Describe(expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", ErrEmpty
	}
	d, err := describe.NewDescriptor()
	if err != nil {
		return "", err
	}
	return d.ToDescription(expr, describe.Locale_en)
}

// Next lists the next n activations after from. Only five field expressions
// and @-descriptors are scheduled.
func Next(expr string, from time.Time, n int) ([]time.Time, error) {
	sched, err := parser.Parse(strings.TrimSpace(expr))
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	runs := make([]time.Time, 0, n)
	t := from
	for range n {
		t = sched.Next(t)
		if t.IsZero() {
			break
		}
		runs = append(runs, t)
	}
	return runs, nil
}
