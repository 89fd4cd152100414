package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/warp/holiday-engine/config"
	"github.com/warp/holiday-engine/generic"
)

// errInactive makes the process exit with status 1 without an error message.
var errInactive = errors.New("inactive")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [when]",
		Short: "Report whether the host should be active",
		Long: `This command prints "active" and exits 0 when "when" (default: now, local
time) is inside the configured active hours and not a holiday of the
configured calendar. Otherwise it prints the reason and exits 1.`,
		Example: `holidays check --country CZ
holidays check "2024-12-24 08:30" --country CZ`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now()
			if len(args) == 1 {
				t, err := dateparse.ParseLocal(args[0])
				if err != nil {
					return &generic.ParseError{Input: args[0], Err: err}
				}
				at = t
			}

			// Dec 31 may be the observed day of the next year's Jan 1.
			set, err := a.calendar(cmd.Context(), at.Year(), at.Year()+1)
			if err != nil {
				return err
			}

			st, err := evaluate(set, at, a.cfg.Hours)
			if err != nil {
				return err
			}
			a.logger.Debug("checked",
				zap.Time("at", at),
				zap.String("calendar", set.String()),
				zap.Bool("active", st.Active))

			fmt.Fprintln(cmd.OutOrStdout(), st)
			if !st.Active {
				return errInactive
			}
			return nil
		},
	}
}

// status is the outcome of a check.
type status struct {
	Active  bool
	Holiday string
	Hours   *config.Hours
}

func (s status) String() string {
	switch {
	case s.Active:
		return "active"
	case s.Hours != nil:
		return fmt.Sprintf("inactive: outside active hours %02d:00-%02d:00", s.Hours.On, s.Hours.Off)
	default:
		return fmt.Sprintf("inactive: holiday (%s)", s.Holiday)
	}
}

// evaluate applies the active-hours window first and the holiday calendar
// second.
func evaluate(set *generic.HolidaySet, at time.Time, hours config.Hours) (status, error) {
	if !hours.Active(at.Hour()) {
		return status{Hours: &hours}, nil
	}
	label, ok, err := set.Get(at)
	if err != nil {
		return status{}, err
	}
	if ok {
		return status{Holiday: label}, nil
	}
	return status{Active: true}, nil
}
