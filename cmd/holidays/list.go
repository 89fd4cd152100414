package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/warp/holiday-engine/generic"
)

// listedHoliday is the json/yaml shape of one listed date.
type listedHoliday struct {
	Date  string   `json:"date" yaml:"date"`
	Day   string   `json:"day" yaml:"day"`
	Names []string `json:"names" yaml:"names"`
}

func newListCmd(a *app) *cobra.Command {
	var (
		year     int
		format   string
		observed bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "Print the holidays of a year",
		Long:    "This command prints every holiday of the configured calendar in one year, merged labels included.",
		Aliases: []string{"ls"},
		Example: `holidays list --year 2025
holidays list --country CA-QC --country US --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if year == 0 {
				year = time.Now().Year()
			}
			if cmd.Flags().Changed("observed") {
				a.cfg.Calendar.Observed = &observed
			}

			set, err := a.calendar(cmd.Context(), year)
			if err != nil {
				return err
			}
			return printHolidays(cmd.OutOrStdout(), set.HolidaysInYear(year), format)
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year to list (default: current year)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json or yaml")
	cmd.Flags().BoolVar(&observed, "observed", true, "include observed substitute days")
	return cmd
}

func printHolidays(w io.Writer, holidays []generic.Holiday, format string) error {
	rows := make([]listedHoliday, len(holidays))
	for i, h := range holidays {
		rows[i] = listedHoliday{
			Date:  h.Date.String(),
			Day:   h.Date.Weekday().String(),
			Names: h.Names(),
		}
	}

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(rows)
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tDAY\tHOLIDAY")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Date, r.Day, strings.Join(r.Names, ", "))
		}
		return tw.Flush()
	}
	return fmt.Errorf("unknown format %q: use table, json or yaml", format)
}
