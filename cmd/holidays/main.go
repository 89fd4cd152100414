/*
main.go - Application entry point

PURPOSE:
  The holidays command: an HTTP service over the holiday engine plus the
  one-shot queries used by host scripts.

COMMANDS:
  serve           Run the HTTP API (see api/)
  check [when]    Is the host "active" now (or at when)? Exit 0 yes, 1 no
  list            Print the holidays of a year
  jurisdictions   Print the registered countries and subdivisions

CONFIGURATION ORDER (later wins):
  1. Built-in defaults
  2. YAML file (--config, default ./holidays.yml)
  3. .env file (--env-file) and HOLIDAYS_* environment variables
  4. --country / --log-level flags

EXIT CODES:
  0  success, or "active" for check
  1  "inactive" for check
  2  any error

EXAMPLES:
  # Serve the API with a file database
  holidays serve -c /etc/holidays.yml

  # Cron: switch a display off on Czech holidays and outside 07:00-19:00
  holidays check --country CZ && display-on || display-off

  # Canadian and US holidays side by side
  holidays list --country CA-QC --country US --year 2025

SEE ALSO:
  - config/config.go: File format
  - api/server.go: Routes
*/
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		if errors.Is(err, errInactive) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}
