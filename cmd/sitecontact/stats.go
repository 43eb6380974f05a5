package main

import (
	"fmt"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Companies.CompanyStats(deps.Ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Companies:         %d\n", stats.Total)
	fmt.Fprintf(deps.Stdout, "With email:        %s\n", share(stats.WithEmail, stats.Total))
	fmt.Fprintf(deps.Stdout, "With phone:        %s\n", share(stats.WithPhone, stats.Total))
	fmt.Fprintf(deps.Stdout, "With address:      %s\n", share(stats.WithAddress, stats.Total))
	fmt.Fprintf(deps.Stdout, "With contact form: %s\n", share(stats.WithContactForm, stats.Total))
	return nil
}

// share formats n as a count and a percentage of total.
func share(n, total int) string {
	if total == 0 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d (%d%%)", n, n*100/total)
}
