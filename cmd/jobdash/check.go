package main

import (
	"github.com/dustin/go-humanize"
	"github.com/fr4nk3nst1ner/jobdash/internal/render"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *renderOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Show what the dashboard document currently displays",
		Long:  "Parses the dashboard HTML and prints its counters, the number of previewed jobs and the last update time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}
}

func runCheck(cmd *cobra.Command, opts *renderOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	snap, err := render.InspectFile(cfg.Document)
	if err != nil {
		return err
	}

	pterm.Info.Printfln("Total jobs: %s", humanize.Comma(int64(snap.TotalJobs)))
	pterm.Info.Printfln("US jobs: %s", humanize.Comma(int64(snap.USJobs)))
	pterm.Info.Printfln("Remote jobs: %s", humanize.Comma(int64(snap.RemoteJobs)))
	pterm.Info.Printfln("Previewed jobs: %d", snap.PreviewCount)
	pterm.Info.Printfln("Last updated: %s", snap.UpdatedAt)

	if snap.LastUpdated != snap.TotalJobs {
		pterm.Warning.Printfln("last-updated counter (%d) does not match total jobs (%d)", snap.LastUpdated, snap.TotalJobs)
	}
	return nil
}
