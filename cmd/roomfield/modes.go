package main

import (
	"fmt"
	"math"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-room/room/geometry"
	"github.com/cwbudde/algo-room/room/modal"
	"github.com/cwbudde/algo-room/room/mode"
)

// modeRow is one line of the modes listing.
type modeRow struct {
	mode    mode.Mode
	freqHz  float64
	phiSrc  float64
	coupled bool
}

func newModesCmd(a *app) *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "modes",
		Short: "List admitted modes with natural frequencies and source coupling",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sortBy != "index" && sortBy != "freq" {
				return fmt.Errorf("--sort must be index or freq, got %q", sortBy)
			}

			return a.runModes(cmd, sortBy == "freq")
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "index", "row order: index or freq")

	return cmd
}

func (a *app) runModes(cmd *cobra.Command, byFreq bool) error {
	req, err := a.request()
	if err != nil {
		return err
	}

	eng, err := a.engine()
	if err != nil {
		return err
	}

	room, err := geometry.New(req.Lx, req.Ly, req.Lz)
	if err != nil {
		return err
	}

	rows := listModes(room, req.Source, mode.Collect(req.Limits, req.Filter), eng.SpeedOfSound(), eng.Epsilon())
	if byFreq {
		slices.SortStableFunc(rows, func(x, y modeRow) int {
			switch {
			case x.freqHz < y.freqHz:
				return -1
			case x.freqHz > y.freqHz:
				return 1
			default:
				return 0
			}
		})
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tCLASS\tf (Hz)\tφ(src)\tSTATUS")
	coupled := 0
	for _, r := range rows {
		status := "skipped"
		if r.coupled {
			status = "summed"
			coupled++
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%+.4f\t%s\n", r.mode, r.mode.Class(), r.freqHz, r.phiSrc, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d admitted, %d summed, %d skipped\n", len(rows), coupled, len(rows)-coupled)

	return nil
}

// listModes reports every admitted mode in enumeration order. A mode is
// coupled exactly when Prepare would keep it as a term.
func listModes(room geometry.Room, src geometry.Point, modes []mode.Mode, c, eps float64) []modeRow {
	rows := make([]modeRow, 0, len(modes))
	for _, m := range modes {
		kx, ky, kz := modal.Wavenumbers(m, room)
		phi := modal.ShapeAt(kx, ky, kz, src)
		rows = append(rows, modeRow{
			mode:    m,
			freqHz:  modal.NaturalFrequencyHz(m, room, c),
			phiSrc:  phi,
			coupled: math.Abs(phi) >= eps,
		})
	}

	return rows
}
