package main

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"internship-assistant/internal/model"
	"internship-assistant/internal/talent"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compare relational counts with indexed points",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		snap, err := a.uc.Snapshot(ctx)
		if err != nil {
			return err
		}
		idx, err := a.uc.IndexStats(ctx)
		if err != nil {
			return err
		}

		renderStats(cmd.OutOrStdout(), snap, idx)
		return nil
	},
}

// renderStats writes one row per indexed collection and flags rows whose counts differ.
func renderStats(w io.Writer, snap model.Snapshot, idx talent.IndexStats) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Collection", "Database", "Indexed", "Status"})
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	table.Append(statsRow(talent.TargetSeekers, snap.Seekers, idx.Seekers))
	table.Append(statsRow(talent.TargetPosts, snap.Posts, idx.Posts))
	table.Render()
}

func statsRow(name string, stored, indexed int) []string {
	status := "in sync"
	if stored != indexed {
		status = "stale"
	}
	return []string{name, strconv.Itoa(stored), strconv.Itoa(indexed), status}
}
