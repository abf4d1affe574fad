package cmd

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/philipparndt/antennareader/pkg/polar"
	"github.com/philipparndt/antennareader/pkg/store"
	"github.com/spf13/cobra"
)

var listSearch string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved diagrams",
	Long:    "List saved diagrams, optionally filtered by a case-insensitive search over name, owner, state and city.",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved diagram with all measurements",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "only list diagrams matching this text")
	rootCmd.AddCommand(listCmd, showCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, s, err := environment()
	if err != nil {
		return err
	}

	records := s.Search(listSearch)
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No diagrams found")
		return nil
	}
	return writeList(cmd.OutOrStdout(), records)
}

func writeList(w io.Writer, records []store.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tOWNER\tSTATE\tCITY\tCREATED")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.AntennaName, r.AntennaOwner, r.State, r.City, r.CreateDate.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	_, s, err := environment()
	if err != nil {
		return err
	}
	r, err := s.Get(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Diagram #%d\n", r.ID)
	fmt.Fprintln(out, "==========")
	fmt.Fprintf(out, "Name:    %s\n", r.AntennaName)
	if r.AntennaOwner != "" {
		fmt.Fprintf(out, "Owner:   %s\n", r.AntennaOwner)
	}
	if r.State != "" || r.City != "" {
		fmt.Fprintf(out, "Place:   %s %s\n", r.City, r.State)
	}
	fmt.Fprintf(out, "Created: %s\n\n", r.CreateDate.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(out, "Measurements (%d/%d):\n", len(r.Measurements), polar.SlotCount)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "ANGLE\tDB\t")
	for _, m := range r.Sorted() {
		fmt.Fprintf(tw, "%d°\t%.1f\t\n", m.Angle, m.DbValue)
	}
	return tw.Flush()
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid diagram id %q", s)
	}
	return id, nil
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := parseID(a)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
