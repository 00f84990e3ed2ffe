package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/dayboard/internal/daybook"
	"github.com/sandeepkv93/dayboard/internal/model"
)

type outputOptions struct {
	JSON bool
}

func addOutputArg(cmd *cobra.Command, o *outputOptions) {
	cmd.Flags().BoolVar(&o.JSON, "json", false, "Output as JSON.")
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

var (
	bold  = color.New(color.Bold, color.Underline)
	faint = color.New(color.Faint)
	green = color.New(color.FgGreen)
)

func cmdLogger(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), "dayboard: ", 0)
}

func checkbox(done bool) string {
	if done {
		return green.Sprint("[x]")
	}
	return "[ ]"
}

func printDay(w io.Writer, snap daybook.Snapshot) {
	title := "Today " + snap.ActiveKey
	if !snap.ViewingToday() {
		title = "Day " + snap.ActiveKey
	}
	_, _ = fmt.Fprintln(w, bold.Sprint(title))

	for _, bv := range snap.Buckets {
		_, _ = fmt.Fprintf(w, "\n%s %s\n", bold.Sprint(bv.Bucket.Label()), faint.Sprintf("%d/%d", bv.Progress.Done, bv.Progress.Total))
		if len(bv.Items) == 0 {
			_, _ = fmt.Fprintln(w, faint.Sprint("  none"))
			continue
		}
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, it := range bv.Items {
			text := it.Text
			if it.FromTemplate {
				text += faint.Sprint(" *")
			}
			tbl.AddRow(faint.Sprint(shortID(it.ID)), checkbox(it.Done), text)
		}
		_, _ = fmt.Fprintln(w, tbl)
	}
	_, _ = fmt.Fprintf(w, "\noverall %d/%d (%d%%)\n", snap.Overall.Done, snap.Overall.Total, snap.Overall.Percent())
}

func printHistory(w io.Writer, days []daybook.DaySummary) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Day"), bold.Sprint("Done"), bold.Sprint("Total"), bold.Sprint("%"), "")
	for _, d := range days {
		mark := ""
		if d.IsToday {
			mark = green.Sprint("today")
		}
		tbl.AddRow(d.Key, d.Progress.Done, d.Progress.Total, d.Progress.Percent(), mark)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func printTemplates(w io.Writer, t model.Templates) {
	for _, b := range model.Buckets {
		_, _ = fmt.Fprintln(w, bold.Sprint(b.Label()))
		if len(t[b]) == 0 {
			_, _ = fmt.Fprintln(w, faint.Sprint("  none"))
			continue
		}
		tbl := uitable.New()
		tbl.Separator = "  "
		for i, text := range t[b] {
			tbl.AddRow(fmt.Sprintf("  %d.", i+1), text)
		}
		_, _ = fmt.Fprintln(w, tbl)
	}
}
