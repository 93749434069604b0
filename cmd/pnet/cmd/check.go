/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	"context"
	"fmt"
	"github.com/jt05610/pnet"
	"github.com/jt05610/pnet/builder"
	"github.com/jt05610/pnet/couch"
	"github.com/spf13/cobra"
	"io"
	"os"
)

var saveResults bool

func writeSummary(w io.Writer, n *pnet.Net, report *pnet.Report) {
	counts := n.Summarize()
	fmt.Fprintln(w, "=== Petri Net Summary ===")
	fmt.Fprintf(w, "Places: %d\n", counts.Places)
	fmt.Fprintf(w, "Transitions: %d\n", counts.Transitions)
	fmt.Fprintf(w, "Arcs: %d\n", counts.Arcs)
	fmt.Fprintln(w, "\nPlaces with initial marking = 1:")
	for _, p := range n.Marked() {
		fmt.Fprintf(w, " - %s (%s)\n", p.ID, p.Name)
	}
	if len(report.Errors) > 0 {
		fmt.Fprintln(w, "\nErrors:")
		for _, f := range report.Errors {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
	if len(report.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, f := range report.Warnings {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
	if report.Ok() {
		fmt.Fprintln(w, "\nNo errors or warnings detected.")
	}
}

func save(ctx context.Context, n *pnet.Net, report *pnet.Report) {
	uri := couch.LoadConfig().URI()
	nets, err := couch.NetService(uri)
	failOnError(err, "Failed to open net store")
	defer func() {
		_ = nets.Close()
	}()
	_, err = nets.Add(ctx, n)
	failOnError(err, "Failed to store net")
	reports, err := couch.ReportService(uri)
	failOnError(err, "Failed to open report store")
	defer func() {
		_ = reports.Close()
	}()
	_, err = reports.Add(ctx, report)
	failOnError(err, "Failed to store report")
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check the integrity of a petri net",
	Long: `Check the integrity of a petri net and print a summary of it.
Arcs must connect existing nodes, and markings other than 0 or 1 are
flagged.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		n, err := builder.Default().Build(ctx, args[0])
		failOnError(err, "Failed to read net")
		report := n.Check()
		writeSummary(os.Stdout, n, report)
		if saveResults {
			save(ctx, n, report)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&saveResults, "save", "s", false, "store the net and report in couchdb")
}
