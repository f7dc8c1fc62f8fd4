package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/wlcfit/internal/model"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available worm-like chain models",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tINDEPENDENT\tPREDICTS\tPARAMETERS")
		for _, k := range model.Kinds() {
			indep := "distance"
			predicts := "force"
			if k.PredictsDistance() {
				indep = "force"
				predicts = "distance"
			} else if k.BindsPair() {
				indep = "distance, force"
			}
			params := "kBT, Lc, Lp"
			if k.NeedsStretch() {
				params += ", S"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", k, indep, predicts, params)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
