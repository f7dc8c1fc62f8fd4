package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/wlcfit/internal/store"
)

var (
	runsDataDir string
	forceDelete bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage stored fit runs",
	Long: `Inspect and clean up persisted fit runs. Each run keeps the final
summary (result.json) and the sequence of accepted iterations (trace.jsonl).`,
}

var listRunsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored runs",
	RunE:  runListRuns,
}

var showRunCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a run's summary and iteration trace",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowRun,
}

var deleteRunCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a stored run and its artifacts",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteRun,
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.AddCommand(listRunsCmd)
	runsCmd.AddCommand(showRunCmd)
	runsCmd.AddCommand(deleteRunCmd)

	runsCmd.PersistentFlags().StringVar(&runsDataDir, "data-dir", "./data", "Base directory for run storage")
	deleteRunCmd.Flags().BoolVarP(&forceDelete, "force", "f", false, "Skip confirmation prompt")
}

func runListRuns(cmd *cobra.Command, args []string) error {
	runStore, err := store.NewFSStore(runsDataDir)
	if err != nil {
		return fmt.Errorf("failed to create run store: %w", err)
	}

	infos, err := runStore.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(infos) == 0 {
		fmt.Println("No runs found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tLABEL\tMODEL\tLC [NM]\tLP [NM]\tITERS\tTIMESTAMP\tSIZE")
	fmt.Fprintln(w, "------\t-----\t-----\t-------\t-------\t-----\t---------\t----")

	for _, info := range infos {
		runDir := filepath.Join(runsDataDir, "runs", info.RunID)
		size, err := getDirSize(runDir)
		sizeStr := "unknown"
		if err == nil {
			sizeStr = formatBytes(size)
		}

		displayID := info.RunID
		if len(displayID) > 12 {
			displayID = displayID[:12] + "..."
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\t%d\t%s\t%s\n",
			displayID,
			info.Label,
			info.Model,
			info.OptLc,
			info.OptLp,
			info.Iterations,
			info.Timestamp.Format("2006-01-02 15:04:05"),
			sizeStr,
		)
	}

	w.Flush()

	fmt.Printf("\nTotal runs: %d\n", len(infos))
	return nil
}

func runShowRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	runStore, err := store.NewFSStore(runsDataDir)
	if err != nil {
		return fmt.Errorf("failed to create run store: %w", err)
	}

	result, err := runStore.LoadRun(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run:         %s\n", result.RunID)
	fmt.Printf("Label:       %s\n", result.Label)
	fmt.Printf("Model:       %s (%s)\n", result.Config.Model, result.Config.Method)
	fmt.Printf("kBT [pN·nm]: %.4f\n", result.Config.KBT)
	fmt.Printf("Iterations:  %d\n", result.Iterations)
	fmt.Printf("Lc [nm]:     %.4f\n", result.OptLc)
	fmt.Printf("Lp [nm]:     %.4f\n", result.OptLp)
	if result.OptS != nil {
		fmt.Printf("S  [pN]:     %.4f\n", *result.OptS)
	}
	fmt.Printf("ChiSqr:      %.6g\n", result.ChiSqr)
	fmt.Printf("Completed:   %s\n", result.Timestamp.Format("2006-01-02 15:04:05"))

	tr, err := store.NewTraceReader(runsDataDir, runID)
	if err != nil {
		// A missing trace is not fatal; the summary already printed.
		slog.Warn("no iteration trace for run", "runID", runID, "error", err)
		return nil
	}
	defer tr.Close()

	entries, err := tr.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read trace: %w", err)
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ITER\tLC [NM]\tLP [NM]\tS [PN]\tCHISQR\tDLP [NM]")
	for _, e := range entries {
		sStr := "-"
		if e.S != nil {
			sStr = fmt.Sprintf("%.2f", *e.S)
		}
		dlpStr := "-"
		if e.DLp != nil {
			dlpStr = fmt.Sprintf("%.4g", *e.DLp)
		}
		fmt.Fprintf(w, "%d\t%.2f\t%.2f\t%s\t%.6g\t%s\n",
			e.Iter, e.Lc, e.Lp, sStr, e.ChiSqr, dlpStr)
	}
	w.Flush()

	return nil
}

func runDeleteRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	runStore, err := store.NewFSStore(runsDataDir)
	if err != nil {
		return fmt.Errorf("failed to create run store: %w", err)
	}

	if !forceDelete {
		fmt.Printf("Delete run %s? [y/N]: ", runID)
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := runStore.DeleteRun(runID); err != nil {
		return err
	}

	slog.Info("deleted run", "run_id", runID)
	fmt.Printf("Deleted run %s\n", runID)
	return nil
}

// getDirSize calculates the total size of a directory
func getDirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}

// formatBytes formats bytes as human-readable string
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
