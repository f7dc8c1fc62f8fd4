package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cwbudde/wlcfit/internal/model"
	"github.com/cwbudde/wlcfit/internal/plotting"
	"github.com/cwbudde/wlcfit/internal/store"
	"github.com/cwbudde/wlcfit/internal/wlc"
)

var (
	dataPath  string
	modelName string
	method    string
	label     string

	kbtFlag  float64
	tempFlag float64

	lcInit, lcMin, lcMax float64
	lpInit, lpMin, lpMax float64
	sInit, sMin, sMax    float64

	minDelta float64
	maxIters int

	fitDataDir string
	noSave     bool
	plotPath   string
	residPath  string
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit a worm-like chain model to force-extension data",
	Long: `Reads paired (distance [µm], force [pN]) observations from a CSV file,
iteratively fits the selected worm-like chain model and prints the
optimal parameters. Accepted iterations and the final summary are
persisted under the data directory unless --no-save is given.`,
	RunE: runFit,
}

func init() {
	fitCmd.Flags().StringVar(&dataPath, "data", "", "CSV file with distance,force columns (required)")
	fitCmd.Flags().StringVar(&modelName, "model", "odijk", "Model: WLC, eWLC, bouchiat, ebouchiat, odijk")
	fitCmd.Flags().StringVar(&method, "method", "leastsq", "Minimization method: leastsq, neldermead, mayfly")
	fitCmd.Flags().StringVar(&label, "label", "", "Dataset label (defaults to the data file name)")

	fitCmd.Flags().Float64Var(&kbtFlag, "kbt", 0, "Thermal energy kBT [pN·nm]")
	fitCmd.Flags().Float64Var(&tempFlag, "temp", 0, "Temperature [°C], alternative to --kbt")

	fitCmd.Flags().Float64Var(&lcInit, "lc", 1000, "Initial contour length [nm]")
	fitCmd.Flags().Float64Var(&lcMin, "lc-min", 0, "Lower contour length bound [nm]")
	fitCmd.Flags().Float64Var(&lcMax, "lc-max", 10000, "Upper contour length bound [nm]")
	fitCmd.Flags().Float64Var(&lpInit, "lp", 50, "Initial persistence length [nm]")
	fitCmd.Flags().Float64Var(&lpMin, "lp-min", 0, "Lower persistence length bound [nm]")
	fitCmd.Flags().Float64Var(&lpMax, "lp-max", 500, "Upper persistence length bound [nm]")
	fitCmd.Flags().Float64Var(&sInit, "s", 1000, "Initial stretch modulus [pN]")
	fitCmd.Flags().Float64Var(&sMin, "s-min", 0, "Lower stretch modulus bound [pN]")
	fitCmd.Flags().Float64Var(&sMax, "s-max", 100000, "Upper stretch modulus bound [pN]")

	fitCmd.Flags().Float64Var(&minDelta, "min-delta", 0.01, "Stop once the change in Lp drops below this [nm]")
	fitCmd.Flags().IntVar(&maxIters, "max-iters", 50, "Maximum fit iterations")

	fitCmd.Flags().StringVar(&fitDataDir, "data-dir", "./data", "Base directory for run storage")
	fitCmd.Flags().BoolVar(&noSave, "no-save", false, "Do not persist run artifacts")
	fitCmd.Flags().StringVar(&plotPath, "plot", "", "Write a fit plot to this file (png, svg, pdf)")
	fitCmd.Flags().StringVar(&residPath, "residuals", "", "Write a residual plot to this file")

	fitCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, args []string) error {
	kind, err := model.ParseKind(modelName)
	if err != nil {
		return err
	}

	meas, err := readMeasurement(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data: %w", err)
	}

	if label == "" {
		label = strings.TrimSuffix(filepath.Base(dataPath), filepath.Ext(dataPath))
	}

	slog.Info("loaded measurement", "file", dataPath, "points", meas.Len(), "label", label)

	spec := wlc.ParamSpec{
		Lc: wlc.Param{Value: lcInit, Lower: lcMin, Upper: lcMax},
		Lp: wlc.Param{Value: lpInit, Lower: lpMin, Upper: lpMax},
		S:  wlc.Param{Value: sInit, Lower: sMin, Upper: sMax},
	}
	if cmd.Flags().Changed("kbt") {
		spec.KBT = &kbtFlag
	}
	if cmd.Flags().Changed("temp") {
		spec.T = &tempFlag
	}
	if spec.KBT == nil && spec.T == nil {
		// Room temperature default
		t := 25.0
		spec.T = &t
	}

	cfg, err := wlc.Compile(kind, spec)
	if err != nil {
		return err
	}

	start := time.Now()
	run, err := cfg.Fit(meas, wlc.Options{
		MinDelta: minDelta,
		MaxIters: maxIters,
		Method:   method,
		Label:    label,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printSummary(run.Summary, kind, elapsed)

	if !noSave {
		runID, err := saveRun(cfg, run, kind)
		if err != nil {
			return err
		}
		fmt.Printf("Saved run %s\n", runID)
	}

	if plotPath != "" {
		title := fmt.Sprintf("FD curve fitting (%s)", label)
		if err := plotting.FitCurve(meas, run.BestFit, kind, title, plotPath); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", plotPath)
	}
	if residPath != "" {
		title := fmt.Sprintf("Fit residuals (%s)", label)
		if err := plotting.Residuals(meas, run.Last.Residuals, kind, title, residPath); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", residPath)
	}

	return nil
}

func printSummary(s wlc.Summary, kind model.Kind, elapsed time.Duration) {
	fmt.Printf("Model:       %s\n", kind)
	fmt.Printf("Iterations:  %d (%.2fs)\n", s.Iterations, elapsed.Seconds())
	fmt.Printf("Lc [nm]:     %.4f\n", s.OptLc)
	fmt.Printf("Lp [nm]:     %.4f\n", s.OptLp)
	if s.OptS != nil {
		fmt.Printf("S  [pN]:     %.4f\n", *s.OptS)
	}
	fmt.Printf("ChiSqr:      %.6g\n", s.ChiSqr)
}

func saveRun(cfg *wlc.Config, run *wlc.RunResult, kind model.Kind) (string, error) {
	fitStore, err := store.NewFSStore(fitDataDir)
	if err != nil {
		return "", fmt.Errorf("failed to create run store: %w", err)
	}

	runID := uuid.New().String()
	s := run.Summary

	result := store.NewRunResult(runID, s.Label, s.OptLc, s.OptLp, s.OptS, s.ChiSqr, s.Iterations, store.RunConfig{
		Model:    kind.String(),
		Method:   method,
		MinDelta: minDelta,
		MaxIters: maxIters,
		KBT:      cfg.KBT(),
	})
	if err := fitStore.SaveRun(runID, result); err != nil {
		return "", err
	}

	tw, err := store.NewTraceWriter(fitDataDir, runID)
	if err != nil {
		return "", err
	}
	defer tw.Close()

	for _, rec := range run.Accepted {
		entry := store.TraceEntry{
			Iter:      rec.Iter,
			Lc:        rec.Lc,
			Lp:        rec.Lp,
			S:         rec.S,
			ChiSqr:    rec.ChiSqr,
			Timestamp: time.Now(),
		}
		if !math.IsInf(rec.DLp, 0) {
			dlp := rec.DLp
			entry.DLp = &dlp
		}
		if err := tw.Write(entry); err != nil {
			return "", err
		}
	}
	if err := tw.Flush(); err != nil {
		return "", err
	}

	return runID, nil
}

// readMeasurement parses a two-column CSV of distance [µm] and force
// [pN]. Rows whose first column does not parse as a number (headers,
// comments) are skipped.
func readMeasurement(path string) (model.Measurement, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Measurement{}, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return model.Measurement{}, fmt.Errorf("failed to parse CSV: %w", err)
	}

	var distance, force []float64
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			continue
		}
		fv, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			continue
		}
		distance = append(distance, d)
		force = append(force, fv)
	}

	return model.NewMeasurement(distance, force)
}
