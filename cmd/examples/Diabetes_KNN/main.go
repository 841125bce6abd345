package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/data"
	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/dataprep"
	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/eval"
	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/stats"
	"github.com/suriyah1310/KNN-CLASSIFIER/pkg/viz"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --input      : CSV URL or local path. Default = public diabetes.csv
// --synthetic  : Generate N synthetic rows instead of loading --input (0 = off)
// --out        : Directory for PNG charts. Default = .
// --plots      : Render charts (the class chart is always class_distribution.png)
// --bins       : Histogram bins per feature
// --strategy   : Zero imputation: "mean", "mean-nonzero", "median-nonzero"
// --ks         : Comma separated neighbour counts, all evaluated on one split
// --test-ratio : Held-out fraction
// --seed       : Split seed
// --backend    : Classifier: "native" or "golearn"
// --scale      : Standardize features using training statistics
// --log-level  : zerolog level (debug, info, warn, error)
//
// Example:
//   go run ./cmd/examples/Diabetes_KNN --ks 3,7 --out plots
//
// ---------------------------------------------------------------------
//

func main() {
	input := flag.String("input", data.DefaultURL, "CSV URL or local path")
	synthetic := flag.Int("synthetic", 0, "Generate this many synthetic rows instead of loading --input")
	outDir := flag.String("out", ".", "Directory for PNG charts")
	plots := flag.Bool("plots", true, "Render charts")
	bins := flag.Int("bins", 20, "Histogram bins per feature")
	strategyName := flag.String("strategy", dataprep.MeanIncludingZeros.String(), "Zero imputation strategy")
	ks := flag.String("ks", "3,7", "Comma separated neighbour counts")
	testRatio := flag.Float64("test-ratio", 0.25, "Held-out fraction")
	seed := flag.Int64("seed", 0, "Split seed")
	backend := flag.String("backend", eval.BackendNative, "Classifier backend: native or golearn")
	scale := flag.Bool("scale", false, "Standardize features using training statistics")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	strategy, err := dataprep.ParseStrategy(*strategyName)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid strategy")
	}
	cfg := eval.DefaultConfig()
	cfg.TestRatio, cfg.Seed, cfg.Backend, cfg.Scale = *testRatio, *seed, *backend, *scale
	if cfg.Ks, err = parseKs(*ks); err != nil {
		log.Fatal().Err(err).Msg("invalid --ks")
	}

	// ---- Load ----
	var raw *data.Table
	if *synthetic > 0 {
		raw = data.Synthetic(*synthetic, 0.35, *seed)
		log.Info().Int("rows", *synthetic).Msg("generated synthetic table")
	} else {
		raw, err = data.Load(context.Background(), *input)
		if err != nil {
			log.Fatal().Err(err).Str("input", *input).Msg("could not load dataset")
		}
		log.Info().Str("input", *input).Int("rows", raw.Nrow()).Msg("loaded dataset")
	}

	fmt.Println("=== Raw data ===")
	printSummary(raw)
	fmt.Println(raw.Describe())
	counts := raw.ClassCounts()
	fmt.Printf("Outcome counts: 0=%d 1=%d (majority %.1f%%)\n\n",
		counts[0], counts[1], 100*float64(max(counts[0], counts[1]))/float64(raw.Nrow()))

	// ---- Visualize the raw table ----
	if *plots {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			log.Fatal().Err(err).Msg("could not create output directory")
		}
		renderRaw(raw, *outDir, *bins)
	}

	// ---- Impute zero sentinels ----
	clean, err := dataprep.ImputeZeros(raw, dataprep.ZeroSentinelColumns, dataprep.WithStrategy(strategy))
	if err != nil {
		log.Fatal().Err(err).Msg("imputation failed")
	}
	fmt.Printf("=== After %s imputation ===\n", strategy)
	printSummary(clean)
	fmt.Println()

	// ---- Evaluate ----
	rep, err := eval.Evaluate(clean, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}
	printReport(rep)

	if *plots {
		for _, run := range rep.Runs {
			path := filepath.Join(*outDir, fmt.Sprintf("confusion_k%d.png", run.K))
			if err := viz.ConfusionHeatmap(run.Confusion, path); err != nil {
				log.Error().Err(err).Int("k", run.K).Msg("could not render confusion matrix")
				continue
			}
			log.Info().Str("path", path).Msg("saved confusion matrix")
		}
	}
}

func parseKs(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no neighbour counts in %q", s)
	}
	return out, nil
}

func printSummary(t *data.Table) {
	fmt.Printf("%-26s%8s%10s%10s%9s%9s%9s%9s%9s%7s\n",
		"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max", "zeros")
	for _, c := range stats.Describe(t) {
		fmt.Printf("%-26s%8d%10.3f%10.3f%9.3f%9.3f%9.3f%9.3f%9.3f%7d\n",
			c.Name, c.Count, c.Mean, c.Std, c.Min, c.Q1, c.Median, c.Q3, c.Max, c.Zeros)
	}
}

func renderRaw(t *data.Table, dir string, bins int) {
	path := filepath.Join(dir, viz.ClassDistributionFile)
	if err := viz.ClassDistribution(t, path); err != nil {
		log.Error().Err(err).Msg("could not render class distribution")
	} else {
		log.Info().Str("path", path).Msg("saved class distribution")
	}

	if paths, err := viz.FeatureHistograms(t, dir, bins); err != nil {
		log.Error().Err(err).Msg("could not render histograms")
	} else {
		log.Info().Int("files", len(paths)).Msg("saved feature histograms")
	}

	for _, feature := range []string{data.Glucose, data.BMI, data.Age} {
		path := filepath.Join(dir, "box_"+feature+".png")
		if err := viz.BoxByOutcome(t, feature, path); err != nil {
			log.Error().Err(err).Str("feature", feature).Msg("could not render box plot")
		}
	}

	corr, err := stats.CorrelationMatrix(t, data.Columns)
	if err == nil {
		err = viz.CorrelationHeatmap(data.Columns, corr, filepath.Join(dir, "correlation.png"))
	}
	if err != nil {
		log.Error().Err(err).Msg("could not render correlation heat map")
	}
}

func printReport(rep *eval.Report) {
	fmt.Println("=== KNN evaluation ===")
	fmt.Printf("Train size: %d, Test size: %d\n", len(rep.Train), len(rep.Test))
	fmt.Printf("Majority baseline (always %.0f): %.4f\n", rep.BaselineLabel, rep.BaselineAccuracy)
	for _, run := range rep.Runs {
		fmt.Printf("\n--- k=%d ---\n", run.K)
		fmt.Printf("Test accuracy:      %.4f\n", run.TestAccuracy)
		fmt.Printf("Train accuracy:     %.4f\n", run.TrainAccuracy)
		fmt.Printf("Accuracy:           %.4f\n", run.Accuracy)
		fmt.Printf("Balanced accuracy:  %.4f\n", run.BalancedAccuracy)
		fmt.Println("Confusion matrix (rows actual, cols predicted):")
		for r := range 2 {
			fmt.Printf("  %d: %5d %5d   %.3f %.3f\n", r,
				run.Confusion[r][0], run.Confusion[r][1], run.Normalized[r][0], run.Normalized[r][1])
		}
		prec, rec, f1 := run.Confusion.PrecisionRecallF1()
		fmt.Printf("Precision %.4f, Recall %.4f, F1 %.4f\n", prec, rec, f1)
		if run.Summary != "" {
			fmt.Println(run.Summary)
		}
	}
}
