// Command eigen2x2 computes the eigenvalues and eigenvectors of a real 2×2
// matrix and explains how each eigenvector was obtained.
//
// Usage:
//
//	eigen2x2 [-config run.yaml] [-matrix "a00,a01,a10,a11"] [-seed N]
//	         [-deterministic] [-verify] [-plot out.webp] [-html out.html]
//	         [-log-level debug]
//
// Without -matrix (or a matrix in the config file) the entries are read
// interactively from stdin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/eigen2x2/chart"
	"github.com/katalvlaran/eigen2x2/config"
	"github.com/katalvlaran/eigen2x2/eigen"
	"github.com/katalvlaran/eigen2x2/input"
	"github.com/katalvlaran/eigen2x2/report"
	"github.com/katalvlaran/eigen2x2/verify"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("eigen2x2", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "Path to a .json or .yaml config file")
	matrixArg := fs.String("matrix", "", `Matrix entries row-major, e.g. "2,1,1,2" (default: prompt)`)
	seed := fs.Int64("seed", 0, "Seed for the free-parameter draws (default: time-based)")
	deterministic := fs.Bool("deterministic", false, "Use 1 for every free parameter")
	verifyFlag := fs.Bool("verify", false, "Print residuals and a gonum cross-check")
	plotPath := fs.String("plot", "", "Write a chart (.png .svg .pdf .jpg .webp .tga)")
	htmlPath := fs.String("html", "", "Write an interactive HTML chart")
	logLevel := fs.String("log-level", "", "debug, info, warn or error (default: info)")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return exitError
		}
	}

	flags := config.Flags{
		Seed:          *seed,
		Deterministic: *deterministic,
		Verify:        *verifyFlag,
		Plot:          *plotPath,
		HTML:          *htmlPath,
		LogLevel:      *logLevel,
	}
	if *matrixArg != "" {
		m, err := input.Parse(*matrixArg)
		if err != nil {
			fmt.Fprintf(stderr, "Error: -matrix: %v\n", err)
			return exitUsage
		}
		e := m.Entries()
		flags.Matrix = e[:]
	}
	cfg.Resolve(flags)

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m, ok, err := cfg.Input()
	if err != nil {
		log.Error("invalid matrix", "err", err)
		return exitError
	}
	if !ok {
		if m, err = input.Prompt(stdin, stdout); err != nil {
			log.Error("reading matrix", "err", err)
			return exitError
		}
		fmt.Fprintln(stdout)
	}

	res := eigen.Decompose(m, scalerOption(cfg, log))
	log.Debug("decomposed",
		"kind", res.Pair.Kind,
		"trace", res.Pair.Trace,
		"det", res.Pair.Det,
		"discriminant", res.Pair.Discriminant,
		"vectors", vectorCount(res.Vectors))

	var opts report.Options
	if cfg.Verify {
		opts.Check, opts.Comparison = check(res, log)
	}
	if err = report.Write(stdout, res, opts); err != nil {
		log.Error("writing report", "err", err)
		return exitError
	}

	if cfg.Plot != "" {
		if err = savePlot(res, cfg); err != nil {
			log.Error("writing chart", "path", cfg.Plot, "err", err)
			return exitError
		}
		log.Info("chart written", "path", cfg.Plot)
	}
	if cfg.HTML != "" {
		if err = saveHTML(res, cfg.HTML); err != nil {
			log.Error("writing html chart", "path", cfg.HTML, "err", err)
			return exitError
		}
		log.Info("html chart written", "path", cfg.HTML)
	}

	return exitOK
}

func scalerOption(cfg config.Config, log *slog.Logger) eigen.Option {
	if cfg.Deterministic {
		log.Debug("free parameters fixed at 1")
		return eigen.WithScaler(eigen.UnitScaler())
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("free parameters drawn", "seed", seed, "min", eigen.MinFree, "max", eigen.MaxFree)

	return eigen.WithSeed(seed)
}

func check(res eigen.Result, log *slog.Logger) (*verify.Report, *verify.Comparison) {
	rep := verify.Check(res)
	if !rep.OK {
		log.Warn("self-check failed",
			"sum_error", rep.SumError,
			"product_error", rep.ProductError)
	}
	if rep.Jacobi {
		log.Debug("jacobi rotation", "max_error", rep.JacobiError, "matches", rep.JacobiMatches)
	}

	cmp, err := verify.CrossCheck(res)
	switch {
	case errors.Is(err, verify.ErrFactorize):
		log.Warn("gonum cross-check unavailable", "err", err)
		return &rep, nil
	case err != nil:
		log.Warn("gonum cross-check disagrees", "err", err, "max_value_error", cmp.MaxValueError)
	}

	return &rep, &cmp
}

func vectorCount(vs eigen.VectorSet) int {
	if vs.HasTwoVectors {
		return 2
	}
	return 1
}

func savePlot(res eigen.Result, cfg config.Config) error {
	p, err := chart.Plot(res)
	if err != nil {
		return err
	}

	return chart.Save(p, cfg.Plot, chart.SaveOptions{
		Size:        vg.Length(cfg.PlotSize) * vg.Inch,
		Supersample: cfg.Supersample,
	})
}

func saveHTML(res eigen.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = chart.WriteHTML(f, res); err != nil {
		return err
	}

	return f.Close()
}
