// Command gridroute solves the grid routing puzzles:
//
//	gridroute --day 16 [--input FILE] [--show] [--log-level debug]
//
// Without --input the puzzle text is read from <input-dir>/day<N>.txt, where
// the input directory comes from GRIDROUTE_INPUT_DIR (default "inputs").
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/katalvlaran/gridroute/config"
	"github.com/katalvlaran/gridroute/puzzles"
)

const reindeerDay = 16

// errUsage marks failures caused by bad command-line arguments.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gridroute:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gridroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		day      = fs.IntP("day", "d", 0, fmt.Sprintf("puzzle day to solve, one of %v", puzzles.Days()))
		input    = fs.StringP("input", "i", "", "input file (default <input-dir>/day<N>.txt)")
		show     = fs.Bool("show", false, "render the optimal tiles of the reindeer maze")
		logLevel = fs.String("log-level", "", "log level, overrides "+config.EnvLogLevel)
		envFile  = fs.String("env-file", "", "dotenv file to load (default .env)")
	)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		if cfg.LogLevel, err = config.ParseLevel(*logLevel); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
	}
	log := cfg.Logger()
	log.SetOutput(stderr)
	log.WithFields(cfg.Fields()).Debug("configuration loaded")

	solve, err := puzzles.Lookup(*day)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *show && *day != reindeerDay {
		return fmt.Errorf("%w: --show is only supported for day %d", errUsage, reindeerDay)
	}

	path := *input
	if path == "" {
		path = filepath.Join(cfg.InputDir, fmt.Sprintf("day%d.txt", *day))
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	dayLog := log.WithFields(logrus.Fields{"day": *day, "input": path})
	began := time.Now()
	ans, err := solve(string(raw), dayLog)
	if err != nil {
		return fmt.Errorf("day %d: %w", *day, err)
	}
	dayLog.WithField("elapsed", time.Since(began).String()).Info("solved")

	fmt.Fprintf(stdout, "Part 1: %s\n", ans.Part1)
	fmt.Fprintf(stdout, "Part 2: %s\n", ans.Part2)

	if *show {
		g, res, err := puzzles.ReindeerRoutes(string(raw), nil)
		if err != nil {
			return fmt.Errorf("day %d: %w", *day, err)
		}
		fmt.Fprint(stdout, g.Overlay(res.Cells, 'O'))
	}

	return nil
}
