package main

import (
	"descstats/config"
	"descstats/core"
	"descstats/stats"
	"fmt"
	"io"
	"os"

	"github.com/akamensky/argparse"
	"github.com/rs/zerolog"
)

func main() {
	parser := argparse.NewParser("describe", "Print descriptive statistics of a numeric sample")
	inputFile := parser.String("f", "file", &argparse.Options{Help: "File of whitespace separated numbers (default stdin)"})
	configFile := parser.String("c", "config", &argparse.Options{Help: "Config file (default ./descstats.yaml)"})
	saveName := parser.String("s", "save", &argparse.Options{Help: "Store the sample under this name"})
	loadName := parser.String("l", "load", &argparse.Options{Help: "Load a stored sample instead of reading input"})
	weightsFile := parser.String("w", "weights", &argparse.Options{Help: "File of weights for weighted skewness and kurtosis"})
	all := parser.Flag("a", "all", &argparse.Options{Help: "Print the extended report"})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		os.Exit(1)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "describe: %v\n", err)
		os.Exit(1)
	}
	log := config.NewLogger(cfg.Logging, os.Stderr)

	opts := options{
		inputFile:   *inputFile,
		saveName:    *saveName,
		loadName:    *loadName,
		weightsFile: *weightsFile,
		all:         *all,
	}
	if err := run(cfg, log, opts, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("describe failed")
		os.Exit(1)
	}
}

type options struct {
	inputFile   string
	saveName    string
	loadName    string
	weightsFile string
	all         bool
}

func storeConfig(cfg *config.Config, log zerolog.Logger) *core.StoreConfig {
	sc := core.DefaultStoreConfig(cfg.Store.Path)
	sc.BadgerConfig.InMemory = cfg.Store.InMemory
	if cfg.Store.InMemory {
		sc.BadgerConfig.Path = ""
	}
	sc.BadgerConfig.Logger = log
	sc.CacheCounters = cfg.Store.CacheCounters
	sc.CacheMaxCost = cfg.Store.CacheMaxCost
	sc.Logger = log
	return sc
}

func run(cfg *config.Config, log zerolog.Logger, opts options, stdin io.Reader, stdout io.Writer) error {
	var db *core.DB
	if opts.saveName != "" || opts.loadName != "" {
		var err error
		db, err = core.New(storeConfig(cfg, log))
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer db.Close()
	}

	var sample []float64
	var err error
	if opts.loadName != "" {
		sample, err = db.GetSample(opts.loadName)
	} else {
		sample, err = readSampleFrom(opts.inputFile, stdin)
	}
	if err != nil {
		return err
	}
	log.Debug().Int("count", len(sample)).Msg("read sample")

	if opts.saveName != "" {
		if err := db.PutSample(opts.saveName, sample); err != nil {
			return fmt.Errorf("save sample: %w", err)
		}
		log.Info().Str("sample", opts.saveName).Int("count", len(sample)).Msg("saved sample")
	}

	if opts.all {
		report, err := core.NewReport(opts.saveName, sample)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(stdout, report.String()); err != nil {
			return err
		}
	} else if err := stats.Fdescribe(stdout, sample); err != nil {
		return err
	}

	if opts.weightsFile != "" {
		return writeWeighted(stdout, sample, opts.weightsFile, stdin)
	}
	return nil
}

func writeWeighted(w io.Writer, sample []float64, weightsFile string, stdin io.Reader) error {
	weights, err := readSampleFrom(weightsFile, stdin)
	if err != nil {
		return err
	}
	skew, err := stats.WeightedSkewness(sample, weights)
	if err != nil {
		return err
	}
	kurt, err := stats.WeightedKurtosis(sample, weights)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Weighted Skewness: %.6f\nWeighted Kurtosis: %.6f\n", skew, kurt)
	return err
}
