// Package cmd — extract command.
// This is the main command that orchestrates the pipeline:
// resolve input file(s) → extract listings → render CSV → write.
//
// It handles flag validation, input resolution (--input / --latest /
// directory batch), and per-file error isolation in batch mode.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kaiosilva-dataeng/warmane-trade/config"
	"github.com/kaiosilva-dataeng/warmane-trade/core"
	"github.com/kaiosilva-dataeng/warmane-trade/core/extract"
	"github.com/kaiosilva-dataeng/warmane-trade/core/output"
	"github.com/kaiosilva-dataeng/warmane-trade/core/render"
	"github.com/kaiosilva-dataeng/warmane-trade/scan"
)

// Flag variables.
var (
	flagInput  string
	flagOutput string
	flagLatest bool
	flagSilent bool
	flagConfig string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract auction listings from an actioneer HTML snapshot to CSV",
	Long: `Extract reads a saved actioneer HTML snapshot, pulls one record per
listing row, and writes them as CSV.

Examples:
  warmane-trade extract --input data/raw/actioneer-03-01-2025.html
  warmane-trade extract --latest
  warmane-trade extract --input data/raw --output out       (batch mode)
  warmane-trade extract -i data/raw -l -o listings.csv`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&flagInput, "input", "i", "", "HTML snapshot file, or a directory to scan")
	extractCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output CSV path (directory in batch mode)")
	extractCmd.Flags().BoolVarP(&flagLatest, "latest", "l", false, "Pick the most recent snapshot from the input directory")
	extractCmd.Flags().BoolVarP(&flagSilent, "silent", "s", false, "Suppress sample output")
	extractCmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
}

func runExtract(cmd *cobra.Command, args []string) error {
	// Logging setup.
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if flagSilent {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	inputs, batch, err := resolveInputs(cfg)
	if err != nil {
		return err
	}

	// Initialize pipeline components.
	extractor := extract.New()
	renderer := render.NewCSVRenderer()

	outDir := cfg.ProcessedDir
	if batch && flagOutput != "" {
		outDir = flagOutput
	}
	writer, err := output.New(outDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	if batch {
		return runBatch(inputs, extractor, renderer, writer)
	}
	return runSingle(inputs[0], flagOutput, extractor, renderer, writer, flagSilent)
}

// resolveInputs determines which snapshot file(s) to process.
// A directory input without --latest means batch mode over every match.
func resolveInputs(cfg *config.Config) ([]string, bool, error) {
	switch {
	case flagInput == "":
		// No input given: fall back to the newest snapshot in the raw dir.
		path, err := scan.Latest(cfg.RawDir, cfg.Pattern)
		if err != nil {
			return nil, false, err
		}
		return []string{path}, false, nil

	default:
		info, err := os.Stat(flagInput)
		if err != nil {
			return nil, false, fmt.Errorf("input %s: %w", flagInput, err)
		}
		if !info.IsDir() {
			return []string{flagInput}, false, nil
		}
		if flagLatest {
			path, err := scan.Latest(flagInput, cfg.Pattern)
			if err != nil {
				return nil, false, err
			}
			return []string{path}, false, nil
		}
		paths, err := scan.All(flagInput, cfg.Pattern)
		if err != nil {
			return nil, false, err
		}
		return paths, true, nil
	}
}

// runSingle processes one snapshot through the pipeline.
func runSingle(
	inputPath string,
	outputPath string,
	extractor core.Extractor,
	renderer core.Renderer,
	writer *output.Writer,
	silent bool,
) error {
	records, data, err := processFile(inputPath, extractor, renderer)
	if err != nil {
		return err
	}

	var path string
	if outputPath != "" {
		path, err = writer.WriteTo(outputPath, data)
	} else {
		path, err = writer.WriteFor(inputPath, data, renderer.Extension())
	}
	if err != nil {
		return err
	}

	log.Info().Str("input", inputPath).Str("output", path).
		Int("listings", len(records)).Msg("extracted")
	if !silent {
		printSample(records, path)
	}
	return nil
}

// runBatch processes every snapshot independently. One file's failure
// is logged and skipped; the batch fails only in aggregate.
func runBatch(
	inputs []string,
	extractor core.Extractor,
	renderer core.Renderer,
	writer *output.Writer,
) error {
	log.Info().Int("files", len(inputs)).Msg("batch extraction")

	var errCount int
	for i, inputPath := range inputs {
		log.Info().Int("file", i+1).Int("of", len(inputs)).Str("input", inputPath).Msg("processing")

		records, data, err := processFile(inputPath, extractor, renderer)
		if err != nil {
			log.Error().Err(err).Str("input", inputPath).Msg("extraction failed")
			errCount++
			continue
		}

		path, err := writer.WriteFor(inputPath, data, renderer.Extension())
		if err != nil {
			log.Error().Err(err).Str("input", inputPath).Msg("write failed")
			errCount++
			continue
		}
		log.Info().Str("output", path).Int("listings", len(records)).Msg("written")
	}

	if errCount > 0 {
		return fmt.Errorf("%d/%d files failed", errCount, len(inputs))
	}
	return nil
}

// processFile runs a single snapshot through the full pipeline.
func processFile(
	inputPath string,
	extractor core.Extractor,
	renderer core.Renderer,
) ([]core.ListingRecord, []byte, error) {
	// 1. Read
	html, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read: %w", err)
	}

	// 2. Extract listing records
	records, err := extractor.Extract(string(html))
	if err != nil {
		return nil, nil, fmt.Errorf("extract %s: %w", inputPath, err)
	}

	// 3. Render to CSV
	data, err := renderer.Render(records)
	if err != nil {
		return nil, nil, fmt.Errorf("render: %w", err)
	}

	return records, data, nil
}

// sampleSize keeps the console preview manageable.
const sampleSize = 3

// printSample prints the first few extracted records to stdout.
func printSample(records []core.ListingRecord, outputPath string) {
	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "No listings extracted.")
		return
	}

	fmt.Fprintln(os.Stdout, "\nSample data:")
	for i, rec := range records {
		if i == sampleSize {
			break
		}
		fmt.Fprintf(os.Stdout, "Item %d:\n", i+1)
		for j, value := range rec.Fields() {
			fmt.Fprintf(os.Stdout, "  %s: %s\n", core.Header[j], value)
		}
	}
	fmt.Fprintf(os.Stdout, "\nTotal listings extracted: %d\n", len(records))
	fmt.Fprintf(os.Stdout, "Full data saved to %s\n", outputPath)
}
