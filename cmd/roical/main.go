package main

import (
	"fmt"
	"os"

	"github.com/roigo/roi-calculator/internal/calculation"
	"github.com/roigo/roi-calculator/internal/config"
	"github.com/roigo/roi-calculator/internal/output"
	"github.com/spf13/cobra"
)

var (
	inputPath  string
	formatName string
	outputPath string
	debug      bool
)

// consoleLogger writes engine diagnostics to stderr when --debug is set.
type consoleLogger struct{}

func (consoleLogger) Debugf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...)
}
func (consoleLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "INFO  "+format+"\n", args...)
}
func (consoleLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARN  "+format+"\n", args...)
}
func (consoleLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "roical",
		Short: "ROI calculation engine for business-process automation",
		Long: `roical turns a small set of business-process inputs (labor hours,
team size, cost rate, automation percentage, implementation cost) into a
full investment-analysis report: NPV, IRR, payback period, TCO,
confidence score and tornado sensitivity analysis.`,
	}

	calculateCmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run the ROI analysis for a request file",
		RunE:  runCalculate,
	}
	calculateCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the YAML request file (required)")
	calculateCmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format: console, json or csv")
	calculateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to this file instead of stdout")
	calculateCmd.Flags().BoolVar(&debug, "debug", false, "log engine diagnostics to stderr")
	_ = calculateCmd.MarkFlagRequired("input")

	exampleCmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example request file",
		RunE:  runExample,
	}
	exampleCmd.Flags().StringVarP(&outputPath, "output", "o", "roi_request.yaml", "path for the example request file")

	rootCmd.AddCommand(calculateCmd, exampleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCalculate(cmd *cobra.Command, args []string) error {
	parser := config.NewRequestParser()
	req, err := parser.LoadFromFile(inputPath)
	if err != nil {
		return err
	}

	engine := calculation.NewEngine()
	if debug {
		engine.SetLogger(consoleLogger{})
	}

	opts := &calculation.Options{SensitivityVariables: req.Options.SensitivityVariables}
	if req.Options.SensitivityRange != nil {
		opts.SensitivityRange = *req.Options.SensitivityRange
	}

	report, err := engine.CalculateReport(req.Inputs, opts)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q, available: %v", formatName, output.FormatterNames())
	}
	data, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}

	if outputPath == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", outputPath)
	return nil
}

func runExample(cmd *cobra.Command, args []string) error {
	parser := config.NewRequestParser()
	if err := parser.WriteExampleRequest(outputPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "example request written to %s\n", outputPath)
	return nil
}
