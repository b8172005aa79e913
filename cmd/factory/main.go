// Command factory reads a recipe/machine problem as JSON on stdin and
// writes a production plan, or a maximum-rate diagnosis, as JSON on stdout.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/steadystate/internal/factory"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "factory",
	Short: "Compute a steady-state production plan from a recipe catalogue",
	Long: `factory reads one JSON problem document from stdin describing recipes,
machine types with module assignments, raw supply caps, and a target item
rate. It writes one JSON result document to stdout: a feasible production
plan minimizing total machines, or the maximum achievable target rate with
a bottleneck diagnosis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "factory: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("fatal startup failure", zap.Error(err))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return writeError(cmd.OutOrStdout(), fmt.Errorf("reading stdin: %w", err))
	}

	var in inputWire
	if err := json.Unmarshal(raw, &in); err != nil {
		logger.Error("malformed JSON input", zap.Error(err))
		return writeError(cmd.OutOrStdout(), fmt.Errorf("malformed JSON: %w", err))
	}

	if err := validator.New().Struct(in); err != nil {
		logger.Debug("input failed validation", zap.Error(err))
		return writeError(cmd.OutOrStdout(), fmt.Errorf("invalid input: %w", err))
	}

	res, err := factory.Solve(in.toProblem())
	if err != nil {
		logger.Error("solver reported an error", zap.Error(err))
		return writeError(cmd.OutOrStdout(), err)
	}

	return writeJSON(cmd.OutOrStdout(), toOutput(res))
}

func writeError(w io.Writer, err error) error {
	return writeJSON(w, errorOutput{Feasible: false, Error: err.Error()})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
