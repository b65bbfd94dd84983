package cli

import (
	"github.com/rcliao/salience/internal/engine"
	"github.com/spf13/cobra"
)

// addConfigFlags registers the engine tunables on commands that rank
// keywords.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("threshold", uint64(engine.DefaultThreshold), "Minimum weight for a keyword to be extracted")
	cmd.Flags().Int("take-min", engine.DefaultTakeWordsMin, "Lower bound on result size")
	cmd.Flags().Int("take-max", engine.DefaultTakeWordsMax, "Upper bound on result size")
	cmd.Flags().Int("percentage", engine.DefaultTakeWordsPct, "Extraction window as a percentage of message length")
	cmd.Flags().Int("min-word-length", engine.DefaultMinWordLength, "Minimum word length eligible for extraction")
	cmd.Flags().Bool("corrected-floor", false, "Clamp extraction windows to take-min instead of min-word-length")
}

// configFromFlags builds an engine config from a command's flags.
func configFromFlags(cmd *cobra.Command) engine.Config {
	threshold, _ := cmd.Flags().GetUint64("threshold")
	takeMin, _ := cmd.Flags().GetInt("take-min")
	takeMax, _ := cmd.Flags().GetInt("take-max")
	pct, _ := cmd.Flags().GetInt("percentage")
	minLen, _ := cmd.Flags().GetInt("min-word-length")
	corrected, _ := cmd.Flags().GetBool("corrected-floor")

	return engine.Config{
		Threshold:           engine.Weight(threshold),
		TakeWordsMin:        takeMin,
		TakeWordsMax:        takeMax,
		TakeWordsPercentage: pct,
		MinWordLength:       minLen,
		UseTakeWordsMin:     corrected,
	}
}
