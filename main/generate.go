package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"latbench/core"
)

var generateArgs struct {
	outputFile string
	count      int
	minSize    int
	maxSize    int
	seed       int64
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a benchmark data file for the client",
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	f.StringVar(&generateArgs.outputFile, "output-file", "benchmark_data.bin", "File to write the data set to")
	f.IntVar(&generateArgs.count, "count", 1000, "Number of request size entries")
	f.IntVar(&generateArgs.minSize, "min-size", 64, "Minimum request payload size in bytes")
	f.IntVar(&generateArgs.maxSize, "max-size", 4096, "Maximum request payload size in bytes")
	f.Int64Var(&generateArgs.seed, "seed", 1234, "Seed for the size and payload PRNG")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateArgs.minSize < 0 || generateArgs.minSize > generateArgs.maxSize {
		return fmt.Errorf("min-size %d and max-size %d do not form a valid range",
			generateArgs.minSize, generateArgs.maxSize)
	}

	if generateArgs.count < 1 {
		return fmt.Errorf("count %d, need at least 1", generateArgs.count)
	}

	rng := rand.New(rand.NewSource(generateArgs.seed))

	sizes := make([]uint64, generateArgs.count)
	for i := range sizes {
		sizes[i] = uint64(generateArgs.minSize + rng.Intn(generateArgs.maxSize-generateArgs.minSize+1))
	}

	// The data block only needs to cover the largest size; payloads are
	// sliced from its front.
	dataBlock := make([]byte, generateArgs.maxSize)
	for i := range dataBlock {
		dataBlock[i] = byte(32 + rng.Intn(95))
	}

	if err := core.WriteDataSet(generateArgs.outputFile, sizes, dataBlock); err != nil {
		return err
	}

	zap.L().Info("wrote data set",
		zap.String("path", generateArgs.outputFile),
		zap.Int("sizes", generateArgs.count),
		zap.Int("data-block", len(dataBlock)))

	return nil
}
