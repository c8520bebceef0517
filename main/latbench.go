package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:          "latbench",
	Short:        "Request/response latency benchmark over TCP or unix sockets",
	SilenceUsage: true,
}

func prepareLogger() {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, err := config.Build()

	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to produce a logger: %s\n", err.Error())
		os.Exit(1)
	}

	zap.ReplaceGlobals(logger)
}

func main() {
	prepareLogger()

	if err := rootCmd.Execute(); err != nil {
		zap.L().Error(err.Error())
		os.Exit(1)
	}
}
