package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"latbench/communication"
	"latbench/core"
	"latbench/core/configs"
	"latbench/core/configs/parsers"
)

var clientArgs struct {
	configPath string
	host       string
	port       uint16
	transport  string
	requests   uint64
	dataFile   string
	outputFile string
	noVerify   bool
	zeroCopy   bool
}

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Run the benchmark client against a server",
	RunE:  runClient,
}

func init() {
	rootCmd.AddCommand(clientCmd)

	f := clientCmd.Flags()
	f.StringVar(&clientArgs.configPath, "config", "", "Path to a YAML client configuration")
	f.StringVar(&clientArgs.host, "host", "", "The server host (e.g. 127.0.0.1) or path to the unix socket")
	f.Uint16Var(&clientArgs.port, "port", 0, "The server port (ignored for unix sockets)")
	f.StringVar(&clientArgs.transport, "transport", configs.TransportTCP, "Transport to use: 'tcp' or 'unix'")
	f.Uint64Var(&clientArgs.requests, "num-requests", 1000, "Number of requests to make")
	f.StringVar(&clientArgs.dataFile, "data-file", "benchmark_data.bin", "Path to the pre-generated data file")
	f.StringVar(&clientArgs.outputFile, "output-file", "latencies.bin", "File to save raw latency data to")
	f.BoolVar(&clientArgs.noVerify, "no-verify", false, "Disable checksum validation")
	f.BoolVar(&clientArgs.zeroCopy, "zero-copy", false, "Send request payloads without a staging copy")
}

func clientConfig(cmd *cobra.Command) (*configs.ClientConfig, error) {
	config := configs.DefaultClientConfig()

	if clientArgs.configPath != "" {
		parsed, err := parsers.ParseClientConfig(clientArgs.configPath)
		if err != nil {
			return nil, err
		}
		config = parsed
	}

	f := cmd.Flags()
	if f.Changed("host") {
		config.Host = clientArgs.host
	}
	if f.Changed("port") {
		config.Port = clientArgs.port
	}
	if f.Changed("transport") {
		config.Transport = clientArgs.transport
	}
	if f.Changed("num-requests") {
		config.NumRequests = clientArgs.requests
	}
	if f.Changed("data-file") {
		config.DataFile = clientArgs.dataFile
	}
	if f.Changed("output-file") {
		config.OutputFile = clientArgs.outputFile
	}
	if f.Changed("no-verify") {
		config.Verify = !clientArgs.noVerify
	}
	if f.Changed("zero-copy") {
		config.ZeroCopy = clientArgs.zeroCopy
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func runClient(cmd *cobra.Command, args []string) error {
	config, err := clientConfig(cmd)
	if err != nil {
		return err
	}

	data, err := core.LoadDataSet(config.DataFile)
	if err != nil {
		return err
	}

	zap.L().Info("loaded data set",
		zap.String("path", config.DataFile),
		zap.Uint64("sizes", data.RequestCount),
		zap.Int("data-block", len(data.DataBlock)))

	conn, err := communication.Dial(config.Transport, config.Address())
	if err != nil {
		return err
	}
	defer conn.Close()

	session := core.NewClientSession(conn, config, data)

	runErr := session.Run()

	if err := conn.Shutdown(); err != nil {
		zap.L().Warn("failed to shut down connection", zap.Error(err))
	}

	// Whatever was measured before a session error is still worth keeping.
	if err := session.Latencies().WriteFile(config.OutputFile); err != nil {
		return err
	}

	if runErr != nil {
		return runErr
	}

	zap.L().Info("benchmark complete",
		zap.Uint64("requests", config.NumRequests),
		zap.String("output", config.OutputFile))

	return nil
}
