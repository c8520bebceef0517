package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"latbench/core"
	"latbench/core/configs"
	"latbench/core/configs/parsers"
)

var serverArgs struct {
	configPath string
	transport  string
	seed       int64
	responses  int
	minLength  int
	maxLength  int
	host       string
	port       uint16
	socketPath string
	verify     bool
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the benchmark server for a single connection",
	RunE:  runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)

	f := serverCmd.Flags()
	f.StringVar(&serverArgs.configPath, "config", "", "Path to a YAML server configuration")
	f.StringVar(&serverArgs.transport, "transport", configs.TransportTCP, "Transport to use: 'tcp' or 'unix'")
	f.Int64Var(&serverArgs.seed, "seed", 1234, "Seed for the response corpus PRNG")
	f.IntVar(&serverArgs.responses, "num-responses", 100, "Number of response bodies to generate, also the request budget")
	f.IntVar(&serverArgs.minLength, "min-length", 1024, "Minimum response body size in bytes")
	f.IntVar(&serverArgs.maxLength, "max-length", 1024*1024, "Maximum response body size in bytes")
	f.StringVar(&serverArgs.host, "host", "127.0.0.1", "Host to bind for TCP transport")
	f.Uint16Var(&serverArgs.port, "port", 8080, "Port to bind for TCP transport")
	f.StringVar(&serverArgs.socketPath, "socket-path", "/tmp/latbench.sock", "Path for the unix domain socket")
	f.BoolVar(&serverArgs.verify, "verify", true, "Include checksum calculations")
}

func serverConfig(cmd *cobra.Command) (*configs.ServerConfig, error) {
	config := configs.DefaultServerConfig()

	if serverArgs.configPath != "" {
		parsed, err := parsers.ParseServerConfig(serverArgs.configPath)
		if err != nil {
			return nil, err
		}
		config = parsed
	}

	f := cmd.Flags()
	if f.Changed("transport") {
		config.Transport = serverArgs.transport
	}
	if f.Changed("seed") {
		config.Seed = serverArgs.seed
	}
	if f.Changed("num-responses") {
		config.NumResponses = serverArgs.responses
	}
	if f.Changed("min-length") {
		config.MinLength = serverArgs.minLength
	}
	if f.Changed("max-length") {
		config.MaxLength = serverArgs.maxLength
	}
	if f.Changed("host") {
		config.Host = serverArgs.host
	}
	if f.Changed("port") {
		config.Port = serverArgs.port
	}
	if f.Changed("socket-path") {
		config.SocketPath = serverArgs.socketPath
	}
	if f.Changed("verify") {
		config.Verify = serverArgs.verify
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	config, err := serverConfig(cmd)
	if err != nil {
		return err
	}

	server, err := core.NewServer(config)
	if err != nil {
		return err
	}

	zap.L().Info("server listening for a connection",
		zap.String("transport", config.Transport),
		zap.String("addr", server.Addr().String()))

	if err := server.Serve(); err != nil {
		return err
	}

	zap.L().Info("server shutting down")

	return nil
}
