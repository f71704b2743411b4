package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nsheridan/h2wire/pkg/h2wire/http2"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "h2wire",
	Short: "HPACK and HTTP/2 frame codec utilities",
	Long: "h2wire drives the HPACK header-compression codec and the HTTP/2 " +
		"frame codec directly, without a network stack, for inspecting " +
		"wire captures and building test fixtures.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a codec config YAML file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(hpackCmd)
	rootCmd.AddCommand(frameCmd)
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func loadConfig() (http2.CodecConfig, error) {
	if configPath == "" {
		return http2.DefaultCodecConfig(), nil
	}
	return http2.LoadCodecConfig(configPath)
}
