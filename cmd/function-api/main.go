// Command function-api runs and inspects the API function outside a function host.
//
// Usage:
//
//	function-api serve                  Run the standalone HTTP server
//	function-api invoke GET /hello      Dispatch one request in-process
//	function-api routes --format yaml   List registered routes
//	function-api openapi                Print the OpenAPI document
//	function-api version                Show version
package main

import (
	"fmt"
	"os"

	"github.com/JaimeStill/function-api/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "function-api",
		Short:         "Run the API function outside a function host",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.BaseConfigFile, "Path to the TOML configuration file")

	rootCmd.AddCommand(
		newServeCmd(&configPath),
		newInvokeCmd(&configPath),
		newRoutesCmd(&configPath),
		newOpenAPICmd(&configPath),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
