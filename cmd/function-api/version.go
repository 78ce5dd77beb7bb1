package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version can be set via ldflags: -ldflags "-X main.version=v1.0.0"
var version = ""

func getVersion() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}

	return "dev"
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "function-api %s\n", getVersion())
		},
	}
}
