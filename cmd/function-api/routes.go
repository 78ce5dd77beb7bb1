package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/JaimeStill/function-api/internal/api"
	"github.com/JaimeStill/function-api/internal/platform"
	"github.com/JaimeStill/function-api/pkg/router"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type routeInfo struct {
	Method  string `json:"method" yaml:"method"`
	Pattern string `json:"pattern" yaml:"pattern"`
}

func newRoutesCmd(configPath *string) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List registered routes",
		Long: `Routes prints the sealed route table in registration order.

Examples:
    function-api routes
    function-api routes --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutes(cmd.Context(), *configPath, outputFormat, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text, json, or yaml")

	return cmd
}

func runRoutes(ctx context.Context, configPath, format string, out io.Writer) error {
	p, err := platform.Bootstrap(ctx, configPath, platform.WithLogOutput(os.Stderr))
	if err != nil {
		return err
	}
	defer p.Shutdown(ctx)

	r, err := api.New(p)
	if err != nil {
		return err
	}

	return outputRoutes(out, r.Routes(), format)
}

func outputRoutes(out io.Writer, routes []router.Route, format string) error {
	infos := make([]routeInfo, 0, len(routes))
	for _, route := range routes {
		infos = append(infos, routeInfo{Method: route.Method, Pattern: route.Pattern})
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := yaml.Marshal(infos)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))

	case "text":
		if len(infos) == 0 {
			fmt.Fprintln(out, "No routes registered.")
			return nil
		}
		for _, info := range infos {
			fmt.Fprintf(out, "%-7s %s\n", info.Method, info.Pattern)
		}

	default:
		return fmt.Errorf("unknown format: %s (use text, json, or yaml)", format)
	}

	return nil
}
