package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/JaimeStill/function-api/internal/api"
	"github.com/JaimeStill/function-api/internal/platform"
	"github.com/JaimeStill/function-api/pkg/openapi"
	"github.com/spf13/cobra"
)

func newOpenAPICmd(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document for the registered routes",
		Long: `OpenAPI generates an OpenAPI 3.1 document from the sealed route table.

Examples:
    function-api openapi
    function-api openapi --output api.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpenAPI(cmd.Context(), *configPath, output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func runOpenAPI(ctx context.Context, configPath, output string, out io.Writer) error {
	p, err := platform.Bootstrap(ctx, configPath, platform.WithLogOutput(os.Stderr))
	if err != nil {
		return err
	}
	defer p.Shutdown(ctx)

	r, err := api.New(p)
	if err != nil {
		return err
	}

	spec, err := api.Spec(p.Config, r.Routes())
	if err != nil {
		return err
	}

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		return fmt.Errorf("marshal openapi: %w", err)
	}

	if output == "" {
		fmt.Fprintln(out, string(data))
		return nil
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Fprintf(out, "OpenAPI document written to %s\n", output)
	return nil
}
