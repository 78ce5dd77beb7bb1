package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/JaimeStill/function-api/internal/api"
	"github.com/JaimeStill/function-api/internal/platform"
	"github.com/JaimeStill/function-api/internal/shell"
	"github.com/JaimeStill/function-api/pkg/router"
	"github.com/spf13/cobra"
)

func newInvokeCmd(configPath *string) *cobra.Command {
	var (
		headers []string
		data    string
	)

	cmd := &cobra.Command{
		Use:   "invoke METHOD PATH",
		Short: "Dispatch one request in-process and print the response",
		Long: `Invoke builds the function router exactly as a function host would and
dispatches a single request to it without opening a socket.

Examples:
    function-api invoke GET /hello
    function-api invoke POST /hello --header "Content-Type: application/json" --data '{}'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(args[0], args[1], headers, data)
			if err != nil {
				return err
			}
			return runInvoke(cmd.Context(), *configPath, req, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, `Request header as "Name: value" (repeatable)`)
	cmd.Flags().StringVarP(&data, "data", "d", "", "Request body")

	return cmd
}

func buildRequest(method, target string, headers []string, data string) (*router.Request, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", target, err)
	}

	header := make(http.Header)
	for _, h := range headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			return nil, fmt.Errorf("invalid header %q: want \"Name: value\"", h)
		}
		header.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	return &router.Request{
		Method: strings.ToUpper(method),
		Path:   u.Path,
		Query:  u.Query(),
		Header: header,
		Body:   []byte(data),
	}, nil
}

func runInvoke(ctx context.Context, configPath string, req *router.Request, out io.Writer) error {
	p, err := platform.Bootstrap(ctx, configPath, platform.WithLogOutput(os.Stderr))
	if err != nil {
		return err
	}
	defer p.Shutdown(ctx)

	r, err := api.New(p)
	if err != nil {
		return err
	}

	writeResponse(out, shell.Serve(ctx, r, req))
	return nil
}

func writeResponse(out io.Writer, resp *router.Response) {
	fmt.Fprintf(out, "%d %s\n", resp.Status, http.StatusText(resp.Status))

	keys := make([]string, 0, len(resp.Header))
	for key := range resp.Header {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		for _, v := range resp.Header[key] {
			fmt.Fprintf(out, "%s: %s\n", key, v)
		}
	}

	fmt.Fprintf(out, "\n%s\n", resp.Body)
}
