package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/JaimeStill/function-api/internal/api"
	"github.com/JaimeStill/function-api/pkg/openapi"
	"github.com/JaimeStill/function-api/pkg/router"
)

func TestSpec(t *testing.T) {
	p := newPlatform(t)
	r, err := api.New(p)
	if err != nil {
		t.Fatalf("api.New() error = %v", err)
	}

	spec, err := api.Spec(p.Config, r.Routes())
	if err != nil {
		t.Fatalf("Spec() error = %v", err)
	}

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("openapi = %q, want 3.1.0", spec.OpenAPI)
	}
	if spec.Info.Version != p.Config.Version {
		t.Errorf("info.version = %q, want %q", spec.Info.Version, p.Config.Version)
	}

	item := spec.Paths["/hello"]
	if item == nil || item.Get == nil {
		t.Fatal("GET /hello not documented")
	}
	if item.Get.Responses[200] == nil {
		t.Error("GET /hello missing 200 response")
	}

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("document is not JSON: %v", err)
	}
	paths := doc["paths"].(map[string]any)
	hello := paths["/hello"].(map[string]any)
	get := hello["get"].(map[string]any)
	responses := get["responses"].(map[string]any)
	if _, ok := responses["200"]; !ok {
		t.Errorf("responses = %v, want key \"200\"", responses)
	}
}

func TestSpec_UndocumentedRoute(t *testing.T) {
	p := newPlatform(t)
	noop := func(ctx context.Context, req *router.Request) (*router.Response, error) { return nil, nil }

	routes := []router.Route{
		{Method: http.MethodPost, Pattern: "/items", Handler: noop},
		{Method: http.MethodOptions, Pattern: "/items", Handler: noop},
	}

	spec, err := api.Spec(p.Config, routes)
	if err != nil {
		t.Fatalf("Spec() error = %v", err)
	}

	item := spec.Paths["/items"]
	if item == nil || item.Post == nil {
		t.Fatal("POST /items not documented")
	}
	if item.Options != nil {
		t.Error("OPTIONS /items documented, want omitted")
	}
}

func TestSpec_UnsupportedMethod(t *testing.T) {
	p := newPlatform(t)
	noop := func(ctx context.Context, req *router.Request) (*router.Response, error) { return nil, nil }

	_, err := api.Spec(p.Config, []router.Route{{Method: "BREW", Pattern: "/coffee", Handler: noop}})
	if err == nil {
		t.Error("Spec() error = nil, want unsupported method")
	}
}
