package api

import (
	"context"
	"net/http"

	"github.com/JaimeStill/function-api/pkg/handlers"
	"github.com/JaimeStill/function-api/pkg/openapi"
	"github.com/JaimeStill/function-api/pkg/router"
)

// HelloMessage is the payload returned by GET /hello.
const HelloMessage = "Hello from the API!"

type helloResponse struct {
	Message string `json:"message"`
}

func registerRoutes(r *router.Router) error {
	return r.RegisterRoute(router.Route{
		Method:  http.MethodGet,
		Pattern: "/hello",
		Handler: handleHello,
		OpenAPI: helloOperation,
	})
}

var helloOperation = &openapi.Operation{
	Summary:     "Greeting",
	Description: "Returns a static greeting. Query parameters, headers, and body are ignored.",
	Tags:        []string{"Hello"},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Greeting", &openapi.Schema{
			Type: "object",
			Properties: map[string]*openapi.Property{
				"message": {Type: "string", Example: HelloMessage},
			},
			Required: []string{"message"},
		}),
		500: openapi.ErrorResponse("Internal server error"),
	},
}

// handleHello responds with the static greeting regardless of request content.
func handleHello(ctx context.Context, req *router.Request) (*router.Response, error) {
	return handlers.JSON(http.StatusOK, helloResponse{Message: HelloMessage})
}
