package shell

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/JaimeStill/function-api/pkg/handlers"
	"github.com/JaimeStill/function-api/pkg/router"
	"github.com/aws/aws-lambda-go/events"
)

// LambdaHandler handles API Gateway REST proxy events.
type LambdaHandler func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewLambdaHandler returns a Lambda handler that serves every event through r.
// The returned error is always nil; failures are reported as HTTP statuses so
// the runtime never records an invocation error.
func NewLambdaHandler(r *router.Router, maxBodyBytes int64, logger *slog.Logger) LambdaHandler {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		req, err := fromProxyEvent(event)
		if err != nil {
			logger.WarnContext(ctx, "decode request body", "error", err)
			return toProxyResponse(handlers.Error(http.StatusBadRequest, "invalid request body")), nil
		}

		if maxBodyBytes > 0 && int64(len(req.Body)) > maxBodyBytes {
			return toProxyResponse(handlers.Error(http.StatusRequestEntityTooLarge, handlers.MessageEntityTooLarge)), nil
		}

		return toProxyResponse(Serve(ctx, r, req)), nil
	}
}

func fromProxyEvent(event events.APIGatewayProxyRequest) (*router.Request, error) {
	header := make(http.Header)
	for key, values := range event.MultiValueHeaders {
		for _, v := range values {
			header.Add(key, v)
		}
	}
	for key, v := range event.Headers {
		if header.Get(key) == "" {
			header.Set(key, v)
		}
	}

	query := make(url.Values)
	for key, values := range event.MultiValueQueryStringParameters {
		query[key] = append(query[key], values...)
	}
	for key, v := range event.QueryStringParameters {
		if _, ok := query[key]; !ok {
			query.Set(key, v)
		}
	}

	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, err
		}
		body = decoded
	}

	return &router.Request{
		Method:     event.HTTPMethod,
		Path:       event.Path,
		Query:      query,
		Header:     header,
		Body:       body,
		RemoteAddr: event.RequestContext.Identity.SourceIP,
	}, nil
}

func toProxyResponse(resp *router.Response) events.APIGatewayProxyResponse {
	single := make(map[string]string, len(resp.Header))
	var multi map[string][]string
	for key, values := range resp.Header {
		switch len(values) {
		case 0:
		case 1:
			single[key] = values[0]
		default:
			if multi == nil {
				multi = make(map[string][]string)
			}
			multi[key] = append([]string(nil), values...)
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode:        resp.Status,
		Headers:           single,
		MultiValueHeaders: multi,
		Body:              string(resp.Body),
	}
}
