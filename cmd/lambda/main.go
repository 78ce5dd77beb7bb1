// Command lambda runs the API as an AWS Lambda function behind API Gateway.
package main

import (
	"context"
	"log"
	"time"

	"github.com/JaimeStill/function-api/internal/api"
	"github.com/JaimeStill/function-api/internal/config"
	"github.com/JaimeStill/function-api/internal/platform"
	"github.com/JaimeStill/function-api/internal/shell"
	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	ctx := context.Background()

	p, err := platform.Bootstrap(ctx, config.BaseConfigFile)
	if err != nil {
		log.Fatal("platform init failed: ", err)
	}

	r, err := api.New(p)
	if err != nil {
		log.Fatal("api init failed: ", err)
	}

	handler := shell.NewLambdaHandler(r, p.Config.Request.MaxBodyBytes(), p.Logger)

	lambda.StartWithOptions(handler,
		lambda.WithContext(ctx),
		lambda.WithEnableSIGTERM(func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()
			if err := p.Shutdown(shutdownCtx); err != nil {
				p.Logger.Error("platform shutdown failed", "error", err)
			}
		}),
	)
}
