// Command function runs the Cloud Function locally through the functions framework.
package main

import (
	"log"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	function "github.com/JaimeStill/function-api"
)

func main() {
	if os.Getenv("FUNCTION_TARGET") == "" {
		os.Setenv("FUNCTION_TARGET", function.EntryPoint)
	}

	port := "8080"
	if v := os.Getenv("PORT"); v != "" {
		port = v
	}

	if err := funcframework.Start(port); err != nil {
		log.Fatal("funcframework start failed: ", err)
	}
}
