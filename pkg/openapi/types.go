// Package openapi provides types and utilities for generating OpenAPI 3.1
// documents that describe the router's registered routes.
package openapi

// Spec represents a complete OpenAPI 3.1 specification document.
type Spec struct {
	OpenAPI string               `json:"openapi"`
	Info    *Info                `json:"info"`
	Servers []*Server            `json:"servers,omitempty"`
	Paths   map[string]*PathItem `json:"paths"`
}

// Info provides metadata about the API.
type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// Server represents a server URL for the API.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// PathItem describes operations available on a single path.
type PathItem struct {
	Get     *Operation `json:"get,omitempty"`
	Post    *Operation `json:"post,omitempty"`
	Put     *Operation `json:"put,omitempty"`
	Patch   *Operation `json:"patch,omitempty"`
	Delete  *Operation `json:"delete,omitempty"`
	Options *Operation `json:"options,omitempty"`
}

// Operation describes a single API operation on a path.
type Operation struct {
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Responses   map[int]*Response `json:"responses"`
}

// Response describes a single response from an API operation.
type Response struct {
	Description string                `json:"description"`
	Content     map[string]*MediaType `json:"content,omitempty"`
}

// MediaType provides schema for a media type.
type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Schema defines the structure of output data.
type Schema struct {
	Type       string               `json:"type,omitempty"`
	Properties map[string]*Property `json:"properties,omitempty"`
	Required   []string             `json:"required,omitempty"`
}

// Property defines a single property within a schema.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Example     any    `json:"example,omitempty"`
}

// ResponseJSON creates a response with an inline JSON object schema.
func ResponseJSON(description string, schema *Schema) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: schema},
		},
	}
}

// ErrorResponse describes the opaque {"error": "..."} body.
func ErrorResponse(description string) *Response {
	return ResponseJSON(description, &Schema{
		Type: "object",
		Properties: map[string]*Property{
			"error": {Type: "string", Description: "Opaque error message"},
		},
		Required: []string{"error"},
	})
}
