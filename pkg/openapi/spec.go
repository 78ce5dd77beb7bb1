package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// NewSpec creates an empty OpenAPI 3.1 document.
func NewSpec(title, version, description string) *Spec {
	return &Spec{
		OpenAPI: "3.1.0",
		Info: &Info{
			Title:       title,
			Version:     version,
			Description: description,
		},
		Paths: make(map[string]*PathItem),
	}
}

// AddServer appends a server URL. Empty URLs are ignored.
func (s *Spec) AddServer(url string) {
	if url == "" {
		return
	}
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddOperation attaches op to path under method.
func (s *Spec) AddOperation(path, method string, op *Operation) error {
	item := s.Paths[path]
	if item == nil {
		item = &PathItem{}
	}

	switch method {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodPatch:
		item.Patch = op
	case http.MethodDelete:
		item.Delete = op
	case http.MethodOptions:
		item.Options = op
	default:
		return fmt.Errorf("unsupported method: %s", method)
	}

	s.Paths[path] = item
	return nil
}

// MarshalJSON encodes the document as indented JSON.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}
