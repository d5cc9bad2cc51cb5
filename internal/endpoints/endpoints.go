// Package endpoints holds the machine-readable directory of the API's
// routes that GET /api serves.
package endpoints

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

//go:embed endpoints.json
var directoryJSON []byte

// ErrUnavailable is returned when the directory is empty or cannot be decoded.
var ErrUnavailable = errors.New("endpoint directory unavailable")

// Endpoint describes a single route.
type Endpoint struct {
	Description     string          `json:"description"`
	Queries         []string        `json:"queries,omitempty"`
	ExampleRequest  json.RawMessage `json:"exampleRequest,omitempty"`
	ExampleResponse json.RawMessage `json:"exampleResponse,omitempty"`
}

// Directory maps "METHOD /path" to its description.
type Directory map[string]Endpoint

// Load decodes the embedded directory.
func Load() (Directory, error) {
	return Parse(directoryJSON)
}

// Parse decodes a directory from raw JSON.
func Parse(raw []byte) (Directory, error) {
	if len(raw) == 0 {
		return nil, ErrUnavailable
	}
	var dir Directory
	if err := json.Unmarshal(raw, &dir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(dir) == 0 {
		return nil, ErrUnavailable
	}
	return dir, nil
}
