// Package openapi embeds the Deal Finder OpenAPI document served at /openapi.yaml.
package openapi

import _ "embed"

// YAML is the OpenAPI 3 description of the read-only price lookup API.
//
//go:embed openapi.yaml
var YAML []byte
