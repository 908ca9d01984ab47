/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
)

//go:embed openapi.yaml
var openAPISchema []byte

var ErrSchema = errors.New("schema error")

// SchemaValidator checks raw responses from the client endpoint against
// the published OpenAPI contract: status, content type and body shape.
type SchemaValidator struct {
	route *routers.Route
}

// NewSchemaValidator loads and validates the embedded contract.
func NewSchemaValidator(ctx context.Context) (*SchemaValidator, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	spec, err := loader.LoadFromData(openAPISchema)
	if err != nil {
		return nil, fmt.Errorf("%w: loading openapi schema: %w", ErrSchema, err)
	}

	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("%w: validating openapi schema: %w", ErrSchema, err)
	}

	path := NewEndpoints().Client()

	pathItem := spec.Paths.Value(path)
	if pathItem == nil || pathItem.Post == nil {
		return nil, fmt.Errorf("%w: no POST operation for %s", ErrSchema, path)
	}

	validator := &SchemaValidator{
		route: &routers.Route{
			Spec:      spec,
			Path:      path,
			PathItem:  pathItem,
			Method:    http.MethodPost,
			Operation: pathItem.Post,
		},
	}

	return validator, nil
}

// ValidateResponse validates a response to a POST on the client endpoint.
// Undocumented status codes are an error.
func (v *SchemaValidator) ValidateResponse(ctx context.Context, raw *RawResponse) error {
	req, err := http.NewRequestWithContext(ctx, v.route.Method, v.route.Path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request: req,
			Route:   v.route,
		},
		Status: raw.StatusCode,
		Header: raw.Header,
		Body:   io.NopCloser(bytes.NewReader(raw.Body)),
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
			MultiError:            true,
		},
	}

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: status %d response (trace ID: %s): %w", ErrSchema, raw.StatusCode, raw.TraceID(), err)
	}

	return nil
}
