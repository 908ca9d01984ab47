/*
Copyright 2024-2025 the Unikorn Authors.
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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

type APIClient struct {
	baseURL   string
	client    Doer
	config    *TestConfig
	endpoints *Endpoints
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return NewAPIClientWithDoer(config, &http.Client{
		Timeout: config.RequestTimeout,
	})
}

// NewAPIClientWithDoer lets tests substitute the transport.
func NewAPIClientWithDoer(config *TestConfig, client Doer) *APIClient {
	return &APIClient{
		baseURL:   strings.TrimSuffix(config.BaseURL, "/"),
		client:    client,
		config:    config,
		endpoints: NewEndpoints(),
	}
}

// Endpoints returns the endpoint table the client is bound to.
func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}

// logError logs a transport error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// Do sends a request with any method to a path relative to the base URL.
// Headers are applied verbatim, no content type is implied.  Every status
// code is returned as a response, only failure to get one is an error.
func (c *APIClient) Do(ctx context.Context, method, path string, body io.Reader, headers HeaderSet) (*RawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	headers.apply(req.Header)

	// Add W3C Trace Context headers unless the caller is propagating their own.
	if !headers.Has("Traceparent") {
		req.Header.Set("Traceparent", newTraceParent())
	}

	if !headers.Has("Tracestate") {
		req.Header.Set("Tracestate", traceState)
	}

	traceParent := req.Header.Get("Traceparent")

	start := time.Now()
	//nolint:bodyclose // closed below once read
	resp, err := c.client.Do(req)

	if err != nil {
		duration := time.Since(start)
		c.logError(method, path, duration, traceParent, err, "http request failed")

		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, fmt.Sprintf("reading response body status=%d", resp.StatusCode))

		return nil, fmt.Errorf("%w: reading %s %s response body: %w", ErrTransport, method, path, err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	return &RawResponse{
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		Body:        respBody,
		Duration:    duration,
		TraceParent: traceParent,
	}, nil
}

// PostClient posts any payload to the client endpoint.  The payload is JSON
// encoded as is, RawBody is sent untouched.  A JSON content type is added
// unless the caller supplied their own.
func (c *APIClient) PostClient(ctx context.Context, payload any, headers HeaderSet) (*RawResponse, error) {
	body, err := encodePayload(payload)
	if err != nil {
		return nil, err
	}

	return c.Do(ctx, http.MethodPost, c.endpoints.Client(), bytes.NewReader(body), headers.WithDefaultContentType())
}

func encodePayload(payload any) ([]byte, error) {
	if raw, ok := payload.(RawBody); ok {
		return raw, nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling client body: %w", err)
	}

	return body, nil
}
