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
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RawResponse is everything the remote service sent back for one request.
// Status codes are not interpreted here.
type RawResponse struct {
	StatusCode  int
	Header      http.Header
	Body        []byte
	Duration    time.Duration
	TraceParent string
}

// ContentType returns the response media type header verbatim.
func (r *RawResponse) ContentType() string {
	return r.Header.Get(HeaderContentType)
}

// TraceID returns the trace ID the request was sent with.
func (r *RawResponse) TraceID() string {
	return extractTraceID(r.TraceParent)
}

// IsSuccess reports a 2xx status.
func (r *RawResponse) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Deserialize decodes the response body into T.  An empty or null body
// yields the zero value, fields unknown to T are ignored.
func Deserialize[T any](raw *RawResponse) (*T, error) {
	var out T

	body := bytes.TrimSpace(raw.Body)
	if len(body) == 0 {
		return &out, nil
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decoding %T from status %d response: %w", ErrDeserialization, out, raw.StatusCode, err)
	}

	return &out, nil
}

// ClientResult is the outcome of posting a client record: exactly one of
// Success or Error is set, selected by the status code.
type ClientResult struct {
	StatusCode int
	Success    *ClientResponseSuccess
	Error      *ErrorResponse
}

// DecodeClientResult classifies a raw response and decodes the matching variant.
func DecodeClientResult(raw *RawResponse) (*ClientResult, error) {
	result := &ClientResult{
		StatusCode: raw.StatusCode,
	}

	if raw.IsSuccess() {
		success, err := Deserialize[ClientResponseSuccess](raw)
		if err != nil {
			return nil, err
		}

		result.Success = success

		return result, nil
	}

	errorResponse, err := Deserialize[ErrorResponse](raw)
	if err != nil {
		return nil, err
	}

	result.Error = errorResponse

	return result, nil
}
