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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration is returned when the settings are missing or malformed.
	ErrConfiguration = errors.New("configuration error")

	// ErrTransport is returned when a request never produced a response.
	ErrTransport = errors.New("transport error")

	// ErrDeserialization is returned when a response body is not valid JSON.
	ErrDeserialization = errors.New("deserialization error")
)

// StatusError is returned by the domain service when the remote service
// answers with something other than success.
type StatusError struct {
	StatusCode int
	Response   *ErrorResponse
	TraceID    string
}

func (e *StatusError) Error() string {
	var messages []string

	if e.Response != nil {
		messages = e.Response.Messages()
	}

	return fmt.Sprintf("unexpected status code: %d, errors: [%s] (trace ID: %s)", e.StatusCode, strings.Join(messages, "; "), e.TraceID)
}
