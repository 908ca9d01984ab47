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

// ClientRequest is a well formed client record.  Use ClientPayloadBuilder
// for anything the remote service should reject.
type ClientRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ClientResponseSuccess is returned for an accepted record.  Age echoes
// the request ID.  Fields are optional so an empty body can be told apart
// from a zero value.
type ClientResponseSuccess struct {
	Name           *string `json:"name,omitempty"`
	Age            *int64  `json:"age,omitempty"`
	AdditionalInfo *string `json:"adi,omitempty"`
}

// Error is a single validation failure reported by the remote service.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is returned for every rejected request.
type ErrorResponse struct {
	Errors []Error `json:"errors"`
}

// Messages returns the error messages in order.
func (e *ErrorResponse) Messages() []string {
	messages := make([]string, 0, len(e.Errors))

	for _, err := range e.Errors {
		messages = append(messages, err.Message)
	}

	return messages
}

// RawBody is sent to the remote service byte for byte, without JSON
// encoding, so that syntactically broken bodies can be exercised.
type RawBody []byte
