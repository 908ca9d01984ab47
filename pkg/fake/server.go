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

// Package fake implements the client service contract in process, so the
// harness can be exercised without the real service.
package fake

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
)

const (
	// AdditionalInfo is returned with every accepted record.
	AdditionalInfo = "addition_info"

	maxBodyBytes = 1 << 20
)

const (
	CodeMissingField     = "missing_field"
	CodeInvalidType      = "invalid_type"
	CodeInvalidValue     = "invalid_value"
	CodeInvalidInput     = "invalid_input"
	CodeMalformedBody    = "malformed_body"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeUnsupportedMedia = "unsupported_media_type"
)

const (
	MessageMissingID        = "Missing required field 'id'"
	MessageMissingName      = "Missing required field 'name'"
	MessageIDNotInteger     = "'id' must be an integer"
	MessageNameNotString    = "'name' must be a string"
	MessageNameEmpty        = "'name' cannot be empty"
	MessageInvalidInput     = "Invalid input"
	MessageMalformedBody    = "Malformed JSON body"
	MessageMethodNotAllowed = "Method Not Allowed"
	MessageUnsupportedMedia = "Unsupported Media Type. Expected 'application/json'"
)

// injection matches SQL fragments that have no business in a name: a quote
// closing a literal followed by more SQL, a statement separator followed by
// a keyword, trailing or block comments and destructive statements.
//
//nolint:gochecknoglobals
var injection = regexp2.MustCompile(`'\s*(?=;|--|\bor\b|\band\b)|;\s*(?=(?:drop|delete|insert|update|select|truncate|alter|exec)\b)|--\s*$|/\*|\b(?:drop|truncate|alter)\s+table\b|\bunion\s+(?:all\s+)?select\b`, regexp2.IgnoreCase)

func init() {
	injection.MatchTimeout = 100 * time.Millisecond
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Errors []apiError `json:"errors"`
}

type client struct {
	Name           string `json:"name"`
	Age            int64  `json:"age"`
	AdditionalInfo string `json:"adi"`
}

type server struct {
	log logr.Logger
}

// New returns a handler serving POST /client.
func New(log logr.Logger) http.Handler {
	s := &server{
		log: log,
	}

	router := chi.NewRouter()
	router.Use(s.logging)
	router.MethodNotAllowed(s.methodNotAllowed)
	router.Post("/client", s.postClient)

	return router
}

func (s *server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.Info("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start), "traceparent", r.Header.Get("Traceparent"))
	})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		s.log.Error(err, "failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(data); err != nil {
		s.log.Error(err, "failed to write response")
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, &errorResponse{
		Errors: []apiError{
			{
				Code:    code,
				Message: message,
			},
		},
	})
}

func (s *server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, MessageMethodNotAllowed)
}

func (s *server) postClient(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		s.writeError(w, http.StatusUnsupportedMediaType, CodeUnsupportedMedia, MessageUnsupportedMedia)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, CodeMalformedBody, MessageMalformedBody)
		return
	}

	var fields map[string]json.RawMessage

	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		s.writeError(w, http.StatusBadRequest, CodeMalformedBody, MessageMalformedBody)
		return
	}

	record, verr := validate(fields)
	if verr != nil {
		s.writeError(w, http.StatusBadRequest, verr.Code, verr.Message)
		return
	}

	s.writeJSON(w, http.StatusOK, record)
}

// validate reports the first problem with a record, unknown fields are ignored.
func validate(fields map[string]json.RawMessage) (*client, *apiError) {
	rawID, ok := fields["id"]
	if !ok || isNull(rawID) {
		return nil, &apiError{Code: CodeMissingField, Message: MessageMissingID}
	}

	rawName, ok := fields["name"]
	if !ok || isNull(rawName) {
		return nil, &apiError{Code: CodeMissingField, Message: MessageMissingName}
	}

	id, err := decodeInteger(rawID)
	if err != nil {
		return nil, &apiError{Code: CodeInvalidType, Message: MessageIDNotInteger}
	}

	var name string

	if err := json.Unmarshal(rawName, &name); err != nil {
		return nil, &apiError{Code: CodeInvalidType, Message: MessageNameNotString}
	}

	if name == "" {
		return nil, &apiError{Code: CodeInvalidValue, Message: MessageNameEmpty}
	}

	// A pattern timeout is treated as hostile too.
	if matched, err := injection.MatchString(name); err != nil || matched {
		return nil, &apiError{Code: CodeInvalidInput, Message: MessageInvalidInput}
	}

	return &client{
		Name:           name,
		Age:            id,
		AdditionalInfo: AdditionalInfo,
	}, nil
}

var errNotInteger = errors.New("not an integer")

func decodeInteger(raw json.RawMessage) (int64, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value any

	if err := decoder.Decode(&value); err != nil {
		return 0, err
	}

	number, ok := value.(json.Number)
	if !ok {
		return 0, errNotInteger
	}

	return number.Int64()
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
