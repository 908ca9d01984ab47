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
	"net/http"
	"strings"
)

const (
	HeaderContentType = "Content-Type"
	MediaTypeJSON     = "application/json"
)

// Header is a single request header.
type Header struct {
	Key   string
	Value string
}

// HeaderSet is an ordered list of request headers.  Keys are compared
// case-insensitively, as HTTP header names are.
type HeaderSet []Header

// Headers builds a header set from alternating key/value pairs.
// A trailing key without a value is ignored.
func Headers(pairs ...string) HeaderSet {
	headers := make(HeaderSet, 0, len(pairs)/2)

	for i := 0; i+1 < len(pairs); i += 2 {
		headers = append(headers, Header{Key: pairs[i], Value: pairs[i+1]})
	}

	return headers
}

// Get returns the value of the first header matching key.
func (h HeaderSet) Get(key string) (string, bool) {
	for _, header := range h {
		if strings.EqualFold(header.Key, key) {
			return header.Value, true
		}
	}

	return "", false
}

// Has reports whether a header with the given key is present.
func (h HeaderSet) Has(key string) bool {
	_, ok := h.Get(key)

	return ok
}

// WithDefaultContentType returns a copy of the set with a JSON content type
// appended when the caller has not supplied one.  A caller supplied content
// type always wins, that is how scenarios provoke 415 responses.
func (h HeaderSet) WithDefaultContentType() HeaderSet {
	merged := make(HeaderSet, len(h), len(h)+1)
	copy(merged, h)

	if !merged.Has(HeaderContentType) {
		merged = append(merged, Header{Key: HeaderContentType, Value: MediaTypeJSON})
	}

	return merged
}

// apply adds the headers to an outgoing request in order.
func (h HeaderSet) apply(header http.Header) {
	for _, entry := range h {
		header.Add(entry.Key, entry.Value)
	}
}
