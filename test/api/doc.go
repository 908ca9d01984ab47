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

// Package api provides integration test utilities for the client service.
//
// # Client
//
// APIClient is a thin wrapper around net/http bound to a base URL.  It is a
// transparent transport: payloads are sent as given, so scenarios can post
// partial, mistyped or syntactically broken bodies, and every status code is
// handed back as a RawResponse for the caller to classify.  Only a failure
// to get a response at all is an error (ErrTransport).
//
// Each request carries W3C trace context headers and failures are logged to
// the GinkgoWriter with the trace ID, so they can be found in the remote
// service logs.
//
// # Responses
//
// Deserialize decodes a body into any shape, DecodeClientResult selects the
// success or error variant by status code, and SchemaValidator checks a
// response against the OpenAPI contract embedded in this package.
//
// # Configuration
//
// LoadTestConfig reads appsettings.json, a .env file and the environment,
// once per process.  See TestConfig for the keys.
package api
