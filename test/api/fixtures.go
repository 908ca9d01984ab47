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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"net/http"

	. "github.com/onsi/gomega"
)

// AdditionalInfo is what the remote service reports for every accepted record.
const AdditionalInfo = "addition_info"

// ExpectClientEcho asserts a 200 response that echoes the request back.
func ExpectClientEcho(raw *RawResponse, request ClientRequest) *ClientResponseSuccess {
	ExpectWithOffset(1, raw.StatusCode).To(Equal(http.StatusOK), "body: %s (trace ID: %s)", string(raw.Body), raw.TraceID())

	result, err := DecodeClientResult(raw)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	ExpectWithOffset(1, result.Success).NotTo(BeNil())

	ExpectClientRecord(result.Success, request)

	return result.Success
}

// ExpectClientRecord asserts an accepted record matches its request.
func ExpectClientRecord(record *ClientResponseSuccess, request ClientRequest) {
	ExpectWithOffset(1, record.Name).To(HaveValue(Equal(request.Name)))
	ExpectWithOffset(1, record.Age).To(HaveValue(Equal(request.ID)))
	ExpectWithOffset(1, record.AdditionalInfo).To(HaveValue(Equal(AdditionalInfo)))
}

// ExpectSingleError asserts the response has the given status and reports
// exactly one error carrying message.
func ExpectSingleError(raw *RawResponse, status int, message string) {
	ExpectWithOffset(1, raw.StatusCode).To(Equal(status), "body: %s (trace ID: %s)", string(raw.Body), raw.TraceID())

	result, err := DecodeClientResult(raw)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	ExpectWithOffset(1, result.Error).NotTo(BeNil())
	ExpectWithOffset(1, result.Error.Messages()).To(ConsistOf(message))
}
