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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/clientcheck/test/api"
)

var _ = Describe("Client Record Validation", func() {
	Context("When posting an invalid client record", func() {
		DescribeTable("the record should be rejected with a single error",
			func(payload map[string]interface{}, message string) {
				raw, err := client.PostClient(ctx, payload, nil)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectSingleError(raw, http.StatusBadRequest, message)
			},
			Entry("missing id",
				api.NewClientPayload().WithoutID().Build(),
				"Missing required field 'id'"),
			Entry("missing name",
				api.NewClientPayload().WithoutName().Build(),
				"Missing required field 'name'"),
			Entry("non-integer id",
				api.NewClientPayload().WithID("invalid").Build(),
				"'id' must be an integer"),
			Entry("empty name",
				api.NewClientPayload().WithName("").Build(),
				"'name' cannot be empty"),
			Entry("SQL injection in name",
				api.NewClientPayload().WithName("'; DROP TABLE clients; --").Build(),
				"Invalid input"),
		)

		It("should validate error responses against the contract", func() {
			raw, err := client.PostClient(ctx, api.NewClientPayload().WithoutID().Build(), nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(validator.ValidateResponse(ctx, raw)).To(Succeed())
		})
	})

	Context("When negotiating content", func() {
		Describe("Given a non-JSON content type", func() {
			It("should reject the request as unsupported media", func() {
				raw, err := client.PostClient(ctx, api.ClientRequest{ID: 1, Name: "test"}, api.Headers(api.HeaderContentType, "text/plain"))
				Expect(err).NotTo(HaveOccurred())

				api.ExpectSingleError(raw, http.StatusUnsupportedMediaType, "Unsupported Media Type. Expected 'application/json'")
			})
		})
	})

	Context("When using the wrong HTTP method", func() {
		Describe("Given a GET on the client endpoint", func() {
			It("should reject the request as not allowed", func() {
				raw, err := client.Do(ctx, http.MethodGet, client.Endpoints().Client(), nil, nil)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectSingleError(raw, http.StatusMethodNotAllowed, "Method Not Allowed")
			})
		})
	})
})
