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
	"math"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/clientcheck/test/api"
)

var _ = Describe("Client Record Contract", func() {
	Context("When posting a valid client record", func() {
		var request api.ClientRequest

		BeforeEach(func() {
			request = api.ClientRequest{ID: 1, Name: "test"}
		})

		Describe("Given the typed service", func() {
			It("should echo the record back", func() {
				record, err := service.PostClient(ctx, request)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectClientRecord(record, request)
			})
		})

		Describe("Given the raw client", func() {
			It("should return 200 with the echoed record", func() {
				raw, err := client.PostClient(ctx, request, nil)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectClientEcho(raw, request)
			})

			It("should respond with a JSON content type", func() {
				raw, err := client.PostClient(ctx, request, nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(raw.StatusCode).To(Equal(http.StatusOK))
				Expect(raw.Header.Values(api.HeaderContentType)).To(ContainElement(api.MediaTypeJSON))
			})

			It("should return fields of the declared types", func() {
				raw, err := client.PostClient(ctx, request, nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(raw.StatusCode).To(Equal(http.StatusOK))
				Expect(validator.ValidateResponse(ctx, raw)).To(Succeed())

				record, err := api.Deserialize[api.ClientResponseSuccess](raw)
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Name).NotTo(BeNil())
				Expect(record.Age).NotTo(BeNil())
				Expect(record.AdditionalInfo).NotTo(BeNil())
			})

			It("should return identical bodies for identical requests", func() {
				first, err := client.PostClient(ctx, request, nil)
				Expect(err).NotTo(HaveOccurred())

				second, err := client.PostClient(ctx, request, nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(second.Body).To(Equal(first.Body))
			})
		})

		Describe("Given unrecognised additional fields", func() {
			It("should ignore them", func() {
				payload := api.NewClientPayload().
					WithID(request.ID).
					WithName(request.Name).
					WithField("extra", api.GenerateTestID()).
					Build()

				raw, err := client.PostClient(ctx, payload, nil)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectClientEcho(raw, request)
			})
		})
	})

	Context("When posting boundary ids", func() {
		DescribeTable("the record should be accepted",
			func(id int64) {
				request := api.ClientRequest{ID: id, Name: "test"}

				raw, err := client.PostClient(ctx, request, nil)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectClientEcho(raw, request)
			},
			Entry("zero", int64(0)),
			Entry("maximum integer", int64(math.MaxInt32)),
		)
	})
})
