//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/clientcheck/test/api"
)

var _ = Describe("Client Record Performance", func() {
	Context("When posting a valid client record", func() {
		It("should respond within the configured bound", func() {
			start := time.Now()

			raw, err := client.PostClient(ctx, api.ClientRequest{ID: 1, Name: "test"}, nil)
			elapsed := time.Since(start)

			Expect(err).NotTo(HaveOccurred())

			GinkgoWriter.Printf("Response took %s (trace ID: %s)\n", elapsed, raw.TraceID())
			Expect(elapsed).To(BeNumerically("<=", config.MaxResponseTime))
		})
	})
})
