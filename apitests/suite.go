package apitests

import (
	"github.com/cattlescan/api-contract-tests/client"
	"github.com/cattlescan/api-contract-tests/framework"
)

// RunTestSuite runs the full battery of probes against the service the given
// client points at, in a fixed order. None of the cases depend on data from
// earlier cases; the order is fixed anyway so console output is
// deterministic. The returned ledger reflects every case that ran.
func RunTestSuite(
	apiClient *client.APIClient,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		run := func(name string, action func(*T)) {
			c.Run(name, func(c1 *framework.Context) {
				t := &T{
					context: c1,
					client:  apiClient.WithLogger(c1.DebugLogger()),
				}
				action(t)
			})
		}

		run("API Health Check", DoHealthCheckTest)
		run("Breeds Endpoint", DoBreedsEndpointTest)
		run("CORS Headers", DoCORSHeadersTest)
		run("Breed Recognition - Missing Fields", DoRecognitionMissingFieldsTest)
		run("Breed Recognition - Invalid Data", DoRecognitionInvalidDataTest)
		run("Breed Recognition - Valid Image", DoRecognitionValidImageTest)
	})
}
