package apitests

import (
	"net/http"
)

// The service is expected to know at least this many breeds per animal group.
const minBreedsPerGroup = 5

// DoBreedsEndpointTest verifies the breeds listing: a 200 whose body has
// cattle and buffalo groups with enough entries in each. A 200 with too few
// entries is still a failure.
func DoBreedsEndpointTest(t *T) {
	resp, err := t.Client().Get("/breeds", defaultTimeout)
	if err != nil {
		t.Errorf("%s", err)
		return
	}
	t.Detail("Status: %d", resp.Status)
	if resp.Status != http.StatusOK {
		t.Errorf("expected status 200")
		return
	}

	body := resp.JSON()
	cattleCount := body.GetByKey("cattle").Count()
	buffaloCount := body.GetByKey("buffalo").Count()
	t.Detail("Cattle breeds: %d, Buffalo breeds: %d", cattleCount, buffaloCount)

	if cattleCount < minBreedsPerGroup || buffaloCount < minBreedsPerGroup {
		t.Errorf("insufficient breed data")
	}
}
