package apitests

import (
	"net/http"
)

type recognizeBreedParams struct {
	ImageBase64 string `json:"image_base64,omitempty"`
}

// DoRecognitionMissingFieldsTest posts an empty JSON object and expects the
// service to reject it with a validation-error status.
func DoRecognitionMissingFieldsTest(t *T) {
	resp, err := t.Client().PostJSON("/recognize-breed", recognizeBreedParams{}, defaultTimeout)
	if err != nil {
		t.Errorf("%s", err)
		return
	}
	t.Detail("Status: %d", resp.Status)
	if resp.Status != http.StatusBadRequest && resp.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected validation error status 400 or 422")
	}
}

// DoRecognitionInvalidDataTest posts a syntactically invalid base64 image.
// The service may reject it at the HTTP level, or answer 200 with an error
// envelope whose success flag is false; both count as correct handling. A
// 200 that claims success is a failure.
func DoRecognitionInvalidDataTest(t *T) {
	resp, err := t.Client().PostJSON("/recognize-breed",
		recognizeBreedParams{ImageBase64: "invalid_base64"}, invalidDataTimeout)
	if err != nil {
		t.Errorf("%s", err)
		return
	}
	t.Detail("Status: %d", resp.Status)

	switch resp.Status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusInternalServerError:
		// rejected at the HTTP level, as expected
	case http.StatusOK:
		body := resp.JSON()
		successFlag, hasFlag := body.TryGetByKey("success")
		if !hasFlag || successFlag.BoolValue() {
			t.Errorf("should have failed with invalid data")
		} else {
			t.Detail("Error handled: %s", body.GetByKey("error").StringValue())
		}
	default:
		t.Errorf("unexpected status %d", resp.Status)
	}
}

// DoRecognitionValidImageTest posts a minimal but well-formed PNG with the
// extended timeout, since inference can take a while. The service must
// answer 200; an error envelope is acceptable because the test image is not
// a photo of an animal, so only a transport failure or a non-200 status
// fails this case.
func DoRecognitionValidImageTest(t *T) {
	resp, err := t.Client().PostJSON("/recognize-breed",
		recognizeBreedParams{ImageBase64: testImageBase64()}, recognitionTimeout)
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
	if body.GetByKey("success").BoolValue() {
		t.Detail("Success: true, Breed: %s, Animal: %s, Confidence: %s",
			body.GetByKey("breed").StringValue(),
			body.GetByKey("animal_type").StringValue(),
			body.GetByKey("confidence").JSONString())
	} else {
		t.Detail("Success: false, Error: %s", body.GetByKey("error").StringValue())
	}
}
