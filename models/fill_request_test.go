package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() SubmissionRequest {
	return SubmissionRequest{
		TargetURL: "https://portal.example.com/forms",
		Records: []FormRecord{
			{
				Name: "debtor",
				Fields: []Field{
					{Selector: "#city input", Kind: FieldSelect, Value: "Bogota"},
					{Selector: "#birthDate input", Kind: FieldDate, Value: "1990-01-31"},
				},
			},
		},
	}
}

func TestSubmissionRequestValid(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())
}

func TestSubmissionRequestRequiresTargetURL(t *testing.T) {
	req := validRequest()
	req.TargetURL = ""
	assert.Error(t, req.Validate())

	req.TargetURL = "not a url"
	assert.Error(t, req.Validate())
}

func TestSubmissionRequestRequiresFields(t *testing.T) {
	req := validRequest()
	req.Records[0].Fields = nil
	assert.Error(t, req.Validate())
}

func TestSubmissionRequestRejectsUnknownKind(t *testing.T) {
	req := validRequest()
	req.Records[0].Fields[0].Kind = "radio"
	assert.Error(t, req.Validate())
}

func TestSubmissionRequestValidatesDates(t *testing.T) {
	for _, value := range []string{"31-01-1990", "1990/01/31", "yesterday"} {
		req := validRequest()
		req.Records[0].Fields[1].Value = value

		err := req.Validate()

		require.Error(t, err, "date %q should be rejected", value)
		assert.Contains(t, err.Error(), "YYYY-MM-DD")
	}
}

func TestOptionsRequestValidation(t *testing.T) {
	req := OptionsRequest{TargetURL: "https://portal.example.com", Selector: "#city input"}
	assert.NoError(t, req.Validate())

	req.Selector = ""
	assert.Error(t, req.Validate())
}
