package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldKind names the widget type behind a field selector.
type FieldKind string

const (
	// FieldText is a plain input with no option list.
	FieldText FieldKind = "text"
	// FieldAutocomplete types the value and accepts whatever option renders
	// first. Best effort; for fields where the pick must be correct use
	// FieldSelect.
	FieldAutocomplete FieldKind = "autocomplete"
	// FieldSelect is a searchable select matched through the tiered engine.
	FieldSelect FieldKind = "select"
	// FieldSelectDescripted is a searchable select whose options carry their
	// label as visible text instead of a title attribute.
	FieldSelectDescripted FieldKind = "select_described"
	// FieldDate is a date picker fed an ISO date.
	FieldDate FieldKind = "date"
)

// Field binds one widget selector to the value it should receive.
type Field struct {
	Selector string    `json:"selector" validate:"required"`
	Kind     FieldKind `json:"kind" validate:"required,oneof=text autocomplete select select_described date"`
	Value    string    `json:"value" validate:"required"`
}

// FormRecord is one business entity to submit: an ordered list of fields for
// one pass over the form.
type FormRecord struct {
	Name   string  `json:"name" validate:"required"`
	Fields []Field `json:"fields" validate:"required,min=1,dive"`
}

// SubmissionRequest asks for one or more records to be submitted to the form
// at the target URL. Records are processed strictly in order.
type SubmissionRequest struct {
	TargetURL string       `json:"target_url" validate:"required,url"`
	Records   []FormRecord `json:"records" validate:"required,min=1,dive"`
}

// Validate checks the request shape and that date fields carry well-formed
// ISO dates. The fill engine relies on this layer; it only converts the UI
// format and never re-validates business data.
func (r *SubmissionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	for _, record := range r.Records {
		for _, field := range record.Fields {
			if field.Kind != FieldDate {
				continue
			}
			if err := validate.Var(field.Value, "datetime=2006-01-02"); err != nil {
				return fmt.Errorf("record %q field %q: date value %q must be in YYYY-MM-DD format", record.Name, field.Selector, field.Value)
			}
		}
	}
	return nil
}

// OptionsRequest asks for the option list of a single widget, for diagnosing
// what a dropdown actually offers.
type OptionsRequest struct {
	TargetURL string `json:"target_url" validate:"required,url"`
	Selector  string `json:"selector" validate:"required"`
}

// Validate checks the request shape.
func (r *OptionsRequest) Validate() error {
	return validate.Struct(r)
}
