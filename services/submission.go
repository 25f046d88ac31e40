package services

import (
	"errors"
	"fmt"

	"filingai/models"
	"filingai/utils"
)

// FormSection is the per-section submission strategy. Concrete sections supply
// selectors and per-field calls; they never reimplement matching.
type FormSection interface {
	Name() string
	Submit(engine *Engine) error
}

// FieldSection is a declarative FormSection driving engine operations from a
// validated field list, in order.
type FieldSection struct {
	name   string
	fields []models.Field
}

// NewFieldSection creates a section from pre-validated fields.
func NewFieldSection(name string, fields []models.Field) *FieldSection {
	return &FieldSection{name: name, fields: fields}
}

func (s *FieldSection) Name() string { return s.name }

// Submit fills the section's fields in order. The first failing field aborts
// the section; earlier fields are not rolled back because UI actions are not
// reversible through this interface.
func (s *FieldSection) Submit(engine *Engine) error {
	for _, field := range s.fields {
		var err error
		switch field.Kind {
		case models.FieldText:
			err = engine.FillText(field.Selector, field.Value)
		case models.FieldAutocomplete:
			err = engine.FillInput(field.Selector, field.Value)
		case models.FieldSelect:
			err = engine.SelectOption(field.Selector, field.Value)
		case models.FieldSelectDescripted:
			err = engine.SelectDescriptedOption(field.Selector, field.Value)
		case models.FieldDate:
			err = engine.FillDateInput(field.Selector, field.Value)
		default:
			err = fmt.Errorf("unknown field kind %q", field.Kind)
		}
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Selector, err)
		}
	}
	return nil
}

// SectionResult is the outcome of one section's submission.
type SectionResult struct {
	Section string
	Err     error
}

// Runner submits sections strictly one at a time. The open widgets are shared
// mutable UI state, so there is no parallel submission; a failed section only
// aborts that entity, while a closed session aborts the rest of the run.
type Runner struct {
	engine *Engine
	log    *utils.Logger
}

// NewRunner creates a sequential runner over the engine.
func NewRunner(engine *Engine, log *utils.Logger) *Runner {
	return &Runner{engine: engine, log: log}
}

// Run submits each section in order and reports per-section outcomes.
func (r *Runner) Run(sections []FormSection) []SectionResult {
	results := make([]SectionResult, 0, len(sections))
	for i, section := range sections {
		r.log.Info("submitting section", "section", section.Name())
		err := section.Submit(r.engine)
		if err != nil {
			r.log.Error("section submission failed", err, "section", section.Name())
		}
		results = append(results, SectionResult{Section: section.Name(), Err: err})

		var closed *SessionClosedError
		if errors.As(err, &closed) {
			// The page is gone; no later section can run.
			for _, rest := range sections[i+1:] {
				results = append(results, SectionResult{Section: rest.Name(), Err: closed})
			}
			break
		}
	}
	return results
}
