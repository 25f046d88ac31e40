package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"filingai/config"
	"filingai/database"
	"filingai/models"
	"filingai/services"
	"filingai/utils"
)

// RecordOutcome is the per-record result of a submission run.
type RecordOutcome struct {
	Record string `json:"record"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// AutomationHandler exposes the fill engine over HTTP.
type AutomationHandler struct {
	cfg   config.AppConfig
	store *database.SubmissionStore
	log   *utils.Logger
}

// NewAutomationHandler creates the handler. store may be nil when journaling
// is not configured.
func NewAutomationHandler(cfg config.AppConfig, store *database.SubmissionStore, log *utils.Logger) *AutomationHandler {
	return &AutomationHandler{cfg: cfg, store: store, log: log}
}

// SubmitForms runs the sequential submission loop for the records in the
// request against a fresh browser page.
func (h *AutomationHandler) SubmitForms(c *gin.Context) {
	var req models.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequestError(c, "Validation failed", err)
		return
	}

	engine, cleanup, err := h.openEngine(req.TargetURL)
	if err != nil {
		utils.InternalServerError(c, "Could not open target page", err)
		return
	}
	defer cleanup()

	sections := make([]services.FormSection, 0, len(req.Records))
	for _, record := range req.Records {
		sections = append(sections, services.NewFieldSection(record.Name, record.Fields))
	}

	results := services.NewRunner(engine, h.log).Run(sections)

	outcomes := make([]RecordOutcome, 0, len(results))
	for _, result := range results {
		outcome := RecordOutcome{Record: result.Section, Status: models.StatusSubmitted}
		if result.Err != nil {
			outcome.Status = models.StatusFailed
			outcome.Error = result.Err.Error()
		}
		outcomes = append(outcomes, outcome)
		h.journal(req.TargetURL, outcome)
	}

	utils.SuccessResponse(c, http.StatusOK, "Submission run finished", outcomes)
}

// ListOptions opens a single widget and returns the options it offers, so a
// failing business value can be diagnosed without reading engine errors.
func (h *AutomationHandler) ListOptions(c *gin.Context) {
	var req models.OptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequestError(c, "Validation failed", err)
		return
	}

	engine, cleanup, err := h.openEngine(req.TargetURL)
	if err != nil {
		utils.InternalServerError(c, "Could not open target page", err)
		return
	}
	defer cleanup()

	snapshot, err := engine.ListAvailableOptions(req.Selector)
	if err != nil {
		utils.InternalServerError(c, "Could not enumerate options", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Options enumerated", gin.H{
		"count":   len(snapshot),
		"options": snapshot.Titles(),
	})
}

// History returns the most recent journaled submission outcomes.
func (h *AutomationHandler) History(c *gin.Context) {
	if h.store == nil {
		utils.ServiceUnavailableError(c, "Submission journal is not configured")
		return
	}
	records, err := h.store.History(50)
	if err != nil {
		utils.InternalServerError(c, "Could not read submission history", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Submission history", records)
}

// openEngine launches a browser, opens the target page and builds a fill
// engine over it. The returned cleanup tears both down.
func (h *AutomationHandler) openEngine(targetURL string) (*services.Engine, func(), error) {
	browser, err := services.StartBrowser(h.cfg.Headless)
	if err != nil {
		return nil, nil, err
	}

	page, err := browser.OpenPage(targetURL)
	if err != nil {
		browser.Close()
		return nil, nil, err
	}

	engine := services.NewEngine(services.NewPlaywrightDriver(page), h.cfg.Engine, h.log)
	cleanup := func() {
		page.Close()
		browser.Close()
	}
	return engine, cleanup, nil
}

func (h *AutomationHandler) journal(targetURL string, outcome RecordOutcome) {
	if h.store == nil {
		return
	}
	rec := models.SubmissionRecord{
		ID:          uuid.NewString(),
		TargetURL:   targetURL,
		Section:     outcome.Record,
		Status:      outcome.Status,
		ErrorDetail: outcome.Error,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.store.Record(rec); err != nil {
		h.log.Error("could not journal submission outcome", err, "section", outcome.Record)
	}
}
