package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gideontax/gideon-api/internal/logger"
	"github.com/gideontax/gideon-api/internal/rules"
	"github.com/gideontax/gideon-api/internal/services"
	"github.com/gideontax/gideon-api/internal/spine"
	"github.com/gideontax/gideon-api/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BatchPublisher enqueues compute jobs for asynchronous processing. Nil means
// batches run inline.
type BatchPublisher interface {
	PublishComputeJob(ctx context.Context, batchID string, job any) error
}

// ReturnHandler serves the tax computation endpoints.
type ReturnHandler struct {
	service   *services.ReturnService
	publisher BatchPublisher
}

// NewReturnHandler creates a new return handler. publisher may be nil, in
// which case batch requests are computed inline instead of enqueued.
func NewReturnHandler(service *services.ReturnService, publisher BatchPublisher) *ReturnHandler {
	return &ReturnHandler{service: service, publisher: publisher}
}

func toComputeResponse(result *services.ComputeResult) *ComputeReturnResponse {
	return &ComputeReturnResponse{
		ComputationID: result.ComputationID.String(),
		TaxYear:       int(result.TaxYear),
		FilingStatus:  result.FilingStatus.String(),
		Ledger:        toLedgerResponse(result.Ledger),
	}
}

func toLedgerResponse(ledger spine.Ledger) []LedgerEntryResponse {
	entries := ledger.Entries()
	out := make([]LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, LedgerEntryResponse{
			Stage:       e.Key.String(),
			AmountCents: e.Amount.Cents(),
			Display:     e.Amount.String(),
		})
	}
	return out
}

// ComputeReturn godoc
// @Summary      Compute a tax return
// @Description  Runs the full income-to-refund pipeline for one return and responds with the ordered ledger
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        request  body      ComputeReturnRequest  true  "Return inputs"
// @Success      200      {object}  ComputeReturnResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      422      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /returns/compute [post]
func (h *ReturnHandler) ComputeReturn(c *gin.Context) {
	var req ComputeReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	input, err := req.ToReturnInput()
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid return input", err)
		return
	}

	result, err := h.service.ComputeReturn(c.Request.Context(), input)
	if err != nil {
		var computeErr *spine.TaxComputeError
		if errors.As(err, &computeErr) {
			sendError(c, http.StatusUnprocessableEntity, "Tax computation failed", err)
			return
		}
		sendError(c, http.StatusBadRequest, "Failed to compute return", err)
		return
	}

	c.JSON(http.StatusOK, toComputeResponse(result))
}

// GetComputedReturn godoc
// @Summary      Fetch a computed return
// @Description  Returns a previously computed and persisted ledger by computation ID
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        computation_id  path      string  true  "Computation ID"
// @Success      200             {object}  ComputeReturnResponse
// @Failure      400             {object}  ErrorResponse
// @Failure      404             {object}  ErrorResponse
// @Failure      500             {object}  ErrorResponse
// @Router       /returns/{computation_id} [get]
func (h *ReturnHandler) GetComputedReturn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("computation_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid computation ID", err)
		return
	}

	record, err := h.service.GetComputedReturn(c.Request.Context(), id)
	if err != nil {
		handleStoreError(c, err, "Computed return not found")
		return
	}

	c.JSON(http.StatusOK, ComputeReturnResponse{
		ComputationID: record.ID.String(),
		TaxYear:       int(record.TaxYear),
		FilingStatus:  record.FilingStatus.String(),
		Ledger:        toLedgerResponse(record.Ledger),
	})
}

// ComputeBatch godoc
// @Summary      Compute a batch of returns
// @Description  Enqueues the returns for the processor when a queue is configured, otherwise computes them inline over a worker pool
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        request  body      BatchComputeRequest  true  "Batch of return inputs"
// @Success      200      {object}  BatchComputeResponse
// @Success      202      {object}  BatchEnqueuedResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /returns/batch [post]
func (h *ReturnHandler) ComputeBatch(c *gin.Context) {
	var req BatchComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(req.Returns) == 0 {
		sendError(c, http.StatusBadRequest, "Batch must contain at least one return", nil)
		return
	}

	// Validate every slot up front so a bad item rejects the whole request
	// instead of surfacing halfway through an enqueue.
	inputs := make([]spine.ReturnInput, len(req.Returns))
	for i, r := range req.Returns {
		input, err := r.ToReturnInput()
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid return input", err)
			return
		}
		inputs[i] = input
	}

	if h.publisher != nil {
		h.enqueueBatch(c, req.Returns)
		return
	}

	workers := req.Workers
	if workers < 1 {
		workers = 4
	}
	results := h.service.ComputeBatch(c.Request.Context(), inputs, workers)

	resp := BatchComputeResponse{
		Total:   len(results),
		Results: make([]BatchItemResponse, 0, len(results)),
	}
	for _, r := range results {
		item := BatchItemResponse{Index: r.Index}
		if r.Err != nil {
			item.Error = r.Err.Error()
			resp.Failed++
		} else {
			item.Result = toComputeResponse(r.Result)
			resp.Succeeded++
		}
		resp.Results = append(resp.Results, item)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReturnHandler) enqueueBatch(c *gin.Context, items []ComputeReturnRequest) {
	batchID := uuid.New().String()
	for i, item := range items {
		if err := h.publisher.PublishComputeJob(c.Request.Context(), batchID, item); err != nil {
			logger.Error("Failed to enqueue compute job",
				zap.String("batch_id", batchID),
				zap.Int("index", i),
				zap.Error(err))
			sendError(c, http.StatusInternalServerError, "Failed to enqueue batch", err)
			return
		}
	}

	logger.Info("Enqueued compute batch",
		zap.String("batch_id", batchID),
		zap.Int("count", len(items)))

	c.JSON(http.StatusAccepted, BatchEnqueuedResponse{
		BatchID:  batchID,
		Enqueued: len(items),
	})
}

// StandardDeduction godoc
// @Summary      Compute a standard deduction
// @Description  Computes the standard deduction for a filer without running the full return pipeline
// @Tags         deductions
// @Accept       json
// @Produce      json
// @Param        request  body      StandardDeductionRequest  true  "Deduction inputs"
// @Success      200      {object}  StandardDeductionResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /deductions/standard [post]
func (h *ReturnHandler) StandardDeduction(c *gin.Context) {
	var req StandardDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	status, err := types.ParseFilingStatus(req.FilingStatus)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid filing status", err)
		return
	}

	yearRules, ok := rules.ForYear(types.TaxYear(req.TaxYear))
	if !ok {
		sendError(c, http.StatusBadRequest, "Unsupported tax year", nil)
		return
	}

	params := rules.DeductionParams{
		FilingStatus:      status,
		Taxpayer:          req.Taxpayer.toFiler(),
		IsDependent:       req.IsDependent,
		IsDualStatusAlien: req.IsDualStatusAlien,
		SpouseItemizes:    req.SpouseItemizes,
		EarnedIncome:      types.FromCents(req.EarnedIncomeCents),
	}
	if req.Spouse != nil {
		spouse := req.Spouse.toFiler()
		params.Spouse = &spouse
	}

	deduction := rules.StandardDeduction(yearRules, params)

	c.JSON(http.StatusOK, StandardDeductionResponse{
		TaxYear:        req.TaxYear,
		FilingStatus:   status.String(),
		DeductionCents: deduction.Cents(),
		Display:        deduction.String(),
	})
}

// ListTaxYears godoc
// @Summary      List supported tax years
// @Description  Lists every tax year with registered rules and its published deduction constants
// @Tags         tax-years
// @Accept       json
// @Produce      json
// @Success      200  {object}  TaxYearsResponse
// @Router       /tax-years [get]
func (h *ReturnHandler) ListTaxYears(c *gin.Context) {
	years := rules.SupportedYears()
	resp := TaxYearsResponse{Data: make([]TaxYearResponse, 0, len(years))}
	for _, y := range years {
		r, ok := rules.ForYear(y)
		if !ok {
			continue
		}
		resp.Data = append(resp.Data, TaxYearResponse{
			Year:                               int(y),
			SingleMFSBaseDeductionCents:        r.SingleMFSBaseDeduction().Cents(),
			MFJQSSBaseDeductionCents:           r.MFJQSSBaseDeduction().Cents(),
			HOHBaseDeductionCents:              r.HOHBaseDeduction().Cents(),
			AdditionalDeductionUnmarriedCents:  r.AdditionalDeductionUnmarried().Cents(),
			AdditionalDeductionMarriedCents:    r.AdditionalDeductionMarried().Cents(),
			DependentEarnedIncomeAdditionCents: r.DependentEarnedIncomeAddition().Cents(),
			DependentMinimumDeductionCents:     r.DependentMinimumDeduction().Cents(),
		})
	}

	c.JSON(http.StatusOK, resp)
}
