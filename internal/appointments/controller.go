package appointments

import (
	"errors"
	"net/http"

	"bookeasy/internal/notifications"
	"bookeasy/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service  Wizard
	notifier notifications.Service
}

func NewController(service Wizard, notifier notifications.Service) *Controller {
	return &Controller{service: service, notifier: notifier}
}

// SESSION LIFECYCLE

func (c *Controller) StartSession(ctx *gin.Context) {
	session, err := c.service.Start(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to start session", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Session started successfully", ToSessionResponse(session), nil)
}

func (c *Controller) GetSession(ctx *gin.Context) {
	session, err := c.service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err, "Failed to get session")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Session retrieved successfully", ToSessionResponse(session), nil)
}

// CATALOG AND AVAILABILITY

func (c *Controller) GetServices(ctx *gin.Context) {
	response.RespondJSON(ctx, "success", http.StatusOK, "Services retrieved successfully", c.service.Catalog(), nil)
}

func (c *Controller) GetSlots(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Date is required", nil, "missing date query parameter")
		return
	}

	slots, err := c.service.Slots(ctx.Request.Context(), ctx.Param("id"), date)
	if err != nil {
		c.respondError(ctx, err, "Failed to get slots")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Slots retrieved successfully", SlotsResponse{Date: date, Slots: slots}, nil)
}

// STEP MUTATIONS

func (c *Controller) SelectService(ctx *gin.Context) {
	var req SelectServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	session, err := c.service.SelectService(ctx.Request.Context(), ctx.Param("id"), req.ServiceID)
	if err != nil {
		c.respondError(ctx, err, "Failed to select service")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Service selected successfully", ToSessionResponse(session), nil)
}

func (c *Controller) SelectDateTime(ctx *gin.Context) {
	var req SelectDateTimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	session, err := c.service.SelectDateTime(ctx.Request.Context(), ctx.Param("id"), req.Date, req.Time)
	if err != nil {
		c.respondError(ctx, err, "Failed to select date and time")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Date and time selected successfully", ToSessionResponse(session), nil)
}

// NAVIGATION

func (c *Controller) Next(ctx *gin.Context) {
	session, err := c.service.Next(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err, "Failed to advance step")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Step advanced successfully", ToSessionResponse(session), nil)
}

func (c *Controller) Back(ctx *gin.Context) {
	session, err := c.service.Back(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err, "Failed to go back")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Step moved back successfully", ToSessionResponse(session), nil)
}

// SUBMISSION

func (c *Controller) Submit(ctx *gin.Context) {
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	record, err := c.service.Submit(ctx.Request.Context(), ctx.Param("id"), req.ToContactInfo())
	if err != nil {
		c.respondError(ctx, err, "Failed to submit appointment")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Appointment successfully booked!", record, nil)
}

func (c *Controller) Reset(ctx *gin.Context) {
	session, err := c.service.Reset(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err, "Failed to reset session")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Session reset successfully", ToSessionResponse(session), nil)
}

// NOTIFICATIONS

func (c *Controller) GetNotifications(ctx *gin.Context) {
	items := c.notifier.List(ctx.Param("id"))
	response.RespondJSON(ctx, "success", http.StatusOK, "Notifications retrieved successfully", items, nil)
}

// respondError maps service errors onto HTTP statuses. Validation and
// guard failures carry their own messages; everything else is internal.
func (c *Controller) respondError(ctx *gin.Context, err error, fallback string) {
	var validationErr *ValidationError
	var guardErr *GuardError

	switch {
	case errors.Is(err, ErrSessionNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Session not found", nil, err.Error())
	case errors.As(err, &validationErr):
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, "Validation failed", nil, validationErr.Errors)
	case errors.As(err, &guardErr):
		response.RespondJSON(ctx, "error", http.StatusConflict, guardErr.Message, nil, guardErr.Error())
	case errors.Is(err, ErrSubmissionInFlight):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Submission already in progress", nil, err.Error())
	case errors.Is(err, ErrAlreadyConfirmed):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Appointment already confirmed", nil, err.Error())
	case errors.Is(err, ErrNotConfirmed):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Session is not confirmed yet", nil, err.Error())
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, err.Error())
	}
}
