package bookings

import (
	"errors"
	"net/http"
	"strconv"

	"bookeasy/internal/buses"
	"bookeasy/internal/notifications"
	"bookeasy/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service  Service
	notifier notifications.Service
}

func NewController(service Service, notifier notifications.Service) *Controller {
	return &Controller{service: service, notifier: notifier}
}

// SEARCH

func (c *Controller) Search(ctx *gin.Context) {
	var req SearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	session, err := c.service.Search(ctx.Request.Context(), req.ToSearchForm())
	if err != nil {
		c.respondError(ctx, err, "Failed to search buses")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Search completed successfully", gin.H{
		"session": ToSessionResponse(session),
		"results": ToBusResults(session.Buses),
	}, nil)
}

func (c *Controller) GetSession(ctx *gin.Context) {
	session, err := c.service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err, "Failed to get session")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Session retrieved successfully", ToSessionResponse(session), nil)
}

// RESULTS

func (c *Controller) GetResults(ctx *gin.Context) {
	session, err := c.service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err, "Failed to get session")
		return
	}

	filter, ok := c.parseFilter(ctx, session.Search.BusType)
	if !ok {
		return
	}

	results, err := c.service.Results(ctx.Request.Context(), session.ID, filter)
	if err != nil {
		c.respondError(ctx, err, "Failed to get results")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Results retrieved successfully", gin.H{
		"results": ToBusResults(results),
		"total":   len(session.Buses),
		"matched": len(results),
	}, nil)
}

// parseFilter reads the filter query parameters on top of the defaults
// derived from the original search. Responds with 400 itself when a
// parameter is malformed.
func (c *Controller) parseFilter(ctx *gin.Context, searchedType string) (buses.Filter, bool) {
	filter := buses.DefaultFilter(searchedType)

	if raw := ctx.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid min_price", nil, "min_price must be a non-negative number")
			return buses.Filter{}, false
		}
		filter.MinPrice = v
	}

	if raw := ctx.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid max_price", nil, "max_price must be a non-negative number")
			return buses.Filter{}, false
		}
		filter.MaxPrice = v
	}

	if raw := ctx.Query("departure"); raw != "" {
		bucket := buses.DepartureBucket(raw)
		if !bucket.IsValid() {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid departure", nil, "departure must be one of all, morning, afternoon, evening, night")
			return buses.Filter{}, false
		}
		filter.Departure = bucket
	}

	if raw := ctx.Query("type"); raw != "" {
		if raw != "all" && !buses.BusType(raw).IsValid() {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid type", nil, "type must be a bus class or all")
			return buses.Filter{}, false
		}
		filter.Type = raw
	}

	return filter, true
}

// BUS AND SEAT SELECTION

func (c *Controller) SelectBus(ctx *gin.Context) {
	var req SelectBusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	session, err := c.service.SelectBus(ctx.Request.Context(), ctx.Param("id"), req.BusID)
	if err != nil {
		c.respondError(ctx, err, "Failed to select bus")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bus selected successfully", gin.H{
		"session":  ToSessionResponse(session),
		"seat_map": ToSeatMapResponse(session),
	}, nil)
}

func (c *Controller) GetSeats(ctx *gin.Context) {
	session, err := c.service.Seats(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err, "Failed to get seats")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seats retrieved successfully", ToSeatMapResponse(session), nil)
}

func (c *Controller) ToggleSeat(ctx *gin.Context) {
	var req ToggleSeatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	session, outcome, err := c.service.ToggleSeat(ctx.Request.Context(), ctx.Param("id"), req.SeatID)
	if err != nil {
		c.respondError(ctx, err, "Failed to toggle seat")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat toggled", ToggleSeatResponse{
		Outcome: ToggleOutcomeLabel(outcome),
		SeatMap: ToSeatMapResponse(session),
	}, nil)
}

// CHECKOUT AND TICKET

func (c *Controller) Checkout(ctx *gin.Context) {
	var req CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	record, err := c.service.Checkout(ctx.Request.Context(), ctx.Param("id"), req.ToPassengers(), req.ToContactInfo(), PaymentMethod(req.PaymentMethod))
	if err != nil {
		c.respondError(ctx, err, "Failed to complete checkout")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking completed successfully!", ToTicketResponse(record), nil)
}

func (c *Controller) GetTicket(ctx *gin.Context) {
	record, err := c.service.Ticket(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err, "Failed to get ticket")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Ticket retrieved successfully", ToTicketResponse(record), nil)
}

func (c *Controller) GetBookingByReference(ctx *gin.Context) {
	record, err := c.service.Lookup(ctx.Param("reference"))
	if err != nil {
		c.respondError(ctx, err, "Failed to get booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", ToTicketResponse(record), nil)
}

// NOTIFICATIONS

func (c *Controller) GetNotifications(ctx *gin.Context) {
	items := c.notifier.List(ctx.Param("id"))
	response.RespondJSON(ctx, "success", http.StatusOK, "Notifications retrieved successfully", items, nil)
}

// respondError maps service errors onto HTTP statuses. Guard failures
// send the client back to the flow's entry point.
func (c *Controller) respondError(ctx *gin.Context, err error, fallback string) {
	var searchErr *SearchValidationError
	var checkoutErr *CheckoutValidationError
	var guardErr *GuardError

	switch {
	case errors.Is(err, ErrSessionNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Session not found", nil, err.Error())
	case errors.Is(err, ErrBookingNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, err.Error())
	case errors.Is(err, ErrBusNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Bus not found", nil, err.Error())
	case errors.Is(err, ErrSeatNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Seat not found", nil, err.Error())
	case errors.As(err, &searchErr):
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, "Validation failed", nil, searchErr.Fields)
	case errors.As(err, &checkoutErr):
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, checkoutErr.Message, nil, checkoutErr.Message)
	case errors.As(err, &guardErr):
		response.GuardRedirect(ctx, guardErr.Message, EntryPoint)
	case errors.Is(err, ErrPaymentInFlight):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Payment already in progress", nil, err.Error())
	case errors.Is(err, ErrAlreadyConfirmed):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Booking already confirmed", nil, err.Error())
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, err.Error())
	}
}
