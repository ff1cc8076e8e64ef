package handler

import (
	"net/http"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/handler/dto"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) BookTour(c *ginext.Context) {
	tourID, ok := pathID(c, "id", "tour")
	if !ok {
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookingDate, err := time.Parse(dto.DateLayout, req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid booking_date format, expected " + dto.DateLayout,
		})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), domain.CreateBookingInput{
		UserID:       middleware.Actor(c).UserID,
		TourID:       tourID,
		BookingDate:  bookingDate,
		Participants: req.NumberOfParticipants,
		Notes:        req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) MyBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByUser(c.Request.Context(), middleware.Actor(c).UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// PayBooking records a successful payment callback for the booking.
func (h *Handler) PayBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.RecordPayment(c.Request.Context(), middleware.Actor(c), id, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Admin

func (h *Handler) ListBookings(c *ginext.Context) {
	var q dto.BookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookings, total, err := h.bookingService.List(c.Request.Context(), domain.BookingFilter{
		Status:     domain.BookingStatus(q.Status),
		PaidStatus: domain.PaidStatus(q.PaidStatus),
		TourID:     q.TourID,
		UserID:     q.UserID,
		Page:       q.Page(),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse[dto.BookingResponse]{
		Items: dto.ToBookingResponses(bookings),
		Total: total,
	})
}

func (h *Handler) SetBookingStatus(c *ginext.Context) {
	var req dto.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.bookingService.SetStatus(c.Request.Context(), req.IDs, domain.BookingStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BulkStatusResponse{Updated: result.Updated, Failed: result.Failed})
}
