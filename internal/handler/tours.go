package handler

import (
	"net/http"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListTours(c *ginext.Context) {
	var q dto.TourListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tours, total, err := h.tourService.List(c.Request.Context(), domain.TourFilter{
		CategoryID:  q.CategoryID,
		Destination: q.Destination,
		Search:      q.Search,
		Recommended: q.Recommended,
		Page:        q.Page(),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.ListResponse[dto.TourResponse]{Items: make([]dto.TourResponse, 0, len(tours)), Total: total}
	for _, t := range tours {
		resp.Items = append(resp.Items, dto.ToTourResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetTour(c *ginext.Context) {
	id, ok := pathID(c, "id", "tour")
	if !ok {
		return
	}

	details, err := h.tourService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTourDetailsResponse(details))
}

// Admin

func (h *Handler) CreateTour(c *ginext.Context) {
	input, ok := bindTour(c)
	if !ok {
		return
	}

	tour, err := h.tourService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTourResponse(tour))
}

func (h *Handler) UpdateTour(c *ginext.Context) {
	id, ok := pathID(c, "id", "tour")
	if !ok {
		return
	}
	input, ok := bindTour(c)
	if !ok {
		return
	}

	tour, err := h.tourService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTourResponse(tour))
}

func (h *Handler) DeleteTour(c *ginext.Context) {
	id, ok := pathID(c, "id", "tour")
	if !ok {
		return
	}

	if err := h.tourService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func bindTour(c *ginext.Context) (domain.TourInput, bool) {
	var req dto.TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.TourInput{}, false
	}
	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.TourInput{}, false
	}
	return input, true
}
