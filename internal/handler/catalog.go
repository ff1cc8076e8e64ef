package handler

import (
	"net/http"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/handler/dto"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// Categories

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, dto.ToCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateCategory(c *ginext.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req.Name, req.Slug, req.Description)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *Handler) UpdateCategory(c *ginext.Context) {
	id, ok := pathID(c, "id", "category")
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.catalogService.UpdateCategory(c.Request.Context(), id, req.Name, req.Slug, req.Description)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *Handler) DeleteCategory(c *ginext.Context) {
	id, ok := pathID(c, "id", "category")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteCategory(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Reviews

func (h *Handler) ListReviews(c *ginext.Context) {
	tourID, ok := pathID(c, "id", "tour")
	if !ok {
		return
	}

	reviews, err := h.catalogService.ListReviews(c.Request.Context(), tourID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddReview(c *ginext.Context) {
	tourID, ok := pathID(c, "id", "tour")
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	review, err := h.catalogService.AddReview(c.Request.Context(), middleware.Actor(c).UserID, tourID, req.Rating, req.Comment)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) DeleteReview(c *ginext.Context) {
	id, ok := pathID(c, "id", "review")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteReview(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Wishlist

func (h *Handler) MyWishlist(c *ginext.Context) {
	items, err := h.catalogService.Wishlist(c.Request.Context(), middleware.Actor(c).UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.WishlistItemResponse, 0, len(items))
	for _, w := range items {
		resp = append(resp, dto.ToWishlistItemResponse(w))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddToWishlist(c *ginext.Context) {
	tourID, ok := pathID(c, "tourId", "tour")
	if !ok {
		return
	}

	if err := h.catalogService.AddToWishlist(c.Request.Context(), middleware.Actor(c).UserID, tourID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RemoveFromWishlist(c *ginext.Context) {
	tourID, ok := pathID(c, "tourId", "tour")
	if !ok {
		return
	}

	if err := h.catalogService.RemoveFromWishlist(c.Request.Context(), middleware.Actor(c).UserID, tourID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
