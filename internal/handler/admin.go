package handler

import (
	"net/http"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListNotifications(c *ginext.Context) {
	var q dto.NotificationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	logs, err := h.notificationService.List(c.Request.Context(), domain.NotificationFilter{
		UserID:    q.UserID,
		BookingID: q.BookingID,
		Page:      q.Page(),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(logs))
	for _, n := range logs {
		resp = append(resp, dto.ToNotificationResponse(n))
	}

	c.JSON(http.StatusOK, resp)
}

// RunJob triggers a scheduled job synchronously and returns its report.
func (h *Handler) RunJob(c *ginext.Context) {
	rep, err := h.jobRunner.Run(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobReportResponse(rep))
}
