package handlers

import (
	"net/http"

	"commute4good-api/helper"
	"commute4good-api/models"
	"commute4good-api/services"

	"github.com/gin-gonic/gin"
)

type GeolocationHandler struct {
	geolocationService services.GeolocationService
	Helper             *helper.HTTPHelper
}

func NewGeolocationHandler(geolocationService services.GeolocationService, httpHelper *helper.HTTPHelper) *GeolocationHandler {
	return &GeolocationHandler{geolocationService: geolocationService, Helper: httpHelper}
}

func (h *GeolocationHandler) RecordPosition(c *gin.Context) {
	var req models.GeolocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c)
		return
	}
	if !h.Helper.ValidateRequest(c, req) {
		return
	}

	resp, err := h.geolocationService.RecordPosition(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
