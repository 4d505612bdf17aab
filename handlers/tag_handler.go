package handlers

import (
	"net/http"

	"commute4good-api/helper"
	"commute4good-api/models"
	"commute4good-api/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, httpHelper *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: httpHelper}
}

func (h *TagHandler) AttachTag(c *gin.Context) {
	var req models.AttachTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c)
		return
	}
	if !h.Helper.ValidateRequest(c, req) {
		return
	}

	resp, err := h.tagService.AttachTag(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
