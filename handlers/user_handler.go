package handlers

import (
	"net/http"
	"strconv"

	"commute4good-api/helper"
	"commute4good-api/models"
	"commute4good-api/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, httpHelper *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: httpHelper}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	// A non-numeric id is indistinguishable from an unknown user.
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFoundError(c)
		return
	}

	profile, err := h.userService.GetProfile(uint(id))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c)
		return
	}
	if !h.Helper.ValidateRequest(c, req) {
		return
	}

	profile, err := h.userService.UpdateUser(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
