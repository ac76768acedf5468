package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"communityforge/api/models"
	"communityforge/database"
)

func (h *Handler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
		return
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Validation error",
			Errors:  fieldErrs,
		})
		return
	}

	user, err := h.store.CreateUser(c.Request.Context(), &database.User{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Message: "Username already exists"})
			return
		}
		log.Error("failed to create user", "error", err, "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, models.CreateUserResponse{
		Success: true,
		Message: "User created successfully",
		UserID:  user.ID,
	})
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid user id"})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "User not found"})
			return
		}
		log.Error("failed to get user", "error", err, "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to load user"})
		return
	}
	c.JSON(http.StatusOK, models.ToUserResponse(*user))
}
