package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"communityforge/api/models"
	"communityforge/config"
	"communityforge/database"
	"communityforge/report"
)

// Notifier forwards a generated report to an external webhook.
type Notifier interface {
	Send(ctx context.Context, webhookURL, reportText, label string) error
}

type Handler struct {
	cfg      *config.Config
	store    database.Store
	notifier Notifier
}

func New(cfg *config.Config, store database.Store, notifier Notifier) *Handler {
	return &Handler{
		cfg:      cfg,
		store:    store,
		notifier: notifier,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateCommunity handles a form submission. The sequence is fixed:
// validate, generate the report, notify the webhook if one applies, persist.
// A failed notification aborts the submission before anything is stored.
func (h *Handler) CreateCommunity(c *gin.Context) {
	var req models.CreateCommunityRequest
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

	generated := report.Generate(report.Params{
		Rename:            req.Rename,
		RobuxFund:         req.RobuxFund,
		CommunitiesMember: req.CommunitiesMember,
		OwnerUsername:     req.OwnerUsername,
		OriginalContent:   req.Content(),
	}, time.Now())

	webhookURL := req.DiscordWebhook
	if webhookURL == "" && h.cfg.NotifierEnabled() {
		webhookURL = h.cfg.Discord.WebhookURL
	}
	if webhookURL != "" || h.cfg.NotifierEnabled() {
		// Send rejects an empty URL, so an enabled notifier without any
		// webhook configured fails the request here.
		if err := h.notifier.Send(c.Request.Context(), webhookURL, generated, req.Rename); err != nil {
			log.Error("failed to send discord notification", "error", err, "request_id", c.GetString("request_id"))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to send notification"})
			return
		}
	}

	community := &database.Community{
		Rename:            req.Rename,
		RobuxFund:         req.RobuxFund,
		CommunitiesMember: req.CommunitiesMember,
		OwnerUsername:     req.OwnerUsername,
		OriginalFileName:  req.FileName,
		DiscordWebhook:    req.DiscordWebhook,
		OriginalContent:   req.Content(),
		GeneratedContent:  generated,
	}
	stored, err := h.store.CreateCommunity(c.Request.Context(), community)
	if err != nil {
		log.Error("failed to save community", "error", err, "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to save community"})
		return
	}

	c.JSON(http.StatusOK, models.CreateCommunityResponse{
		Success:     true,
		Message:     "Community rename request submitted successfully",
		CommunityID: stored.ID,
	})
}

func (h *Handler) ListCommunities(c *gin.Context) {
	communities, err := h.store.ListCommunities(c.Request.Context())
	if err != nil {
		log.Error("failed to list communities", "error", err, "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to load communities"})
		return
	}
	c.JSON(http.StatusOK, models.ToCommunityResponses(communities))
}

func (h *Handler) GetCommunity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid community id"})
		return
	}

	community, err := h.store.GetCommunity(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Community not found"})
			return
		}
		log.Error("failed to get community", "error", err, "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to load community"})
		return
	}
	c.JSON(http.StatusOK, models.ToCommunityResponse(*community))
}
