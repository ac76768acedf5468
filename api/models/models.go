package models

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"communityforge/database"
)

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CreateCommunityRequest is the body of POST /api/communities. The text to
// transform comes either from textContent or from an uploaded file passed as
// fileContent plus fileName. The webhook URL is optional.
type CreateCommunityRequest struct {
	Rename            string `json:"rename" validate:"notblank"`
	RobuxFund         string `json:"robuxFund" validate:"notblank"`
	CommunitiesMember string `json:"communitiesMember" validate:"notblank"`
	OwnerUsername     string `json:"ownerUsername" validate:"notblank"`
	TextContent       string `json:"textContent"`
	FileContent       string `json:"fileContent"`
	FileName          string `json:"fileName"`
	DiscordWebhook    string `json:"discordWebhook" validate:"omitempty,discordwebhook"`
}

// Content returns the submitted text, preferring the direct text field over
// the uploaded file content.
func (r *CreateCommunityRequest) Content() string {
	if strings.TrimSpace(r.TextContent) != "" {
		return r.TextContent
	}
	return r.FileContent
}

// Validate checks the request and returns the aggregated per-field errors.
// An empty slice means the request is well-formed.
func (r *CreateCommunityRequest) Validate() []FieldError {
	errs := validateStruct(r)
	if strings.TrimSpace(r.Content()) == "" {
		errs = append(errs, FieldError{Field: "textContent", Message: fieldMessages["textContent"]})
	}
	return errs
}

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// Validate checks the request and returns the aggregated per-field errors.
func (r *CreateUserRequest) Validate() []FieldError {
	return validateStruct(r)
}

// CreateCommunityResponse is the success body of POST /api/communities.
type CreateCommunityResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	CommunityID uint   `json:"communityId"`
}

// CreateUserResponse is the success body of POST /api/users.
type CreateUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

// ErrorResponse is the body of every non-success response.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// CommunityResponse mirrors a stored submission record.
type CommunityResponse struct {
	ID                uint      `json:"id"`
	Rename            string    `json:"rename"`
	RobuxFund         string    `json:"robuxFund"`
	CommunitiesMember string    `json:"communitiesMember"`
	OwnerUsername     string    `json:"ownerUsername"`
	OriginalFileName  string    `json:"originalFileName,omitempty"`
	DiscordWebhook    string    `json:"discordWebhook,omitempty"`
	OriginalContent   string    `json:"originalContent"`
	GeneratedContent  string    `json:"generatedContent"`
	CreatedAt         time.Time `json:"createdAt"`
}

// UserResponse mirrors a stored user without the password.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCommunityResponse converts a database.Community to its API representation.
func ToCommunityResponse(c database.Community) CommunityResponse {
	return CommunityResponse{
		ID:                c.ID,
		Rename:            c.Rename,
		RobuxFund:         c.RobuxFund,
		CommunitiesMember: c.CommunitiesMember,
		OwnerUsername:     c.OwnerUsername,
		OriginalFileName:  c.OriginalFileName,
		DiscordWebhook:    c.DiscordWebhook,
		OriginalContent:   c.OriginalContent,
		GeneratedContent:  c.GeneratedContent,
		CreatedAt:         c.CreatedAt,
	}
}

// ToCommunityResponses converts a slice of database.Community records.
func ToCommunityResponses(items []database.Community) []CommunityResponse {
	return lo.Map(items, func(c database.Community, _ int) CommunityResponse {
		return ToCommunityResponse(c)
	})
}

// ToUserResponse converts a database.User to its API representation.
func ToUserResponse(u database.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
