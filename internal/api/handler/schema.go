package handler

import "github.com/devhub/admin-console/internal/core/domain"

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type createCategoryRequest struct {
	Name        string `json:"name"        validate:"required,max=50"`
	Description string `json:"description" validate:"max=500"`
}

type postStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

type accountStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active banned"`
}

// Documentation-only envelopes with concrete data types.

type loginEnvelope struct {
	Success bool          `json:"success"`
	Data    loginResponse `json:"data"`
}

type categoryEnvelope struct {
	Success bool            `json:"success"`
	Data    domain.Category `json:"data"`
}

type categoryListEnvelope struct {
	Success bool              `json:"success"`
	Data    []domain.Category `json:"data"`
}

type postEnvelope struct {
	Success bool        `json:"success"`
	Data    domain.Post `json:"data"`
}

type postListEnvelope struct {
	Success bool          `json:"success"`
	Data    []domain.Post `json:"data"`
}

type accountEnvelope struct {
	Success bool           `json:"success"`
	Data    domain.Account `json:"data"`
}

type accountListEnvelope struct {
	Success bool             `json:"success"`
	Data    []domain.Account `json:"data"`
}

type auditListEnvelope struct {
	Success bool                `json:"success"`
	Data    []domain.AuditEntry `json:"data"`
}
