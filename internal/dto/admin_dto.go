package dto

import "time"

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type LeadResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	UserType  string    `json:"userType"`
	SessionId string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

type LeadListResponse struct {
	Total int64          `json:"total"`
	Leads []LeadResponse `json:"leads"`
}

type EventLogResponse struct {
	Id        string                 `json:"id"`
	Event     string                 `json:"event"`
	Details   map[string]interface{} `json:"details"`
	CreatedAt time.Time              `json:"createdAt"`
}

type EventLogListResponse struct {
	Total  int64              `json:"total"`
	Events []EventLogResponse `json:"events"`
}
