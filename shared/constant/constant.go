package constant

import (
	"time"
)

type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

// Roles the identity provider puts in tokens. Only admin is special to the service;
// any other role may reserve public rooms.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID          = "id"
	RequestParamRoomID      = "room_id"
	RequestParamTimeBlockID = "time_block_id"
	RequestParamDate        = "date"
	RequestParamDay         = "day"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	CachePrefixAvailabilityGrid = "availability:grid"
)

const (
	PqErrorCodeUniqueViolation = "23505"
)

const DateFormat = time.RFC3339

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorInternal             = "INTERNAL SERVER ERROR"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	Asterix = "*"
	Empty   = ""
)
