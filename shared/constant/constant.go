package constant

import (
	"math"
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamID = "id"
)

// MaxSerialID is the largest value of the SERIAL and INTEGER columns (id, casa_id, estado_id,
// reserva_id, cant_personas). Request validation tags repeat it as lte=2147483647.
const MaxSerialID = math.MaxInt32

const (
	DefaultValueCommissionStatus = "pendiente"
)

// PqErrorCodeFkViolation is the SQLSTATE raised when a casa_id, estado_id or reserva_id
// points at a row that does not exist.
const PqErrorCodeFkViolation = "23503"

const (
	DateFormat      = time.RFC3339
	DateOnlyFormat  = time.DateOnly
	DateLocalFormat = "2006-01-02T15:04:05"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorDatabaseUnavailable  = "DATABASE UNAVAILABLE"
	ResponseMessageHealthy            = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	EventBrokerKafka    = "kafka"
	EventBrokerRabbitMQ = "rabbitmq"
	EventBrokerNone     = "none"
)

const Asterix = "*"
