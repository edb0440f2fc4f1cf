package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by middleware
	ContextKeyUserID    = "user_id"
	ContextKeyCaller    = "caller"
	ContextKeyRequestID = "request_id"

	TableOrganizations = "organizations"
	TableTickets       = "tickets"
	TableVotes         = "votes"

	// Image payload limits in bytes
	MaxOrganizationImageSize = 1 << 20
	MaxTicketImageSize       = 5 << 20

	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgAIUnavailable       = "The AI service could not complete this request, please try again"
)
