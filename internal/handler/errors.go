package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidDate           = "Invalid %s parameter, expected YYYY-MM-DD"
	ErrMsgInvalidStepIndex      = "Invalid step index"
	ErrMsgInvalidItemKind       = "Invalid item kind"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError         = "Something went wrong"
	ErrMsgUnknownError               = "Unknown error"
	ErrMsgItemNotFoundError          = "Item not found"
	ErrMsgTemplateNotFoundError      = "Catalog entry not found"
	ErrMsgInvalidInputError          = "Invalid request. Please check your inputs."
	ErrMsgInvalidTransitionError     = "That item cannot do that right now"
	ErrMsgRedemptionUnavailableError = "Redemption is not available"
	ErrMsgRejectedByQuotaError       = "Daily quota reached"
	ErrMsgStorageUnavailableError    = "Storage is temporarily unavailable"
)

// Success messages for API responses
const (
	MsgItemDeleted         = "Item deleted"
	MsgRedemptionAbandoned = "Redemption abandoned"
	MsgReconcileCompleted  = "Reconciled"
	MsgRedemptionStarted   = "Redemption started"
	MsgRedemptionPassed    = "Redemption passed"
	MsgRedemptionNotPassed = "Redemption failed"
)

// Log messages
const (
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgRequestDecoded  = "Request decoded"
	LogMsgServiceError    = "Service call failed"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
)
