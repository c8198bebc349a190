package constvars

// Client messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request"
	ErrClientUserNotFound                  = "User not found"
)

// Dev messages
const (
	ErrDevMissingRequestID           = "request ID not found in request context"
	ErrDevURLParamIDValidationFailed = "failed to validate URL param: %s"
	ErrDevUserNotExists              = "user id not present in presence data"
	ErrDevDataSourceUnavailable      = "failed to open data source: %s"
	ErrDevDataSourceMalformed        = "failed to parse data source: %s"
	ErrDevRenderTemplate             = "failed to render template: %s"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
)
