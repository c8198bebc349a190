package constvars

const (
	MIMETextHTML            = "text/html"
	MIMEApplicationJSON     = "application/json"
	MIMETextHTMLCharsetUTF8 = "text/html; charset=utf-8"

	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusFound               = 302
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
)

const (
	HeaderContentType = "Content-Type"
	HeaderLocation    = "Location"
	HeaderXRequestID  = "X-Request-ID"
)
