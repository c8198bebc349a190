package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

// WeekdayLabels is indexed by the ISO weekday number, 0=Monday.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

const (
	PresenceWeekdayHeaderLabel = "Weekday"
	PresenceWeekdayHeaderValue = "Presence (s)"

	UserNameFallbackFormat = "User %d"
)
