package constvars

const (
	SuccessGetUsers            = "Successfully retrieved users"
	SuccessGetMeanTimeWeekday  = "Successfully retrieved mean presence time by weekday"
	SuccessGetPresenceWeekday  = "Successfully retrieved total presence time by weekday"
	SuccessGetPresenceStartEnd = "Successfully retrieved mean start-end times by weekday"
)
