package responses

// User is one row of the users listing consumed by the page dropdown.
type User struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// WeekdayRow is an ordered [label, value...] sequence as served to the
// charting front end, e.g. ["Tue", 30047] or ["Tue", 34745, 64792].
type WeekdayRow []interface{}
