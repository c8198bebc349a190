package models

import "time"

// TimeOfDay is a wall-clock time without a date attached.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// Date is a calendar date. It is comparable and therefore usable as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Weekday returns the ISO weekday index, 0=Monday through 6=Sunday.
func (d Date) Weekday() int {
	weekday := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(weekday) + 6) % 7
}

// PresenceRecord is one user's attendance for one day. Start and End are
// independently valid times of day; Start <= End is NOT guaranteed, the
// source data may be inconsistent and intervals may come out negative.
type PresenceRecord struct {
	Start TimeOfDay
	End   TimeOfDay
}

// PresenceByUser maps user id -> date -> attendance for that date.
type PresenceByUser map[int]map[Date]PresenceRecord

func (p PresenceByUser) Clone() PresenceByUser {
	if p == nil {
		return nil
	}
	out := make(PresenceByUser, len(p))
	for userID, records := range p {
		cloned := make(map[Date]PresenceRecord, len(records))
		for date, record := range records {
			cloned[date] = record
		}
		out[userID] = cloned
	}
	return out
}

// UserEntry is one user-directory record. Avatar is empty when no absolute
// avatar URL could be built from the source document.
type UserEntry struct {
	Name   string
	Avatar string
}

// UserDirectory maps user id -> directory entry.
type UserDirectory map[int]UserEntry

func (d UserDirectory) Clone() UserDirectory {
	if d == nil {
		return nil
	}
	out := make(UserDirectory, len(d))
	for userID, entry := range d {
		out[userID] = entry
	}
	return out
}
