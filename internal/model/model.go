// Package model defines domain entities used by services and repositories.
package model

// User is an account record. The password hash never leaves the server.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"` // unique
	PasswordHash string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	CreatedAt    int64  `json:"createdAt"` // unix milliseconds, set by the DB
}

// Subject is a scheduled class entry owned by a single user.
type Subject struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	StartTime   string `json:"startTime"` // free-form, not parsed
	EndTime     string `json:"endTime"`
	EvenOdd     string `json:"evenOdd"`
	Grade       int    `json:"grade"` // defaults to 5 at creation
	ClassNumber string `json:"classNumber"`
	Day         string `json:"day"`
	UserID      int64  `json:"userId"`
}

// Event is a dated calendar entry owned by a single user.
type Event struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	EventDate int64  `json:"eventDate"` // unix milliseconds
	UserID    int64  `json:"userId"`
}

// Todo is a task list entry. For a given user the Order values of all
// todos form the dense sequence 1..N; Reorder keeps it that way.
type Todo struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsComplete bool   `json:"isComplete"`
	Order      int    `json:"order"` // 1-based position in the user's list
	UserID     int64  `json:"userId"`
}
