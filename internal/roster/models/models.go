package models

import "time"

// Person is a volunteer on the roster.
type Person struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Service is an activity people can be assigned to.
type Service struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PersonWithServices is the people-listing row: the person plus a single
// delimited string of assigned service titles, "" when none. The string
// follows assignment order.
type PersonWithServices struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Services string `json:"services"`
}

// Assignment links a person to a service. At most one row exists per pair;
// re-assignment refreshes AssignedAt.
type Assignment struct {
	PersonID   int64     `json:"person_id"`
	ServiceID  int64     `json:"service_id"`
	AssignedAt time.Time `json:"assigned_at"`
}
