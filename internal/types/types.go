// Package types holds the backend DTO shapes exchanged by the client, the ui-api gateway and the cli.
//
// These types are shared to avoid circular imports between client ↔ server ↔ cmd.
// No invariants are enforced here: validation lives in the backend.
package types

// =============================================================================
// USER TYPES
// =============================================================================

// Profile holds the contact details of a user
type Profile struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// FullName returns "first last", trimmed when either part is missing
func (p Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// User is the basic user record embedded in teams (BasicUserDto)
type User struct {
	ID      int64   `json:"id,omitempty"`
	Profile Profile `json:"profile"`
	IsAdmin bool    `json:"isAdmin"`
	Active  bool    `json:"active"`
	Status  string  `json:"status,omitempty"` // PENDING until first login, then JOINED
}

// FullUser is returned by login and by the user registry endpoints (FullUserDto)
type FullUser struct {
	ID        int64     `json:"id"`
	Profile   Profile   `json:"profile"`
	IsAdmin   bool      `json:"isAdmin"`
	Active    bool      `json:"active"`
	Status    string    `json:"status"`
	Companies []Company `json:"companies,omitempty"`
	Teams     []Team    `json:"teams,omitempty"`
}

// Credentials identify a user to the backend
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserRequest is the body used to add a user to a company
type UserRequest struct {
	Credentials Credentials `json:"credentials"`
	Profile     Profile     `json:"profile"`
	Admin       bool        `json:"admin"`
}

// =============================================================================
// COMPANY & TEAM TYPES
// =============================================================================

type Company struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Teams       []Team `json:"teams,omitempty"`
	Employees   []User `json:"employees,omitempty"`
}

type Team struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Users       []User `json:"users"`
}

// TeamRequest is the body used to create a team. Teammates are user ids.
type TeamRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Teammates   []int64 `json:"teammates"`
}

// =============================================================================
// PROJECT TYPES
// =============================================================================

type Project struct {
	ID          int64  `json:"id,omitempty"`
	Date        string `json:"date,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	Team        Team   `json:"team"`
}

// ProjectUpdate is the partial body sent when editing a project
type ProjectUpdate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// =============================================================================
// API RESPONSE TYPES
// =============================================================================

// ErrorResponse represents an error response from the backend
type ErrorResponse struct {
	Message string `json:"message"`
}
