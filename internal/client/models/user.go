package models

// UserRecord is a server-owned registered-user row. The client only
// displays these and, for admins, deletes them.
type UserRecord struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	DateJoined string `json:"date_joined"`
	Role       Role   `json:"role"`
}
