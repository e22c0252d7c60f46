package domain

// User is an account in the in-memory user list. This is a mock: accounts
// live for the process lifetime only and there is no real identity backend.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	IsAdmin      bool   `json:"is_admin"`
}
