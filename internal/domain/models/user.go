package models

// AdminUser mirrors the auth user exposed to the back-office. Password is
// write-only and never round-trips in responses.
type AdminUser struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser,omitempty"`
	Password    string `json:"password,omitempty"`
	LastLogin   string `json:"last_login,omitempty"`
	DateJoined  string `json:"date_joined,omitempty"`
}
