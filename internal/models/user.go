package models

// UI languages. The backend stores both variants on every post.
const (
	LangEnglish = "en"
	LangNepali  = "np"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is owned by the backend; this frontend never mutates it directly.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Bio    string `json:"bio,omitempty"`
	Role   string `json:"role"`
}
