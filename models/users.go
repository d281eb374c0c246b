package models

// UserProfileType distinguishes the account kinds the app serves.
type UserProfileType string

const (
	ProfileCitizen    UserProfileType = "citizen"
	ProfileLawStudent UserProfileType = "law_student"
	ProfileLawyer     UserProfileType = "lawyer"
	ProfileJudge      UserProfileType = "judge"
)

// User is a registered account. Password is stored alongside the record in
// the local key-value store and stripped before the user is exposed.
type User struct {
	ID          string          `json:"id"`
	ProfileType UserProfileType `json:"profileType"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Password    string          `json:"password,omitempty"`
}

// Public returns a copy without the password.
func (u User) Public() User {
	u.Password = ""
	return u
}

// AuthResult is the structured outcome of a registration or login attempt.
// Validation failures are reported here, never as errors.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}
