package auth

import (
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/ub-intelligence/dharmabot/models"
	"github.com/ub-intelligence/dharmabot/stores"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10,15}$`)
)

// Service handles registration, login and the current-user session pointer.
// Validation failures come back as an unsuccessful AuthResult with a
// user-facing message; errors are reserved for storage trouble that the
// stores already degrade around.
type Service struct {
	users  *stores.UserStore
	logger *log.Logger
}

// NewService creates an auth service over the given user store
func NewService(users *stores.UserStore) *Service {
	return &Service{
		users:  users,
		logger: log.New(os.Stdout, "[AUTH] ", log.LstdFlags),
	}
}

// Register validates the input, creates the account with a lowercased
// email, and signs the new user in.
func (s *Service) Register(profileType models.UserProfileType, email, phone, passwordOne, passwordTwo string) models.AuthResult {
	if passwordOne != passwordTwo {
		return models.AuthResult{Message: "Passwords do not match."}
	}
	if len(passwordOne) < 6 {
		return models.AuthResult{Message: "Password must be at least 6 characters long."}
	}
	if !emailPattern.MatchString(email) {
		return models.AuthResult{Message: "Invalid email format."}
	}
	if !phonePattern.MatchString(strings.Join(strings.Fields(phone), "")) {
		return models.AuthResult{Message: "Invalid phone number format (10-15 digits)."}
	}

	users, _ := s.users.ListUsers()
	lowered := strings.ToLower(email)
	for _, u := range users {
		if strings.ToLower(u.Email) == lowered {
			return models.AuthResult{Message: "User with this email already exists."}
		}
	}

	newUser := models.User{
		ID:          uuid.NewString(),
		ProfileType: profileType,
		Email:       lowered,
		Phone:       phone,
		Password:    passwordOne,
	}
	users = append(users, newUser)
	if err := s.users.SaveUsers(users); err != nil {
		s.logger.Printf("Failed to save users: %v", err)
	}
	if err := s.users.SetCurrentUser(newUser); err != nil {
		s.logger.Printf("Failed to save user session: %v", err)
	}

	public := newUser.Public()
	return models.AuthResult{Success: true, Message: "Registration successful!", User: &public}
}

// Login matches the email case-insensitively. Unknown email and wrong
// password return the same message.
func (s *Service) Login(email, password string) models.AuthResult {
	users, _ := s.users.ListUsers()
	lowered := strings.ToLower(email)

	for _, u := range users {
		if strings.ToLower(u.Email) != lowered {
			continue
		}
		if u.Password != password {
			return models.AuthResult{Message: "Invalid email or password."}
		}
		if err := s.users.SetCurrentUser(u); err != nil {
			s.logger.Printf("Failed to save user session: %v", err)
		}
		public := u.Public()
		return models.AuthResult{Success: true, Message: "Login successful!", User: &public}
	}

	return models.AuthResult{Message: "Invalid email or password."}
}

// Logout clears the session pointer. Logging out while signed out is a
// no-op.
func (s *Service) Logout() {
	if err := s.users.ClearCurrentUser(); err != nil {
		s.logger.Printf("Error logging out: %v", err)
	}
}

// CurrentUser returns the signed-in user, or nil when no valid session is
// stored.
func (s *Service) CurrentUser() *models.User {
	user, err := s.users.CurrentUser()
	if err != nil {
		s.logger.Printf("Error loading user session: %v", err)
		return nil
	}
	return user
}
