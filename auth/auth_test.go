package auth

import (
	"testing"

	"github.com/ub-intelligence/dharmabot/models"
	"github.com/ub-intelligence/dharmabot/stores"
)

func newTestService() *Service {
	return NewService(stores.NewUserStore(stores.NewMemoryStore()))
}

func TestRegister_Success(t *testing.T) {
	s := newTestService()

	result := s.Register(models.ProfileLawyer, "Adv.Sharma@Example.com", "9876543210", "secret1", "secret1")
	if !result.Success {
		t.Fatalf("Registration failed: %s", result.Message)
	}
	if result.Message != "Registration successful!" {
		t.Errorf("Unexpected message: %q", result.Message)
	}
	if result.User == nil {
		t.Fatal("Expected a user in the result")
	}
	if result.User.Email != "adv.sharma@example.com" {
		t.Errorf("Email should be lowercased, got %q", result.User.Email)
	}
	if result.User.Password != "" {
		t.Error("Returned user must not carry the password")
	}

	current := s.CurrentUser()
	if current == nil || current.ID != result.User.ID {
		t.Error("Registration should sign the new user in")
	}
}

func TestRegister_ValidationFailures(t *testing.T) {
	s := newTestService()

	cases := []struct {
		name    string
		email   string
		phone   string
		pw1     string
		pw2     string
		message string
	}{
		{"mismatched passwords", "a@b.co", "9876543210", "secret1", "secret2", "Passwords do not match."},
		{"short password", "a@b.co", "9876543210", "abc", "abc", "Password must be at least 6 characters long."},
		{"bad email", "not-an-email", "9876543210", "secret1", "secret1", "Invalid email format."},
		{"bad phone", "a@b.co", "12345", "secret1", "secret1", "Invalid phone number format (10-15 digits)."},
	}
	for _, tc := range cases {
		result := s.Register(models.ProfileCitizen, tc.email, tc.phone, tc.pw1, tc.pw2)
		if result.Success {
			t.Errorf("%s: expected failure", tc.name)
		}
		if result.Message != tc.message {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.message, result.Message)
		}
	}
}

func TestRegister_PhoneWithWhitespaceAccepted(t *testing.T) {
	s := newTestService()

	cases := []struct {
		name  string
		email string
		phone string
	}{
		{"spaces", "a@b.co", "98765 43210"},
		{"tabs", "c@d.co", "98765\t43210"},
		{"mixed whitespace", "e@f.co", " 987 65\t432 10 "},
	}
	for _, tc := range cases {
		result := s.Register(models.ProfileCitizen, tc.email, tc.phone, "secret1", "secret1")
		if !result.Success {
			t.Errorf("%s: phone %q should validate, got %q", tc.name, tc.phone, result.Message)
		}
	}
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	s := newTestService()
	if r := s.Register(models.ProfileCitizen, "dup@example.com", "9876543210", "secret1", "secret1"); !r.Success {
		t.Fatalf("First registration failed: %s", r.Message)
	}

	result := s.Register(models.ProfileLawyer, "DUP@example.com", "9876543211", "secret2", "secret2")
	if result.Success {
		t.Fatal("Duplicate email should be rejected case-insensitively")
	}
	if result.Message != "User with this email already exists." {
		t.Errorf("Unexpected message: %q", result.Message)
	}
}

func TestLogin_Success(t *testing.T) {
	s := newTestService()
	s.Register(models.ProfileJudge, "judge@court.in", "9876543210", "secret1", "secret1")
	s.Logout()

	result := s.Login("JUDGE@court.in", "secret1")
	if !result.Success {
		t.Fatalf("Login failed: %s", result.Message)
	}
	if result.User == nil || result.User.ProfileType != models.ProfileJudge {
		t.Error("Login should return the stored profile")
	}
	if result.User.Password != "" {
		t.Error("Returned user must not carry the password")
	}
	if s.CurrentUser() == nil {
		t.Error("Login should establish a session")
	}
}

func TestLogin_WrongCredentialsSameMessage(t *testing.T) {
	s := newTestService()
	s.Register(models.ProfileCitizen, "user@example.com", "9876543210", "secret1", "secret1")
	s.Logout()

	unknown := s.Login("nobody@example.com", "secret1")
	wrongPw := s.Login("user@example.com", "wrong")
	if unknown.Success || wrongPw.Success {
		t.Fatal("Bad credentials should fail")
	}
	if unknown.Message != wrongPw.Message {
		t.Errorf("Unknown email and wrong password should be indistinguishable: %q vs %q", unknown.Message, wrongPw.Message)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	s := newTestService()
	s.Register(models.ProfileCitizen, "user@example.com", "9876543210", "secret1", "secret1")

	s.Logout()
	if s.CurrentUser() != nil {
		t.Error("CurrentUser should be nil after logout")
	}
	// Logging out while signed out is a no-op.
	s.Logout()
}
