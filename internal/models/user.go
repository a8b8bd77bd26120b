package models

type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleTeacher UserRole = "TEACHER"
	RoleStudent UserRole = "STUDENT"
)

// AccentColor is the persistent accent color preference carried on the profile.
type AccentColor string

const (
	AccentBlue    AccentColor = "blue"
	AccentPurple  AccentColor = "purple"
	AccentEmerald AccentColor = "emerald"
)

// User is a directory entry. Role is fixed at creation and never changes.
// Email is the login lookup key but the store does not enforce uniqueness;
// the user service rejects duplicate (email, role) pairs so first-match login
// stays unambiguous.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name" validate:"required,max=100"`
	Email string   `json:"email" validate:"required,email"`
	Role  UserRole `json:"role" validate:"required,user_role"`

	// Profile info
	Avatar  string `json:"avatar,omitempty"`
	ClassID string `json:"classId,omitempty"`
	RollNo  string `json:"rollNo,omitempty"`

	// Gamification
	XP int `json:"xp,omitempty"`

	// Preferences
	ThemeColor AccentColor `json:"themeColor,omitempty"`
}

func (User) CollectionKey() string {
	return "users"
}
