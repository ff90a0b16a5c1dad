package domain

import "errors"

// AdminUsername is the account name treated as an administrator
// regardless of the IsAdmin flag. Legacy bootstrap rule.
const AdminUsername = "admin"

// Username length limits.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

// User validation errors.
var (
	ErrUsernameTooShort    = errors.New("username must be at least 3 characters long")
	ErrUsernameTooLong     = errors.New("username must be at most 50 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered account. The username is the primary key;
// there is no separate ID. The JSON tags define the persisted record
// format — the API layer maps users to response DTOs that exclude the
// password hash.
type User struct {
	Username       string `json:"username"`
	HashedPassword string `json:"hashed_password"`
	// Disabled is persisted but not currently checked at authentication
	// time. Reserved for account suspension.
	Disabled bool `json:"disabled"`
	IsAdmin  bool `json:"is_admin"`
}

// NewUser creates a User from a username and an already-hashed password.
// The caller owns hashing; this package never sees plaintext secrets.
func NewUser(username, hashedPassword string) (*User, error) {
	user := &User{
		Username:       username,
		HashedPassword: hashedPassword,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if len(u.Username) < MinUsernameLength {
		return ErrUsernameTooShort
	}
	if len(u.Username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

// Admin reports whether the user has administrative rights. The account
// named "admin" is always an administrator.
func (u *User) Admin() bool {
	return u.IsAdmin || u.Username == AdminUsername
}
