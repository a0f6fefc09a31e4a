package model

// Role distinguishes coach and player accounts. The zero value means
// the candidate never picked one.
type Role string

// Account roles.
const (
	RoleCoach  Role = "coach"
	RolePlayer Role = "player"
)

// RegistrationCandidate is a not-yet-validated registration input. It
// exists for the duration of one validation call; the fixed shape
// keeps the sport field always present (possibly empty) instead of
// appearing and disappearing with the role.
type RegistrationCandidate struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            Role   `json:"role"`
	Sport           Sport  `json:"sport"`
}

// Account is the persisted result of an accepted registration.
// Sport is always empty for coaches: NewAccount clears any sport a
// candidate picked before switching their role to coach.
type Account struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Sport        Sport  `json:"sport,omitempty"`
}

// NewAccount builds an Account from an accepted candidate and the
// hash of its password.
func NewAccount(id string, c RegistrationCandidate, passwordHash string) Account {
	sport := c.Sport
	if c.Role == RoleCoach {
		sport = ""
	}
	return Account{
		ID:           id,
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: passwordHash,
		Role:         c.Role,
		Sport:        sport,
	}
}
