package auth

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleClient  Role = "client"
	RoleUnknown Role = "unknown"
)

// Caller is the authenticated identity behind a request.
type Caller struct {
	Role   Role
	ID     *uint
	Pseudo string
}

func MustBeAdmin(c Caller) bool {
	return c.Role == RoleAdmin
}

func MustBeClientOrAdmin(c Caller) bool {
	return c.Role == RoleClient || c.Role == RoleAdmin
}

// IsMyAccountOrAdmin allows admins, and clients asking for their own pseudo.
func IsMyAccountOrAdmin(c Caller, pseudo string) bool {
	if c.Role == RoleAdmin {
		return true
	}
	return pseudo != "" && c.Pseudo == pseudo
}

// OwnsDeck requires the caller to be the deck owner. Admins get no bypass.
func OwnsDeck(c Caller, ownerPseudo string) bool {
	return c.Pseudo != "" && c.Pseudo == ownerPseudo
}
