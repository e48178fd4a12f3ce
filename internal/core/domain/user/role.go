package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func NewRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return Role(raw), true
	}
	return "", false
}

// Only service providers get a session right at sign up, everyone
// else has to log in explicitly. Product rule, not an accident.
var signUpSessionPolicy = map[Role]bool{
	RoleCustomer: false,
	RoleProvider: true,
	RoleAdmin:    false,
}

func (r Role) IssuesSessionOnSignUp() bool {
	return signUpSessionPolicy[r]
}
