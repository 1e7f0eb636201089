package entities

import "time"

type UserRole string

const (
	UserRoleRequester UserRole = "requester"
	UserRoleApprover  UserRole = "approver"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleRequester, UserRoleApprover, UserRoleAdmin:
		return true
	}
	return false
}

// CanReview reports whether the role may approve or reject budgets.
func (r UserRole) CanReview() bool {
	return r == UserRoleApprover || r == UserRoleAdmin
}

// UserProfile is an authenticated user together with its role.
//
// Storage model (DynamoDB):
//   - PK: id (the identity provider's user id)
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
