package models

type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleManager  UserRole = "MANAGER"
	RoleWaiter   UserRole = "WAITER"
	RoleChef     UserRole = "CHEF"
)

// StaffRoles are the roles that work the staff order list.
var StaffRoles = []UserRole{RoleManager, RoleWaiter, RoleChef}

// IsStaff reports whether the role belongs to restaurant staff.
func (r UserRole) IsStaff() bool {
	switch r {
	case RoleManager, RoleWaiter, RoleChef:
		return true
	}
	return false
}

// Known reports whether the role is one of the four roles the backend assigns.
func (r UserRole) Known() bool {
	return r == RoleCustomer || r.IsStaff()
}

type User struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName"`
	Role     UserRole `json:"role"`
	Enabled  bool     `json:"enabled"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
	FullName string   `json:"fullName,omitempty"`
}

// User is the profile carried by the login response.
func (r LoginResponse) User() *User {
	return &User{Username: r.Username, FullName: r.FullName, Role: r.Role, Enabled: true}
}
