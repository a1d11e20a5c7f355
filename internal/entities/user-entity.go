package entities

import "time"

const (
	RoleManager  = "Manager"
	RoleMechanic = "Mechanic"
)

type User struct {
	ID           uint64
	Username     string
	PasswordHash string
	Role         string
	FullName     string
	CreatedAt    time.Time
}
