package seeders

import (
	"context"
	"fmt"

	"workshop-system/internal/entities"
	"workshop-system/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedUser struct {
	Username string
	Password string
	Role     string
	FullName string
}

var defaultUsers = []seedUser{
	{Username: "admin", Password: "admin123", Role: entities.RoleManager, FullName: "Workshop Manager"},
	{Username: "rudhan", Password: "rudhan123", Role: entities.RoleMechanic, FullName: "Rudhan"},
	{Username: "suresh", Password: "suresh123", Role: entities.RoleMechanic, FullName: "Suresh"},
}

func seedUsers(ctx context.Context, db *pgxpool.Pool) error {
	for _, u := range defaultUsers {
		hash, err := utils.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Username, err)
		}
		_, err = db.Exec(ctx,
			`INSERT INTO users (username, password_hash, role, full_name)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (username) DO NOTHING`,
			u.Username, hash, u.Role, u.FullName)
		if err != nil {
			return fmt.Errorf("insert user %s: %w", u.Username, err)
		}
	}
	return nil
}
