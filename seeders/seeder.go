package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedUsers creates the default manager and mechanic accounts. Existing
// usernames are left untouched.
func SeedUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Seeding default users...")
	if err := seedUsers(ctx, db); err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}
	log.Println("Users seeded.")
}

// SeedSampleJobs inserts a couple of demo jobs into an empty jobs table.
func SeedSampleJobs(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Seeding sample jobs...")
	if err := seedJobs(ctx, db); err != nil {
		log.Fatalf("failed to seed jobs: %v", err)
	}
	log.Println("Sample jobs seeded.")
}
