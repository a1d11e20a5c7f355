package main

import (
	"context"
	"flag"
	"log"

	"workshop-system/pkg/config"
	"workshop-system/pkg/database/postgresql"
	"workshop-system/seeders"
)

func main() {
	runUsers := flag.Bool("users", false, "seed the default manager and mechanic accounts")
	runJobs := flag.Bool("jobs", false, "seed sample jobs (only into an empty jobs table)")
	runAll := flag.Bool("all", false, "run every seeder")
	flag.Parse()

	if !*runUsers && !*runJobs && !*runAll {
		log.Println("nothing selected, available flags:")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	db, err := postgresql.ConnectDB(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if *runUsers || *runAll {
		seeders.SeedUsers(db)
	}
	if *runJobs || *runAll {
		seeders.SeedSampleJobs(db)
	}
}
