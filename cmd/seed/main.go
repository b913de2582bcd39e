// Command main runs the database seeder for InternHub.
package main

import (
	"flag"
	"log"

	"internhub/internal/config"
	"internhub/internal/database"
	"internhub/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of students to create")
	domain := flag.String("domain", "@iba.edu.pk", "Email domain for seeded accounts")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d students, domain=%s, clean=%v\n", *numUsers, *domain, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		EmailDomain: *domain,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! The feed now has reviews and every student is past onboarding.")
	log.Println("📧 All seeded accounts have the password: SeededPassw0rd!23")
}
