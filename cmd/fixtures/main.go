package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/config"
	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/fixtures"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.ConnectDatabase(config.Load())
	if err != nil {
		log.Fatal("Database connection failed: ", err)
	}

	fixtureManager := fixtures.NewFixtures(db)

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "generate":
		if err := fixtureManager.GenerateTestData(); err != nil {
			log.Fatal("Failed to generate fixtures: ", err)
		}
		fmt.Println("Fixtures generated successfully")
	case "clear":
		if err := fixtureManager.ClearAllData(); err != nil {
			log.Fatal("Failed to clear fixtures: ", err)
		}
		fmt.Println("All fixture data cleared")
	case "regenerate":
		if err := fixtureManager.ClearAllData(); err != nil {
			log.Fatal("Failed to clear fixtures: ", err)
		}
		if err := fixtureManager.GenerateTestData(); err != nil {
			log.Fatal("Failed to generate fixtures: ", err)
		}
		fmt.Println("Fixtures regenerated successfully")
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/fixtures generate    - Generate seed data (players, teams, tournaments)")
	fmt.Println("  go run ./cmd/fixtures clear       - Clear all data")
	fmt.Println("  go run ./cmd/fixtures regenerate  - Clear and regenerate all data")
}
