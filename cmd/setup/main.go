package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"ketotrack/backend/internal/database"
	"ketotrack/backend/internal/models"
	"ketotrack/backend/internal/seeders"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// readInput reads a line of text from the console.
func readInput(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// readPassword reads a password from the console, masking the input.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(bytePassword)), nil
}

func main() {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("--- KetoTrack Setup ---")

	// 1. Database configuration
	fmt.Println("\n--- Database Configuration ---")
	dbHost := readInput(reader, "Enter Database Host (e.g., localhost or 'db' if using docker-compose): ")
	dbPort := readInput(reader, "Enter Database Port (e.g., 5432): ")
	dbUser := readInput(reader, "Enter Database User: ")
	dbPassword, err := readPassword("Enter Database Password: ")
	if err != nil {
		log.Fatalf("Failed to read database password: %v", err)
	}
	dbName := readInput(reader, "Enter Database Name: ")
	dbSSLMode := readInput(reader, "Enter Database SSL Mode (e.g., disable, require): ")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)

	fmt.Println("Connecting to database...")
	if err := database.ConnectDB(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	fmt.Println("Successfully connected to the database.")

	// 2. Migrations
	fmt.Println("\n--- Running Database Migrations ---")
	if err := database.MigrateDB(); err != nil {
		log.Fatalf("Database migration process failed.")
	}
	fmt.Println("Database migrations completed successfully.")

	db := database.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance for seeding.")
	}

	// 3. Seed reference content
	fmt.Println("\n--- Seeding Food and Vegetable Reference Data ---")
	if err := seeders.SeedInitialData(db); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}
	fmt.Println("Reference data seeded successfully.")

	// 4. Admin user creation
	fmt.Println("\n--- Creating Admin User ---")
	adminName := readInput(reader, "Enter Admin User Name: ")
	adminEmail := readInput(reader, "Enter Admin User Email: ")

	var adminPassword string
	var adminPasswordConfirm string
	for {
		adminPassword, err = readPassword("Enter Admin User Password: ")
		if err != nil {
			log.Fatalf("Failed to read admin password: %v", err)
		}
		if adminPassword == "" {
			fmt.Println("Password cannot be empty. Please try again.")
			continue
		}
		adminPasswordConfirm, err = readPassword("Confirm Admin User Password: ")
		if err != nil {
			log.Fatalf("Failed to read admin password confirmation: %v", err)
		}
		if adminPassword == adminPasswordConfirm {
			break
		}
		fmt.Println("Passwords do not match. Please try again.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	adminUser := models.User{
		Name:         adminName,
		Email:        strings.ToLower(adminEmail),
		PasswordHash: string(hashedPassword),
		Role:         models.RoleAdmin,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v. Ensure email is unique.", err)
	}
	fmt.Printf("Admin user '%s' created successfully.\n", adminUser.Email)

	// 5. Completion
	fmt.Println("\n--- KetoTrack Setup Complete! ---")
	fmt.Println("You can now start the main application server.")
}
