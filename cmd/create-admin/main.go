package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/AbhijeetAayush/My-Portfolio/domain"
	"github.com/AbhijeetAayush/My-Portfolio/infrastructure/config"
	"github.com/AbhijeetAayush/My-Portfolio/infrastructure/di"

	"golang.org/x/crypto/bcrypt"
)

// create-admin provisions the admin user record used by the login endpoint.
// Run once per environment:
//
//	create-admin -email admin@example.com
//
// The password is read from stdin so it never lands in shell history.
func main() {
	email := flag.String("email", "", "admin email address")
	flag.Parse()

	if *email == "" {
		log.Fatal("usage: create-admin -email <address>")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	password = strings.TrimRight(password, "\r\n")
	if len(password) < 8 {
		log.Fatal("Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Shutdown()

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().Unix(),
	}

	if err := container.Store.CreateUser(ctx, user); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	fmt.Printf("Admin user %s created\n", user.Email)
}
