// seed provisions a user in the credential store. The API exposes no
// registration endpoint, so operators run this tool once per cleaner or
// driver account.
//
// Usage: go run ./cmd/seed -user cleaner01 -password s3cret -role cleaner
// Connection settings come from the same environment variables as the server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ecocollect/collection-system/internal/core/domain"
	"github.com/ecocollect/collection-system/internal/infrastructure/config"
	mongodb "github.com/ecocollect/collection-system/internal/infrastructure/db/mongo"
)

func main() {
	userID := flag.String("user", "", "externally chosen user identifier")
	password := flag.String("password", "", "plaintext password (stored as a bcrypt hash)")
	role := flag.String("role", "", "user role: cleaner or driver")
	flag.Parse()

	if *userID == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "seed: -user and -password are required")
		os.Exit(2)
	}
	if !domain.ValidRole(*role) {
		fmt.Fprintf(os.Stderr, "seed: -role must be %q or %q\n", domain.RoleCleaner, domain.RoleDriver)
		os.Exit(2)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	repo := mongodb.NewAuthRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "seed: ensure indexes: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: hash password: %v\n", err)
		os.Exit(1)
	}

	user, err := repo.Create(ctx, &domain.User{
		UserID:       *userID,
		PasswordHash: string(hash),
		Role:         *role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			fmt.Fprintf(os.Stderr, "seed: user %q already exists\n", *userID)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("created user %s (%s) with id %s\n", user.UserID, user.Role, user.ID)
}
