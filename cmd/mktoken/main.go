// Command mktoken mints an API access token for a client.
//
// Usage:
//
//	mktoken -client popup-extension [-ttl 720h]
//
// Requires AUTH_JWT_SECRET to be set to the same value the server uses.
// The generated client ID and signed token are printed to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/wordpeek/wordpeek-backend/internal/auth"
)

func main() {
	clientName := flag.String("client", "", "human-readable client name embedded in the token")
	issuer := flag.String("issuer", "wordpeek", "token issuer, must match the server's auth.jwt_issuer")
	ttl := flag.Duration("ttl", 720*time.Hour, "token lifetime")
	flag.Parse()

	if *clientName == "" {
		log.Fatal("-client is required")
	}

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		log.Fatal("AUTH_JWT_SECRET environment variable is required")
	}
	if len(secret) < 32 {
		log.Fatal("AUTH_JWT_SECRET must be at least 32 characters")
	}

	manager := auth.NewJWTManager(secret, *issuer, *ttl)
	clientID := uuid.New()

	token, err := manager.GenerateAccessToken(clientID, *clientName)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Printf("client id: %s\n", clientID)
	fmt.Printf("token:     %s\n", token)
}
