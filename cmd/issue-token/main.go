// issue-token prints a bearer token for an owner, signed with JWT_SECRET.
//
// It stands in for the identity provider during development:
//
//	curl -H "Authorization: Bearer $(go run ./cmd/issue-token -owner alice)" http://localhost:8080/v1/dashboard
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	owner := flag.String("owner", "", "owner identity to put into the sub claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "validity of the token")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	token, err := run(*owner, *ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("issue-token")
	}

	fmt.Println(token)
}

func run(owner string, ttl time.Duration) (string, error) {
	if owner == "" {
		return "", fmt.Errorf("-owner must be set")
	}

	if ttl <= 0 {
		return "", fmt.Errorf("-ttl must be positive, got %s", ttl)
	}

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}

	if len(cfg.JWTSecret) < 32 {
		return "", fmt.Errorf("JWT_SECRET must be at least 32 bytes long")
	}

	return auth.NewVerifier(cfg.JWTSecret).IssueToken(owner, ttl)
}
