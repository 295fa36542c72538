// Command mint-token prints an access token for the given subject, signed
// with the configured auth.jwt_secret. Use it to call mutations when
// authentication is enabled.
//
// Usage:
//
//	mint-token --subject ops-bot [--ttl 1h]
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/heartmarshall/usergraph-backend/internal/auth"
	"github.com/heartmarshall/usergraph-backend/internal/config"
)

func main() {
	subject := flag.String("subject", "", "token subject (required)")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: auth.token_ttl)")
	flag.Parse()

	if *subject == "" {
		log.Fatal("--subject is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Auth.Enabled() {
		log.Fatal("auth.jwt_secret is not configured")
	}

	lifetime := cfg.Auth.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime).GenerateAccessToken(*subject)
	if err != nil {
		log.Fatalf("mint token: %v", err)
	}

	fmt.Println(token)
}
