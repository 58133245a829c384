package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"campaignd/internal/infra"
	"campaignd/internal/middleware"
)

// admintoken mints a signed operator token for the admin API. Meant for
// bootstrap and local testing; production tokens come from the identity layer.
func main() {
	subject := flag.String("subject", "", "Token subject (operator identifier)")
	role := flag.String("role", middleware.RoleAdministrator, "Role claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *subject == "" {
		fmt.Fprintln(os.Stderr, "-subject is required")
		os.Exit(1)
	}

	token, err := middleware.SignToken(cfg.AuthSecret, middleware.TokenClaims{
		Sub:      *subject,
		Role:     *role,
		Exp:      time.Now().Add(*ttl).Unix(),
		Issuer:   "campaignd",
		Audience: "campaignd-admin",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
