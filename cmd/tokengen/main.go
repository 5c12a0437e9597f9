// Command tokengen issues a bearer token for an existing username using the server's JWT settings.
package main

import (
	"flag"
	"fmt"
	"os"

	"aircraft-production-backend/internal/auth"
	"aircraft-production-backend/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	username := flag.String("username", "", "username to issue the token for")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "usage: tokengen -username <name>")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL())
	token, err := tokens.GenerateJWT(*username)
	if err != nil {
		logrus.Fatal("Failed to sign token: ", err)
	}
	fmt.Println(token)
}
