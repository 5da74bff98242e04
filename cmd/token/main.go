// Command token mints a bearer token for an identity, for local development.
package main

import (
	"fmt"
	"os"
	"time"

	"educonnect/backend/internal/config"
	"educonnect/backend/pkg/jwt"

	"github.com/spf13/pflag"
)

func main() {
	identity := pflag.StringP("identity", "i", "", "identity to put in the token subject")
	ttl := pflag.DurationP("ttl", "t", 0, "token lifetime (defaults to TOKEN_TTL_HOURS)")
	envDir := pflag.String("env-dir", ".", "directory containing the .env file")
	pflag.Parse()

	if *identity == "" {
		fmt.Fprintln(os.Stderr, "usage: token --identity <id> [--ttl 24h]")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load(*envDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	config.AppConfig = cfg

	lifetime := *ttl
	if lifetime <= 0 {
		lifetime = cfg.TokenTTL()
	}

	token, err := jwt.GenerateTokenWithTTL(*identity, lifetime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", time.Now().Add(lifetime).Format(time.RFC3339))
}
