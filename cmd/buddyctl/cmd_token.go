package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spec-kit/buddy-service/internal/auth"
	"github.com/spec-kit/buddy-service/internal/config"
)

var (
	tokenSubject string
	tokenTTL     int
)

// tokenCmd mints a bearer token for the HTTP API.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the matches API",
	Long: `Signs an HS256 token with AUTH_JWT_SECRET (read from the environment or .env).

Example:
  buddyctl token --subject people-ops --ttl 120`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "who the token is issued to")
	tokenCmd.Flags().IntVar(&tokenTTL, "ttl", 0, "lifetime in minutes (defaults to AUTH_ACCESS_TOKEN_TTL_MINUTES)")
	_ = tokenCmd.MarkFlagRequired("subject")
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Auth.Enabled() {
		return errors.New("AUTH_JWT_SECRET is not set")
	}
	ttl := cfg.Auth.AccessTokenTTLMinutes
	if tokenTTL > 0 {
		ttl = tokenTTL
	}
	token, expiresAt, err := auth.NewTokenManager(cfg.Auth.JWTSecret, ttl).GenerateToken(tokenSubject)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expiresAt.UTC().Format(time.RFC3339))
	return nil
}
