package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"facility-console/pkg/config"
	"facility-console/pkg/service"
)

var (
	tokenSubject string
	tokenEmail   string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a development access token",
	Long:  `Sign an access token with AUTH_JWT_SECRET for local testing of the protected API.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.New()
		if cfg.Auth.JWTSecret == "" {
			return errors.New("AUTH_JWT_SECRET is not set")
		}
		token, err := service.NewJWTService(cfg.Auth.JWTSecret).GenerateToken(tokenSubject, tokenEmail, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "dev", "Token subject")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "dev@example.com", "Email claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
}
