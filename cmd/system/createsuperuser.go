package system

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/carelinkhq/carelink_backend/config"
	"github.com/carelinkhq/carelink_backend/pkg/database"
	"github.com/carelinkhq/carelink_backend/pkg/util/password"
	"github.com/carelinkhq/carelink_backend/pkg/validate"
)

func NewCreateSuperuserCommand() *cobra.Command {
	var (
		emailFlag     string
		passwordFlag  string
		firstNameFlag string
		lastNameFlag  string
	)

	cmd := &cobra.Command{
		Use:   "create-superuser",
		Short: "Create a superuser account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			emailAddr := strings.ToLower(strings.TrimSpace(emailFlag))
			if !validate.Email(emailAddr) {
				return fmt.Errorf("invalid email address %q", emailFlag)
			}
			pwCfg := password.FromCentralConfig(cfg.Password)
			if reasons := pwCfg.ToPolicy().Check(passwordFlag); len(reasons) > 0 {
				return fmt.Errorf("weak password: %s", strings.Join(reasons, " "))
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			hash, err := password.HashWithParams(passwordFlag, pwCfg.ToParams())
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			u, err := client.User.Create().
				SetEmail(emailAddr).
				SetPasswordHash(hash).
				SetFirstName(firstNameFlag).
				SetLastName(lastNameFlag).
				SetIsSuperuser(true).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create superuser: %w", err)
			}

			fmt.Printf("Superuser %s created (%s).\n", u.Email, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&emailFlag, "email", "", "superuser email (required)")
	cmd.Flags().StringVar(&passwordFlag, "password", "", "superuser password (required)")
	cmd.Flags().StringVar(&firstNameFlag, "first-name", "Admin", "first name")
	cmd.Flags().StringVar(&lastNameFlag, "last-name", "", "last name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
