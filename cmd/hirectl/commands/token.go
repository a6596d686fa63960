package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hireboard/internal/common"
	"hireboard/internal/security"
)

func tokenCmd() *cobra.Command {
	var (
		secret string
		userID string
		role   string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed API token for development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl <= 0 {
				return fmt.Errorf("--ttl must be positive, got %s", ttl)
			}
			id := common.NewUUID()
			if userID != "" {
				parsed, err := common.ParseUUID(userID)
				if err != nil {
					return err
				}
				id = parsed
			}
			token, expiresAt, err := security.NewJWTProvider(secret).Generate(id, security.Role(role), ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "user %s, role %s, expires %s\n", id, role, expiresAt.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "JWT signing secret (JWT_SECRET of the API)")
	cmd.Flags().StringVar(&userID, "user-id", "", "user id (random when empty)")
	cmd.Flags().StringVar(&role, "role", string(security.RoleAdmin), "role: admin, recruiter or applicant")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("secret")
	return cmd
}
