package cli

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(statusCmd)

	registerCmd.Flags().StringP("username", "u", "", "Username")
	registerCmd.Flags().StringP("secret", "p", "", "Secret (not recommended, use interactive prompt)")

	loginCmd.Flags().StringP("username", "u", "", "Username")
	loginCmd.Flags().StringP("secret", "p", "", "Secret (not recommended, use interactive prompt)")
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Register accounts and manage the session used by the other commands.`,
}

// promptCredentials fills in username and secret, prompting for
// whatever the flags did not supply. The secret is read without echo.
func promptCredentials(cmd *cobra.Command) (string, string, error) {
	username, _ := cmd.Flags().GetString("username")
	secret, _ := cmd.Flags().GetString("secret")

	if username == "" {
		fmt.Print("Username: ")
		_, _ = fmt.Scanln(&username)
	}

	if secret == "" {
		fmt.Print("Secret: ")
		byteSecret, err := term.ReadPassword(syscall.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read secret: %w", err)
		}
		secret = string(byteSecret)
		fmt.Println()
	}

	if username == "" {
		return "", "", fmt.Errorf("username is required")
	}
	if secret == "" {
		return "", "", fmt.Errorf("secret is required")
	}
	return username, secret, nil
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		username, secret, err := promptCredentials(cmd)
		if err != nil {
			return err
		}

		if err := newClient().Register(username, secret); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Printf("✓ Registered %s\n", username)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login and store the session token",
	Long: `Authenticate against the ledger and store the issued session token
in the config file for use by the card commands. The token is only
valid for the server-configured TTL.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		username, secret, err := promptCredentials(cmd)
		if err != nil {
			return err
		}

		token, err := newClient().Login(username, secret)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		if err := saveToken(token); err != nil {
			return fmt.Errorf("failed to save session token: %w", err)
		}

		fmt.Printf("✓ Logged in as %s\n", username)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the stored session is still active",
	RunE: func(_ *cobra.Command, _ []string) error {
		active, err := newClient().SessionActive()
		if err != nil {
			return err
		}

		if active {
			fmt.Println("✓ Session is active")
		} else {
			fmt.Println("✗ Session is expired or unknown, login again")
		}
		return nil
	},
}
