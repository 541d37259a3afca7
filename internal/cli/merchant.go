package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(merchantCmd)
	merchantCmd.AddCommand(merchantRegisterCmd)
	merchantCmd.AddCommand(merchantChargeCmd)

	merchantRegisterCmd.Flags().String("credential", "", "Private merchant credential")
	_ = merchantRegisterCmd.MarkFlagRequired("credential")

	merchantChargeCmd.Flags().String("merchant", "", "Merchant id")
	merchantChargeCmd.Flags().String("credential", "", "Private merchant credential")
	merchantChargeCmd.Flags().String("description", "", "Charge description")
	_ = merchantChargeCmd.MarkFlagRequired("merchant")
	_ = merchantChargeCmd.MarkFlagRequired("credential")
	_ = merchantChargeCmd.MarkFlagRequired("description")
}

var merchantCmd = &cobra.Command{
	Use:   "merchant",
	Short: "Merchant commands",
	Long:  `Register merchants and issue charges against claimed cards.`,
}

var merchantRegisterCmd = &cobra.Command{
	Use:   "register <merchant-id>",
	Short: "Register a merchant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		credential, _ := cmd.Flags().GetString("credential")

		if err := newClient().RegisterMerchant(args[0], credential); err != nil {
			return fmt.Errorf("merchant registration failed: %w", err)
		}

		fmt.Printf("✓ Registered merchant %s\n", args[0])
		return nil
	},
}

var merchantChargeCmd = &cobra.Command{
	Use:   "charge <card-number> <amount>",
	Short: "Charge a claimed card on behalf of a merchant",
	Long: `Debit a gift card as a merchant. The charge needs no user session:
authorization is by merchant credential, and the card only needs to
have been claimed by its owner at some point.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		merchantID, _ := cmd.Flags().GetString("merchant")
		credential, _ := cmd.Flags().GetString("credential")
		description, _ := cmd.Flags().GetString("description")

		amount, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[1])
		}

		charge, err := newClient().Charge(merchantID, credential, args[0], amount, description)
		if err != nil {
			return fmt.Errorf("charge failed: %w", err)
		}

		fmt.Printf("✓ Charged %d to card %s (%s)\n", charge.Amount, charge.CardNumber, charge.Description)
		return nil
	},
}
