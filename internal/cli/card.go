package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(cardCmd)
	cardCmd.AddCommand(claimCmd)
	cardCmd.AddCommand(listCardsCmd)
	cardCmd.AddCommand(balanceCmd)
	cardCmd.AddCommand(statementCmd)
	cardCmd.AddCommand(preloadCmd)
	cardCmd.AddCommand(topUpCmd)

	preloadCmd.Flags().String("owner", "", "Owning username")
	preloadCmd.Flags().Int("balance", 0, "Initial balance in minimum currency units")
	_ = preloadCmd.MarkFlagRequired("owner")
}

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Gift card commands",
	Long:  `Claim cards into the current session and query their balance and statement.`,
}

var claimCmd = &cobra.Command{
	Use:   "claim <card-number>",
	Short: "Claim a card you own into the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := newClient().Claim(args[0]); err != nil {
			return fmt.Errorf("claim failed: %w", err)
		}

		fmt.Printf("✓ Claimed card %s\n", args[0])
		return nil
	},
}

var listCardsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the cards claimed in the current session",
	RunE: func(_ *cobra.Command, _ []string) error {
		cards, err := newClient().MyCards()
		if err != nil {
			return err
		}

		return RenderCardNumbers(cards, viper.GetString("output"))
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance <card-number>",
	Short: "Show a claimed card's balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		balance, err := newClient().Balance(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Card %s balance: %d\n", args[0], balance)
		return nil
	},
}

var statementCmd = &cobra.Command{
	Use:   "statement <card-number>",
	Short: "Show a claimed card's charge log",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		charges, err := newClient().Statement(args[0])
		if err != nil {
			return err
		}

		return RenderCharges(charges, viper.GetString("output"))
	},
}

var preloadCmd = &cobra.Command{
	Use:   "preload <card-number>",
	Short: "Seed a new card (administrative)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, _ := cmd.Flags().GetString("owner")
		balance, _ := cmd.Flags().GetInt("balance")

		if err := newClient().Preload(owner, args[0], balance); err != nil {
			return fmt.Errorf("preload failed: %w", err)
		}

		fmt.Printf("✓ Preloaded card %s for %s with balance %d\n", args[0], owner, balance)
		return nil
	},
}

var topUpCmd = &cobra.Command{
	Use:   "topup <card-number> <amount>",
	Short: "Add funds to a card (administrative)",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[1])
		}

		if err := newClient().TopUp(args[0], amount); err != nil {
			return fmt.Errorf("top-up failed: %w", err)
		}

		fmt.Printf("✓ Topped up card %s by %d\n", args[0], amount)
		return nil
	},
}
