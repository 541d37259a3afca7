package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/mgrunewald/giftvault/internal/domain"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatYML  = "yml"
)

// RenderCharges renders a card statement in the specified format.
func RenderCharges(charges []domain.Charge, format string) error {
	switch strings.ToLower(format) {
	case formatJSON:
		return renderJSON(charges)
	case formatYAML, formatYML:
		return renderYAML(charges)
	default:
		return renderChargesTable(charges)
	}
}

// RenderCardNumbers renders a claimed-card listing in the specified format.
func RenderCardNumbers(cards []string, format string) error {
	switch strings.ToLower(format) {
	case formatJSON:
		return renderJSON(cards)
	case formatYAML, formatYML:
		return renderYAML(cards)
	default:
		return renderCardNumbersTable(cards)
	}
}

func renderChargesTable(charges []domain.Charge) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Timestamp", "Merchant", "Amount", "Description"})

	for _, charge := range charges {
		description := charge.Description
		if len(description) > 50 {
			description = description[:47] + "..."
		}

		t.AppendRow(table.Row{
			charge.Timestamp.Format("2006-01-02 15:04:05"),
			charge.MerchantID,
			charge.Amount,
			description,
		})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func renderCardNumbersTable(cards []string) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Card Number"})

	for _, card := range cards {
		t.AppendRow(table.Row{card})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func renderJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func renderYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to render yaml: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
