package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.klb.dev/clipkeep/internal/message"
)

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard the entire clipboard history",
		Long: `Removes every stored entry. Slot numbers restart from 0 for entries
captured afterwards; previously printed slot numbers become invalid.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := roundTrip(&message.Message{Type: message.TypeClear}); err != nil {
				return err
			}
			fmt.Println("History cleared.")
			return nil
		},
	}
}
