package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"go.klb.dev/clipkeep/internal/message"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set show-newlines <true|false>",
		Short: "Change a daemon preference",
		Long: `Updates a preference on the running daemon. The only preference is
show-newlines: whether history labels keep newlines or collapse them to
spaces. Stored history text is never affected, only rendering.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if args[0] != "show-newlines" {
				return fmt.Errorf("unknown preference %q", args[0])
			}
			val, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q (want true or false)", args[1])
			}
			if _, err := roundTrip(&message.Message{
				Type:         message.TypeSet,
				ShowNewlines: &val,
			}); err != nil {
				return err
			}
			fmt.Printf("show-newlines set to %v.\n", val)
			return nil
		},
	}
}
