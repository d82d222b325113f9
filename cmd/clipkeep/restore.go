package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <slot>",
		Short: "Restore a history entry to the clipboard",
		Long: `Makes the history entry identified by slot the active clipboard content.
Slot numbers come from "clipkeep list" or "clipkeep pick". A slot that did
not survive a clear is reported as not found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			slot, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid slot %q", args[0])
			}
			if err := restoreSlot(slot); err != nil {
				return err
			}
			fmt.Printf("Restored slot %d to the clipboard.\n", slot)
			return nil
		},
	}
}
