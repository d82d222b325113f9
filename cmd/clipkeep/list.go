package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newListCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the clipboard history",
		Long: `Prints every stored history entry with its slot number. Slots are the
identifiers accepted by "clipkeep restore".`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runList(v) },
	}

	f := cmd.Flags()
	f.Bool("json", false, "output raw JSON")
	addConfigFlag(cmd)

	return cmd
}

func runList(v *viper.Viper) error {
	items, err := fetchHistory()
	if err != nil {
		return err
	}

	if v.GetBool("json") {
		enc, _ := json.MarshalIndent(items, "", "  ")
		fmt.Println(string(enc))
		return nil
	}

	if len(items) == 0 {
		fmt.Println("History is empty.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "SLOT\tLABEL\n")
	_, _ = fmt.Fprintf(tw, "----\t-----\n")
	for _, it := range items {
		_, _ = fmt.Fprintf(tw, "%d\t%s\n", it.Slot, it.Label)
	}
	return tw.Flush()
}
