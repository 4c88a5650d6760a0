package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <save-file>",
	Short: "Print the trainer summary and party of a save image",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	parser, err := newParser()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	if err := parser.Load(data); err != nil {
		return err
	}

	summary, err := parser.Parse()
	if err != nil {
		return err
	}

	fmt.Printf("Player:        %s\n", summary.PlayerName)
	fmt.Printf("Play time:     %s\n", summary.PlayTime)
	fmt.Printf("Active slot:   %d\n", summary.ActiveSlot)
	fmt.Printf("Valid sectors: %d\n", summary.ValidSectors)

	party, err := parser.Party()
	if err != nil {
		return err
	}
	if len(party) == 0 {
		fmt.Println("\nParty is empty.")
		return nil
	}

	fmt.Printf("\nParty (%d):\n", len(party))
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tNICKNAME\tLV\tHP\tNATURE\tSHINY\tOT")
	for i, mon := range party {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d/%d\t%s\t%v\t%s\n",
			i+1, mon.Nickname(), mon.Level(), mon.CurrentHP(), mon.MaxHP(),
			mon.Nature(), mon.Shiny(), mon.OTName())
	}
	return w.Flush()
}
