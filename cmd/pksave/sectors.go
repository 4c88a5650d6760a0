package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pksave/internal/savefile"
)

var sectorsCmd = &cobra.Command{
	Use:   "sectors <save-file>",
	Short: "Dump the footer and validation state of every physical sector",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectors,
}

func runSectors(cmd *cobra.Command, args []string) error {
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

	fmt.Printf("Active slot: %d (%d valid sectors)\n\n", parser.ActiveSlot(), parser.ValidSectorCount())

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SECTOR\tID\tCHECKSUM\tSIGNATURE\tCOUNTER\tVALID")
	for i := 0; i < savefile.SectorCount; i++ {
		info := parser.SectorInfo(i)
		fmt.Fprintf(w, "%d\t%d\t0x%04X\t0x%08X\t%d\t%v\n",
			info.Index, info.ID, info.Checksum, info.Signature, info.Counter, info.Valid)
	}
	return w.Flush()
}
