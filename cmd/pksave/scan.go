package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"pksave/internal/profile"
	"pksave/internal/savefile"
)

var scanWorkers int

var scanCmd = &cobra.Command{
	Use:   "scan <directory>",
	Short: "Parse every .sav file under a directory and print one line each",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 4, "number of files parsed concurrently")
}

func runScan(cmd *cobra.Command, args []string) error {
	prof, err := loadProfile()
	if err != nil {
		return err
	}

	var files []string
	err = filepath.WalkDir(args[0], func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".sav") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("no .sav files found")
		return nil
	}

	// Parsers share nothing, so one per file is enough for concurrency.
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(scanWorkers)

	for _, path := range files {
		path := path
		g.Go(func() error {
			line := scanOne(path, prof)
			mu.Lock()
			fmt.Println(line)
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

func scanOne(path string, prof *profile.Profile) string {
	parser := savefile.NewParser(prof, logger)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("%s: %v", path, err)
	}
	if err := parser.Load(data); err != nil {
		return fmt.Sprintf("%s: %v", path, err)
	}
	summary, err := parser.Parse()
	if err != nil {
		return fmt.Sprintf("%s: %v", path, err)
	}
	party, err := parser.Party()
	if err != nil {
		return fmt.Sprintf("%s: %v", path, err)
	}
	return fmt.Sprintf("%s: %s, %s played, slot %d, party of %d",
		path, summary.PlayerName, summary.PlayTime, summary.ActiveSlot, len(party))
}
