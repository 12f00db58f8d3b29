package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ga-sheets/ga-app-sheets/layout"
	"github.com/ga-sheets/ga-app-sheets/log"
)

var GetCmd = Get{
	command: newCommand(),
	area:    "",
	file:    time.Now().Format("2006-01-02T150405.tsv"),
}

// Get downloads a worksheet range to a TSV file.
type Get struct {
	command
	area string
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves a range from a Google Sheets worksheet and stores it to a local TSV file"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --url <url> --range <range> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a Google Sheets worksheet range to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	example("get", `--credentials "credentials.json"`, exampleURL, `--range "UA Custom Dimensions - Modify!A7:E"`, `--file "dimensions.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'GA4 Properties!A2:E'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)
	ctx := context.Background()

	cmd.debug = options.Debug

	// ... check parameters
	spreadsheet, err := cmd.validate()
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.area) == "" {
		return fmt.Errorf("--range is a required option")
	}

	area, err := layout.Parse(cmd.area)
	if err != nil {
		return err
	}

	auth, err := cmd.client(SCOPES...)
	if err != nil {
		return err
	}

	s, err := cmd.spreadsheet(ctx, spreadsheet, auth)
	if err != nil {
		return err
	}

	rows, err := s.Read(ctx, area)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return fmt.Errorf("no data in spreadsheet/range")
	}

	tmp, err := os.CreateTemp(os.TempDir(), APP)
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := sheetToTSV(tmp, rows); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	log.Infof("Retrieved %v rows from %v to file %s", len(rows), area.A1(), cmd.file)

	return nil
}
