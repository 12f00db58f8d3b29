package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ga-sheets/ga-app-sheets/layout"
	"github.com/ga-sheets/ga-app-sheets/log"
)

var PutCmd = Put{
	command: newCommand(),
	area:    "",
	file:    "",
	clear:   false,
}

// Put uploads a TSV file to a worksheet range.
type Put struct {
	command
	area  string
	file  string
	clear bool
}

func (cmd *Put) Name() string {
	return "put"
}

func (cmd *Put) Description() string {
	return "Uploads a TSV file to a Google Sheets worksheet"
}

func (cmd *Put) Usage() string {
	return "--credentials <file> --url <url> --range <range> --file <file>"
}

func (cmd *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] put [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Uploads a TSV file to a Google Sheets worksheet range e.g. to stage a template")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	example("put", `--credentials "credentials.json"`, exampleURL, `--range "UA Custom Dimensions - Modify!A7:E"`, `--file "dimensions.tsv"`, `--clear`)
	fmt.Println()
}

func (cmd *Put) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("put")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'UA Custom Dimensions - Modify!A7:E'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file")
	flagset.BoolVar(&cmd.clear, "clear", cmd.clear, "Clears the range before uploading the TSV file")

	return flagset
}

func (cmd *Put) Execute(args ...any) error {
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

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	area, err := layout.Parse(cmd.area)
	if err != nil {
		return err
	}

	f, err := os.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	rows, width, err := tsvToSheet(f)
	if err != nil {
		return fmt.Errorf("invalid TSV file (%v)", err)
	}

	if width > area.Columns {
		return fmt.Errorf("TSV file has %v columns - range %v only has %v", width, area.A1(), area.Columns)
	}

	if area.Rows > 0 && len(rows) > area.Rows {
		return fmt.Errorf("TSV file has %v rows - range %v only has %v", len(rows), area.A1(), area.Rows)
	}

	auth, err := cmd.client(SCOPES...)
	if err != nil {
		return err
	}

	s, err := cmd.spreadsheet(ctx, spreadsheet, auth)
	if err != nil {
		return err
	}

	title, err := s.Title(ctx)
	if err != nil {
		return err
	}

	if cmd.clear {
		if err := s.Clear(ctx, area); err != nil {
			return err
		}
	}

	if err := s.Write(ctx, area, rows); err != nil {
		return err
	}

	log.Infof("Uploaded TSV file %v to '%v' %v", cmd.file, title, area.A1())

	return nil
}
