package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/ga-sheets/ga-app-sheets/events"
	"github.com/ga-sheets/ga-app-sheets/log"
)

var GA4PropertiesCmd = GA4Properties{
	command: newCommand(),
}

// GA4Properties lists every GA4 property visible to the user into the GA4 properties
// worksheet.
type GA4Properties struct {
	command
}

func (cmd *GA4Properties) Name() string {
	return "ga4-properties"
}

func (cmd *GA4Properties) Description() string {
	return "Lists the GA4 properties into the GA4 properties worksheet"
}

func (cmd *GA4Properties) Usage() string {
	return "--credentials <file> --url <url>"
}

func (cmd *GA4Properties) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] ga4-properties [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Replaces the GA4 properties table with all the GA4 properties accessible to the user.")
	fmt.Println("  All properties are initially unselected.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	example("ga4-properties", `--credentials "credentials.json"`, exampleURL)
	fmt.Println()
}

func (cmd *GA4Properties) FlagSet() *flag.FlagSet {
	return cmd.flagset("ga4-properties")
}

func (cmd *GA4Properties) Execute(args ...any) error {
	options := args[0].(*Options)
	ctx := context.Background()

	cmd.debug = options.Debug

	spreadsheet, err := cmd.validate()
	if err != nil {
		return err
	}

	l, err := cmd.loadLayout(options)
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

	ga4, err := cmd.ga4(ctx, auth)
	if err != nil {
		return err
	}

	N, err := events.WriteProperties(ctx, s, ga4, l.GA4.Properties)
	if err != nil {
		return fmt.Errorf("error listing GA4 properties (%w)", err)
	}

	log.Infof("Wrote %v GA4 properties to %v", N, l.GA4.Properties.A1())

	return nil
}
