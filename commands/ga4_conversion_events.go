package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/ga-sheets/ga-app-sheets/events"
	"github.com/ga-sheets/ga-app-sheets/log"
)

var GA4ConversionEventsCmd = GA4ConversionEvents{
	command: newCommand(),
}

// GA4ConversionEvents lists the conversion events of the selected GA4 properties into the
// conversion events worksheet.
type GA4ConversionEvents struct {
	command
}

func (cmd *GA4ConversionEvents) Name() string {
	return "ga4-conversion-events"
}

func (cmd *GA4ConversionEvents) Description() string {
	return "Lists the conversion events of the selected GA4 properties"
}

func (cmd *GA4ConversionEvents) Usage() string {
	return "--credentials <file> --url <url>"
}

func (cmd *GA4ConversionEvents) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] ga4-conversion-events [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Replaces the conversion events table with the conversion events of the properties")
	fmt.Println("  selected in the GA4 properties worksheet.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	example("ga4-conversion-events", `--credentials "credentials.json"`, exampleURL)
	fmt.Println()
}

func (cmd *GA4ConversionEvents) FlagSet() *flag.FlagSet {
	return cmd.flagset("ga4-conversion-events")
}

func (cmd *GA4ConversionEvents) Execute(args ...any) error {
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

	N, err := events.Write(ctx, s, ga4, l.GA4.Properties, l.GA4.ConversionEvents)
	if err != nil {
		return fmt.Errorf("error listing conversion events (%w)", err)
	}

	log.Infof("Wrote %v conversion events to %v", N, l.GA4.ConversionEvents.A1())

	return nil
}
