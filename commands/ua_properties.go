package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/ga-sheets/ga-app-sheets/definitions"
	"github.com/ga-sheets/ga-app-sheets/log"
)

var UAPropertiesCmd = UAProperties{
	definitionsCommand: newDefinitionsCommand(),
}

// UAProperties lists every UA property visible to the user into the destination
// properties table of the custom dimensions or custom metrics worksheet.
type UAProperties struct {
	definitionsCommand
}

func (cmd *UAProperties) Name() string {
	return "ua-properties"
}

func (cmd *UAProperties) Description() string {
	return "Lists the Universal Analytics properties into the destination properties table"
}

func (cmd *UAProperties) Usage() string {
	return "--credentials <file> --url <url> --definitions <dimensions|metrics>"
}

func (cmd *UAProperties) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] ua-properties [options] --url <URL> --definitions <dimensions|metrics>\n", APP)
	fmt.Println()
	fmt.Println("  Replaces the destination properties table with all the Universal Analytics properties")
	fmt.Println("  accessible to the user. All properties are initially unselected.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	example("ua-properties", `--credentials "credentials.json"`, exampleURL, `--definitions metrics`)
	fmt.Println()
}

func (cmd *UAProperties) FlagSet() *flag.FlagSet {
	return cmd.flagset("ua-properties")
}

func (cmd *UAProperties) Execute(args ...any) error {
	options := args[0].(*Options)
	ctx := context.Background()

	session, err := cmd.open(ctx, options)
	if err != nil {
		return err
	}

	N, err := definitions.WriteDestinationProperties(ctx, session.store, session.ua, session.ranges.DestinationProperties)
	if err != nil {
		return fmt.Errorf("error listing UA properties (%w)", err)
	}

	log.Infof("Wrote %v UA properties to %v", N, session.ranges.DestinationProperties.A1())

	return nil
}
