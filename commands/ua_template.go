package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/ga-sheets/ga-app-sheets/definitions"
	"github.com/ga-sheets/ga-app-sheets/log"
)

var UATemplateCmd = UATemplate{
	definitionsCommand: newDefinitionsCommand(),
}

// UATemplate copies the custom dimensions or custom metrics of the template property into
// the template table.
type UATemplate struct {
	definitionsCommand
}

func (cmd *UATemplate) Name() string {
	return "ua-template"
}

func (cmd *UATemplate) Description() string {
	return "Copies the custom definitions of the template property to the template table"
}

func (cmd *UATemplate) Usage() string {
	return "--credentials <file> --url <url> --definitions <dimensions|metrics>"
}

func (cmd *UATemplate) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] ua-template [options] --url <URL> --definitions <dimensions|metrics>\n", APP)
	fmt.Println()
	fmt.Println("  Retrieves the custom dimensions (or metrics) of the property in the 'template property'")
	fmt.Println("  row and writes them to the template table as a starting point for editing.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	example("ua-template", `--credentials "credentials.json"`, exampleURL, `--definitions dimensions`)
	fmt.Println()
}

func (cmd *UATemplate) FlagSet() *flag.FlagSet {
	return cmd.flagset("ua-template")
}

func (cmd *UATemplate) Execute(args ...any) error {
	options := args[0].(*Options)
	ctx := context.Background()

	session, err := cmd.open(ctx, options)
	if err != nil {
		return err
	}

	N, err := definitions.WriteTemplate(ctx, session.store, session.ua, session.kind, session.ranges.TemplateProperty, session.ranges.Template)
	if err != nil {
		return fmt.Errorf("error retrieving template %v (%w)", session.kind, err)
	}

	log.Infof("Wrote %v %v to %v", N, session.kind, session.ranges.Template.A1())

	return nil
}
