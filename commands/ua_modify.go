package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ga-sheets/ga-app-sheets/definitions"
	"github.com/ga-sheets/ga-app-sheets/log"
	"github.com/ga-sheets/ga-app-sheets/ratelimit"
)

var UAModifyCmd = UAModify{
	definitionsCommand: newDefinitionsCommand(),
	delay:              ratelimit.DefaultDelay,
	dryrun:             false,
}

// UAModify creates and updates the custom dimensions or custom metrics of the selected
// destination properties from the template table.
type UAModify struct {
	definitionsCommand
	delay  time.Duration
	dryrun bool
}

func (cmd *UAModify) Name() string {
	return "ua-modify"
}

func (cmd *UAModify) Description() string {
	return "Creates/updates the custom definitions of the selected properties from the template"
}

func (cmd *UAModify) Usage() string {
	return "--credentials <file> --url <url> --definitions <dimensions|metrics> [--delay <duration>] [--dry-run]"
}

func (cmd *UAModify) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] ua-modify [options] --url <URL> --definitions <dimensions|metrics>\n", APP)
	fmt.Println()
	fmt.Println("  Applies the template table to every selected destination property. Template rows are")
	fmt.Println("  matched to the existing definitions by position: existing definitions are updated if")
	fmt.Println("  'overwrite' is set, missing definitions are created and slots that are not included")
	fmt.Println("  are filled with placeholders. Each change is recorded in the results worksheet.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	example("ua-modify", `--credentials "credentials.json"`, exampleURL, `--definitions dimensions`, `--delay 1s`)
	fmt.Println()
}

func (cmd *UAModify) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("ua-modify")

	flagset.DurationVar(&cmd.delay, "delay", cmd.delay, "Minimum interval between results written to the results worksheet")
	flagset.BoolVar(&cmd.dryrun, "dry-run", cmd.dryrun, "Logs the changes without modifying the properties or the results worksheet")

	return flagset
}

func (cmd *UAModify) Execute(args ...any) error {
	options := args[0].(*Options)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	session, err := cmd.open(ctx, options)
	if err != nil {
		return err
	}

	reconciler := definitions.NewReconciler(session.store, session.ua, ratelimit.NewLimiter(cmd.delay), cmd.dryrun)
	results, err := reconciler.Modify(ctx, session.kind, definitions.RangesFor(session.ranges))

	created := 0
	updated := 0
	for _, r := range results {
		switch r.Action {
		case definitions.Update:
			updated++
		default:
			created++
		}
	}

	if err != nil {
		return fmt.Errorf("error modifying %v after %v changes (%w)", session.kind, len(results), err)
	}

	if cmd.dryrun {
		log.Infof("Dry run: no %v were modified", session.kind)
	} else {
		log.Infof("Created %v %v, updated %v", created, session.kind, updated)
	}

	return nil
}
