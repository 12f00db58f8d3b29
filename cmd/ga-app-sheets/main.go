package main

import (
	"flag"
	"fmt"
	"os"

	uhppoted "github.com/uhppoted/uhppoted-lib/command"

	"github.com/ga-sheets/ga-app-sheets/commands"
	"github.com/ga-sheets/ga-app-sheets/log"
)

var cli = []uhppoted.Command{
	&commands.AuthoriseCmd,
	&commands.UAPropertiesCmd,
	&commands.UATemplateCmd,
	&commands.UAModifyCmd,
	&commands.GA4PropertiesCmd,
	&commands.GA4ConversionEventsCmd,
	&commands.GetCmd,
	&commands.PutCmd,
	&commands.VersionCmd,
}

var options = commands.Options{
	Config: "",
	Debug:  false,
}

var help = uhppoted.NewHelp(commands.APP, cli, nil)

func main() {
	flag.StringVar(&options.Config, "config", options.Config, "Worksheet layout TOML file. Defaults to <workdir>/ga-app-sheets.toml")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	log.SetDebug(options.Debug)

	cmd, err := uhppoted.Parse(cli, nil, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		log.Errorf("%v", err)
		if hint := commands.Hint(err); hint != "" {
			log.Infof("%v", hint)
		}

		os.Exit(1)
	}
}
