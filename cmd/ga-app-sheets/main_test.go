package main

import (
	"flag"
	"testing"
)

func TestCommandList(t *testing.T) {
	expected := []string{
		"authorise",
		"ua-properties",
		"ua-template",
		"ua-modify",
		"ga4-properties",
		"ga4-conversion-events",
		"get",
		"put",
		"version",
	}

	if len(cli) != len(expected) {
		t.Fatalf("Incorrect number of commands - expected:%v, got:%v", len(expected), len(cli))
	}

	for i, c := range cli {
		named, ok := c.(interface{ Name() string })
		if !ok {
			t.Fatalf("Command %v does not have a name", i)
		}

		if name := named.Name(); name != expected[i] {
			t.Errorf("Incorrect command %v\n   expected: %v\n   got:      %v", i, expected[i], name)
		}

		if fs, ok := c.(interface{ FlagSet() *flag.FlagSet }); !ok || fs.FlagSet() == nil {
			t.Errorf("Command %v has no flagset", expected[i])
		}
	}
}
