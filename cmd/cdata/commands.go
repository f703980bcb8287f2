package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/decomp-tools/cdata"
	"github.com/decomp-tools/cdata/config"
	"github.com/decomp-tools/cdata/tables"
)

var tablesCommand = &cli.Command{
	Name:  "tables",
	Usage: "list the known tables",
	Action: func(c *cli.Context) error {
		for _, name := range tables.Names() {
			t, _ := tables.Lookup(name)
			fmt.Fprintf(c.App.Writer, "%-20s %d output(s)\n", name, t.Outputs)
		}
		return nil
	},
}

var buildCommand = &cli.Command{
	Name:      "build",
	Usage:     "format a JSON table into C source",
	ArgsUsage: "<table> <in.json> <out.h> [<out2.h>]",
	Action: func(c *cli.Context) error {
		if c.NArg() < 3 {
			return cli.Exit("build needs a table, a JSON input and at least one output", 2)
		}
		args := c.Args().Slice()
		t, err := tables.Lookup(args[0])
		if err != nil {
			return err
		}
		return build(t, args[1], args[2:])
	},
}

var extractCommand = &cli.Command{
	Name:      "extract",
	Usage:     "parse C source into a JSON table",
	ArgsUsage: "<table> <in.h> <out.json>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 3 {
			return cli.Exit("extract needs a table, a C input and a JSON output", 2)
		}
		t, err := tables.Lookup(c.Args().Get(0))
		if err != nil {
			return err
		}
		return extract(t, c.Args().Get(1), c.Args().Get(2))
	},
}

const allDescription = `JSON documents are read with de-namespaced, lower-case keys and
values ("pound", not "MOVE_POUND"). Documents written by older tools carry
the namespace and must be re-extracted from the C sources first:

   cdata extract battle_moves battle_moves.h battle_moves.json`

var allCommand = &cli.Command{
	Name:        "all",
	Usage:       "build every table of a manifest",
	Description: allDescription,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "manifest",
			Aliases: []string{"m"},
			Usage:   "YAML build manifest, the standard build when unset",
			EnvVars: []string{"CDATA_MANIFEST"},
		},
		&cli.StringFlag{
			Name:  "base-dir",
			Usage: "directory manifest paths are relative to",
		},
	},
	Action: func(c *cli.Context) error {
		m := config.Default()
		if path := c.String("manifest"); path != "" {
			var err error
			if m, err = config.Load(path); err != nil {
				return err
			}
		}
		if dir := c.String("base-dir"); dir != "" {
			m.BaseDir = dir
		}

		for _, e := range m.Entries {
			t, err := tables.Lookup(e.Table)
			if err != nil {
				return err
			}
			outputs := make([]string, len(e.Outputs))
			for i, out := range e.Outputs {
				outputs[i] = m.Resolve(out)
			}
			if err := build(t, m.Resolve(e.JSON), outputs); err != nil {
				return err
			}
		}
		return nil
	},
}

func build(t *tables.Table, in string, outputs []string) error {
	if len(outputs) != t.Outputs {
		return fmt.Errorf("%s: expected %d outputs, got %d", t.Name, t.Outputs, len(outputs))
	}
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", in, err)
	}
	doc, err := cdata.DecodeRecord(data)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	texts, err := t.Build(doc)
	if err != nil {
		return err
	}
	for i, out := range outputs {
		if err := os.WriteFile(out, []byte(texts[i]), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		log.Info().Str("table", t.Name).Str("file", out).Msg("wrote C source")
	}
	return nil
}

func extract(t *tables.Table, in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", in, err)
	}
	doc, err := t.Extract(bytes.NewReader(data))
	if err != nil {
		return err
	}
	encoded, err := cdata.MarshalIndent(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	log.Info().Str("table", t.Name).Str("file", out).Int("records", doc.Len()).Msg("wrote JSON")
	return nil
}
