// Command coredb-shell is a local inspection tool for a coredb schema
// document: it loads a YAML schema file, opens every declared store as an
// in-process map, and lets an operator list entities, list stores, and
// run ad-hoc loads against them from a terminal instead of a generated
// host binding.
//
// Flag shape grounded on awsqed-config-formatter/main.go's
// "-input <file>, required, else usage+exit(1)" pattern, reworked onto
// github.com/spf13/cobra subcommands (schema, stores, load) instead of a
// single flat flag set, since coredb-shell has more than one verb.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dreamware/coredb"
	"github.com/dreamware/coredb/internal/exec"
	"github.com/dreamware/coredb/internal/query"
	"github.com/dreamware/coredb/internal/schema"
)

var schemaPath string

func main() {
	root := &cobra.Command{
		Use:   "coredb-shell",
		Short: "Inspect a coredb schema document and its registered stores",
	}
	root.PersistentFlags().StringVar(&schemaPath, "schema", "", "path to a schema document YAML file (required)")

	root.AddCommand(schemaCmd(), storesCmd(), loadCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openEngine parses --schema and loads it into a fresh Engine with no
// entity codecs registered. Codec-requiring operations (Save, Load of a
// row's decoded body) are out of reach for a schema-only inspection
// session; the schema/stores subcommands only need the metadata.
func openEngine() (*coredb.Engine, *schema.Document, error) {
	if schemaPath == "" {
		return nil, nil, fmt.Errorf("--schema is required")
	}
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read schema file: %w", err)
	}
	doc, err := schema.ParseDocument(data)
	if err != nil {
		return nil, nil, err
	}

	engine, err := coredb.New(coredb.Config{})
	if err != nil {
		return nil, nil, err
	}

	// An inspection session has no generated codecs; register an
	// inspection-only codec that refuses to decode but lets the
	// registry and store metadata load successfully.
	codecs := make(map[string]schema.Codec, len(doc.Entities))
	for _, e := range doc.Entities {
		codecs[e.Path] = noopCodec{}
	}
	if err := engine.LoadSchema(coredb.Config{}, doc, codecs); err != nil {
		return nil, nil, err
	}
	return engine, doc, nil
}

type noopCodec struct{}

func (noopCodec) Encode(schema.Entity) ([]byte, error) {
	return nil, fmt.Errorf("coredb-shell: no codec registered for inspection session")
}

func (noopCodec) Decode(string, []byte) (schema.Entity, error) {
	return nil, fmt.Errorf("coredb-shell: no codec registered for inspection session")
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "List every registered entity and its store binding",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := openEngine()
			if err != nil {
				return err
			}
			for _, def := range engine.Schema().EntityDefs() {
				fmt.Printf("%s\tstore=%s\tentity_id=%d\tpk=%s\tindexes=%d\n",
					def.Path, def.StorePath, def.EntityID, def.PKField, len(def.Indexes))
			}
			return nil
		},
	}
}

func storesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stores",
		Short: "List every declared store and its kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := openEngine()
			if err != nil {
				return err
			}
			for _, s := range engine.Schema().Stores() {
				fmt.Printf("%s\t%s\tmemory_id=%d\n", s.Path, s.Kind, s.MemoryID)
			}
			return nil
		},
	}
}

var loadLimit uint32

func loadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <entity-path>",
		Short: "Run a full-scan load against an entity and print row keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := openEngine()
			if err != nil {
				return err
			}

			q := exec.Query{Selector: query.All(), Format: exec.FormatKeys}
			if loadLimit > 0 {
				q.Limit = &loadLimit
			}

			result, err := engine.Load(args[0], q)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			for _, k := range result.Keys {
				if err := enc.Encode(k.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Uint32Var(&loadLimit, "limit", 0, "cap the number of keys printed (0 = unbounded)")
	return cmd
}
