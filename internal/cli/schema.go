package cli

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/databeans/internal/schema"
	"github.com/mesh-intelligence/databeans/pkg/bean"
)

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Load YAML class schemas and evaluate property paths",
	}
	cmd.AddCommand(newSchemaShowCmd())
	cmd.AddCommand(newSchemaCheckCmd())
	cmd.AddCommand(newSchemaEvalCmd())
	return cmd
}

// propertyView is the JSON form of a property descriptor.
type propertyView struct {
	Name    string    `json:"name"`
	Kind    bean.Kind `json:"kind"`
	Type    string    `json:"type"`
	Content string    `json:"content,omitempty"`
}

func newSchemaShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print the properties of a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}
			views := make([]propertyView, 0, len(c.Properties()))
			for _, p := range c.Properties() {
				v := propertyView{Name: p.Name(), Kind: p.Kind(), Type: p.Type().Name()}
				if ct, ok := p.ContentType(); ok && !p.IsSimple() {
					v.Content = ct.Name()
				}
				views = append(views, v)
			}

			w := cmd.OutOrStdout()
			if flags.jsonMode {
				return writeJSON(w, map[string]any{"name": c.Name(), "properties": views})
			}
			fmt.Fprintf(w, "class %s\n", c.Name())
			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rows = append(rows, []string{v.Name, v.Kind.String(), v.Type, v.Content})
			}
			return writeTable(w, []string{"NAME", "KIND", "TYPE", "CONTENT"}, rows)
		},
	}
}

func newSchemaCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a class schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}
			n := len(c.Properties())
			if flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"name": c.Name(), "properties": n, "valid": true})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d properties OK\n", c.Name(), n)
			return nil
		},
	}
}

func newSchemaEvalCmd() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "eval <file> <path>",
		Short: "Evaluate a property path against a new instance of a class",
		Long: "Create an instance of the class, assign each --set name=json value to\n" +
			"the named property, then print the value at <path> as JSON.\n" +
			"Paths: name, name[index], name(key), joined by dots.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}
			b, err := c.NewInstance()
			if err != nil {
				return err
			}
			for _, kv := range sets {
				if err := assignJSON(b, kv); err != nil {
					return err
				}
			}
			v, err := bean.Eval(b, args[1])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "assign a property before evaluating (name=json, repeatable)")
	return cmd
}

// assignJSON decodes the JSON value of a name=json pair into the declared Go
// type of the property and sets it. Opaque types take the generic decoding.
func assignJSON(b bean.Bean, kv string) error {
	name, raw, ok := strings.Cut(kv, "=")
	if !ok {
		return errors.Newf("--set %q: expected name=json", kv)
	}
	typ, err := b.Type(name)
	if err != nil {
		return err
	}

	var v any
	if gt := typ.GoType(); gt != nil {
		ptr := reflect.New(gt)
		if err := json.Unmarshal([]byte(raw), ptr.Interface()); err != nil {
			return errors.Wrapf(bean.ErrTypeMismatch, "%s expects %s: %v", name, gt, err)
		}
		v = ptr.Elem().Interface()
	} else if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return errors.Wrapf(bean.ErrTypeMismatch, "%s: %v", name, err)
	}
	return b.Set(name, v)
}
