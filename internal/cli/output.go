package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/databeans/pkg/tag"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal JSON")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	data := pterm.TableData{header}
	data = append(data, rows...)
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// printTags writes a tag list as a table, or as JSON in --json mode where
// an absent list prints as null.
func printTags(cmd *cobra.Command, tags []tag.Tag) error {
	w := cmd.OutOrStdout()
	if flags.jsonMode {
		return writeJSON(w, tags)
	}
	rows := make([][]string, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, []string{orDash(t.ID), orDash(t.ParentID), t.Scope, t.Name})
	}
	return writeTable(w, []string{"ID", "PARENT", "SCOPE", "NAME"}, rows)
}

// printNames writes one name per line, or a JSON array in --json mode.
func printNames(cmd *cobra.Command, names []string) error {
	w := cmd.OutOrStdout()
	if flags.jsonMode {
		return writeJSON(w, names)
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
