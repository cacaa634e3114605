package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/databeans/internal/document"
	"github.com/mesh-intelligence/databeans/pkg/tag"
)

func newLabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Read or set the color label of a document",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get <doc>",
		Short: "Print the color label, NONE if unset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := document.Load(args[0])
			if err != nil {
				return err
			}
			return printLabel(cmd, tag.Label(d.Tags()))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <doc> <label>",
		Short: "Replace the color label",
		Long:  "Replace the color label. Labels: NONE, RED, ORANGE, YELLOW, GREEN, BLUE, PURPLE, BLACK.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, err := tag.ParseColorLabel(strings.ToUpper(args[1]))
			if err != nil {
				return err
			}
			d, err := document.Update(args[0], func(d *document.Document) error {
				return tag.Apply(d, func(tags []tag.Tag) ([]tag.Tag, error) {
					return tag.SetLabel(tags, label)
				})
			})
			if err != nil {
				return err
			}
			return printLabel(cmd, tag.Label(d.Tags()))
		},
	})
	return cmd
}

func printLabel(cmd *cobra.Command, label tag.ColorLabel) error {
	if flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), map[string]string{"label": label.String()})
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), label)
	return err
}
