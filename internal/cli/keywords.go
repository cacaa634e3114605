package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/databeans/internal/document"
	"github.com/mesh-intelligence/databeans/pkg/tag"
)

func newKeywordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "List and edit the KEYWORD tags of a document",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list <doc>",
		Short: "List keywords",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := document.Load(args[0])
			if err != nil {
				return err
			}
			return printNames(cmd, tag.Keywords(d.Tags()))
		},
	})
	cmd.AddCommand(newKeywordsMutateCmd("add <doc> <keyword>...", "Add keywords", tag.AddKeywords))
	cmd.AddCommand(newKeywordsMutateCmd("set <doc> <keyword>...", "Replace all keywords", tag.SetKeywords))
	cmd.AddCommand(newKeywordsMutateCmd("remove <doc> <keyword>...", "Remove keywords", tag.RemoveKeywords))
	return cmd
}

func newKeywordsMutateCmd(use, short string, op func([]tag.Tag, []string) ([]tag.Tag, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := document.Update(args[0], func(d *document.Document) error {
				return tag.Apply(d, func(tags []tag.Tag) ([]tag.Tag, error) {
					return op(tags, args[1:])
				})
			})
			if err != nil {
				return err
			}
			return printNames(cmd, tag.Keywords(d.Tags()))
		},
	}
}
