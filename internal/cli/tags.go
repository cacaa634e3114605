package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/databeans/internal/document"
	"github.com/mesh-intelligence/databeans/pkg/tag"
)

var errUnknownParent = errors.New("unknown parent tag")

func newTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List and edit the scoped tags of a document",
	}
	cmd.AddCommand(newTagsListCmd())
	cmd.AddCommand(newTagsMutateCmd("add <doc> <name>...", "Add tags to a scope", tag.AddManyInScope))
	cmd.AddCommand(newTagsMutateCmd("set <doc> <name>...", "Replace the tags of a scope", tag.UpdateManyInScope))
	cmd.AddCommand(newTagsMutateCmd("remove <doc> <name>...", "Remove tags from a scope by name", tag.RemoveManyInScope))
	cmd.AddCommand(newTagsClearCmd())
	cmd.AddCommand(newTagsNewCmd())
	return cmd
}

func scopeFlag(cmd *cobra.Command, scope *string) {
	cmd.Flags().StringVarP(scope, "scope", "s", "", "tag scope (default: default_scope from config)")
}

func newTagsListCmd() *cobra.Command {
	var scope string
	cmd := &cobra.Command{
		Use:   "list <doc>",
		Short: "List the tags of a document, optionally of one scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := document.Load(args[0])
			if err != nil {
				return err
			}
			tags := d.Tags()
			if s := scopeOrDefault(scope); s != "" {
				tags = tag.InScope(s, tags)
			}
			return printTags(cmd, tags)
		},
	}
	scopeFlag(cmd, &scope)
	return cmd
}

func newTagsMutateCmd(use, short string, op func(string, []tag.Tag, []string) ([]tag.Tag, error)) *cobra.Command {
	var scope string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := scopeOrDefault(scope)
			return mutate(cmd, args[0], func(tags []tag.Tag) ([]tag.Tag, error) {
				return op(s, tags, args[1:])
			})
		},
	}
	scopeFlag(cmd, &scope)
	return cmd
}

func newTagsClearCmd() *cobra.Command {
	var scope string
	cmd := &cobra.Command{
		Use:   "clear <doc>",
		Short: "Remove every tag of a scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := scopeOrDefault(scope)
			return mutate(cmd, args[0], func(tags []tag.Tag) ([]tag.Tag, error) {
				return tag.RemoveAllInScope(s, tags)
			})
		},
	}
	scopeFlag(cmd, &scope)
	return cmd
}

func newTagsNewCmd() *cobra.Command {
	var scope, name, parent, description string
	cmd := &cobra.Command{
		Use:   "new <doc>",
		Short: "Add a tag with a generated ID, optionally under a parent tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := scopeOrDefault(scope)
			return mutate(cmd, args[0], func(tags []tag.Tag) ([]tag.Tag, error) {
				t, err := tag.New(s, name)
				if err != nil {
					return tags, err
				}
				id, err := uuid.NewV7()
				if err != nil {
					return tags, sysError(errors.Wrap(err, "generating tag id"))
				}
				idStr := id.String()
				t.ID = &idStr
				if parent != "" {
					if !hasTagID(tags, parent) {
						return tags, errors.Wrapf(errUnknownParent, "%s", parent)
					}
					t.ParentID = &parent
				}
				if description != "" {
					t.Description = &description
				}
				return tag.Append(tags, t)
			})
		},
	}
	scopeFlag(cmd, &scope)
	cmd.Flags().StringVar(&name, "name", tag.DefaultName, "tag name")
	cmd.Flags().StringVar(&parent, "parent", "", "ID of the parent tag")
	cmd.Flags().StringVar(&description, "description", "", "tag description")
	return cmd
}

func hasTagID(tags []tag.Tag, id string) bool {
	for _, t := range tags {
		if t.ID != nil && *t.ID == id {
			return true
		}
	}
	return false
}

// mutate applies op to the tags of the document at path, saves it, and
// prints the resulting list.
func mutate(cmd *cobra.Command, path string, op func([]tag.Tag) ([]tag.Tag, error)) error {
	d, err := document.Update(path, func(d *document.Document) error {
		return tag.Apply(d, op)
	})
	if err != nil {
		return err
	}
	zap.L().Debug("document updated",
		zap.String("path", path),
		zap.String("command", cmd.CommandPath()),
		zap.Int("tags", len(d.Tags())))
	return printTags(cmd, d.Tags())
}
