package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/databeans/internal/document"
)

var errDocumentExists = errors.New("document already exists")

func newNewCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "new <doc>",
		Short: "Create an empty taggable document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil {
				return errors.Wrapf(errDocumentExists, "%s", path)
			}
			d, err := document.New(name)
			if err != nil {
				return sysError(err)
			}
			if err := document.Save(path, d); err != nil {
				return err
			}
			zap.L().Debug("document created", zap.String("path", path), zap.String("id", d.ID))

			if flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), d)
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "document name")
	return cmd
}
