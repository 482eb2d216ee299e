package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/modulify/pkg/documents"
	"github.com/arthur-debert/modulify/pkg/errors"
	"github.com/arthur-debert/modulify/pkg/logging"
	"github.com/spf13/cobra"
)

func newConvertCmd(get func() *app) *cobra.Command {
	var (
		target string
		output string
	)

	cmd := &cobra.Command{
		Use:     "convert <file>",
		Short:   MsgConvertShort,
		Example: MsgConvertExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			logger := logging.GetLogger("cli.convert")
			done := logging.LogOperationStart(logger, "convert")
			defer done()

			p, ctx, err := a.provider(cmd.Context())
			if err != nil {
				return err
			}

			to := target
			if to == "" {
				to = a.cfg.Convert.DefaultTarget
			}
			if to == "" {
				return errors.New(errors.ErrInvalidInput, "no target codec given and convert.default_target is empty")
			}
			if !a.cfg.Codecs.IsEnabled(to) {
				return errors.Newf(errors.ErrInvalidInput, "codec %q is not enabled", to).
					WithDetail("enabled", a.cfg.Codecs.Enabled)
			}

			read, err := readDocument(ctx, args[0])
			if err != nil {
				return err
			}
			doc := read.doc
			logger.Info().Str("from", read.reader.Name()).Str("checksum", read.checksum).Str("to", to).Msg("Converting document")

			if output == "" {
				return documents.SerializeDocumentUsing(p, a.out, doc, to)
			}
			if err := writeFile(output, func(w io.Writer) error {
				return documents.SerializeDocumentUsing(p, w, doc, to)
			}); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), MsgConvertDone, to, output)
			return err
		},
	}

	cmd.Flags().StringVarP(&target, "to", "t", "", "Target codec name (default from convert.default_target)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}

// writeFile writes through fn into path, removing the file when fn fails.
func writeFile(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot create %s", path).WithDetail("path", path)
	}

	if err := fn(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", path).WithDetail("path", path)
	}
	return nil
}
