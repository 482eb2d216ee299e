package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/modulify/pkg/documents"
	"github.com/arthur-debert/modulify/pkg/types"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type inspection struct {
	GUID     string       `json:"guid"`
	Reader   string       `json:"reader"`
	Type     string       `json:"type"`
	Checksum string       `json:"checksum"`
	Object   types.Object `json:"object,omitempty"`
}

func newInspectCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: MsgInspectShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			p, ctx, err := a.provider(cmd.Context())
			if err != nil {
				return err
			}

			read, err := readDocument(ctx, args[0])
			if err != nil {
				return err
			}

			result := inspection{
				GUID:     read.doc.GUID().String(),
				Reader:   read.reader.Name(),
				Type:     fmt.Sprintf("%T", read.doc),
				Checksum: read.checksum,
			}
			if obj, ok := documents.TrySerializeDocument(p, read.doc); ok {
				result.Object = obj
			}
			return a.renderInspection(result)
		},
	}
}

func (a *app) renderInspection(r inspection) error {
	if a.format == FormatJSON {
		return a.writeJSON(r)
	}

	s := a.styles
	lines := []string{
		s.field(MsgInspectGUID, s.accent.Render(r.GUID)),
		s.field(MsgInspectReader, r.Reader),
		s.field(MsgInspectType, r.Type),
		s.field(MsgInspectChecksum, s.muted.Render(r.Checksum)),
	}

	if r.Object == nil {
		lines = append(lines, s.muted.Render(MsgInspectNoText))
	} else {
		body, err := yaml.Marshal(map[string]any(r.Object))
		if err != nil {
			return err
		}
		lines = append(lines, s.label.Render(MsgInspectObject), indent(string(body), "  "))
	}

	_, err := fmt.Fprintln(a.out, strings.Join(lines, "\n"))
	return err
}

func indent(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
