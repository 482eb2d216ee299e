package cli

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/modulify/pkg/documents"
	"github.com/arthur-debert/modulify/pkg/types"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type moduleRow struct {
	Name  string `json:"name"`
	Alias string `json:"alias"`
	Kind  string `json:"kind"`
}

func newModulesCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: MsgModulesShort,
		Long:  MsgModulesLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			p, _, err := a.provider(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([]moduleRow, 0)
			for _, m := range documents.Modules(p) {
				rows = append(rows, moduleRow{Name: m.Name(), Alias: m.Alias(), Kind: kindOf(m)})
			}
			return a.renderModules(rows)
		},
	}
}

func kindOf(m types.DocumentModule) string {
	switch m.(type) {
	case *documents.ForcedBinary:
		return MsgKindForced
	case types.TextModule:
		return MsgKindText
	default:
		return MsgKindBinary
	}
}

func (a *app) renderModules(rows []moduleRow) error {
	if a.format == FormatJSON {
		return a.writeJSON(rows)
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(a.out, a.styles.muted.Render(MsgNoModules))
		return err
	}

	data := pterm.TableData{{MsgModulesHeaderIndex, MsgModulesHeaderName, MsgModulesHeaderAlias, MsgModulesHeaderKind}}
	for i, r := range rows {
		data = append(data, []string{strconv.Itoa(i + 1), r.Name, r.Alias, r.Kind})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(a.out).Render()
}
