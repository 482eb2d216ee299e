package cli

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newConfigCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			if a.format == FormatJSON {
				return a.writeJSON(a.cfg)
			}
			enc := toml.NewEncoder(a.out)
			enc.SetIndentTables(true)
			return enc.Encode(a.cfg)
		},
	}
}
