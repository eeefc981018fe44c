package cli

import "github.com/spf13/cobra"

func newExportCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print every memo and plan as one JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := s.app.ExportService.Export()
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), snapshot)
		},
	}
}
