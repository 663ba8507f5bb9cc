package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCommand(deps Deps) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "exportar",
		Short: "Exporta el inventario como texto separado por punto y coma",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireSession(deps)
			if err != nil {
				return err
			}

			if output == "" {
				return deps.ExportUC.WriteCSV(session.ID, cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("crear archivo de exportación: %w", err)
			}
			defer f.Close()

			if err := deps.ExportUC.WriteCSV(session.ID, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inventario exportado a %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "salida", "", "archivo de salida (vacío = stdout)")
	return cmd
}
