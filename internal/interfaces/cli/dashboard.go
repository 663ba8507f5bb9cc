package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/pkg/format"
)

const topAlerts = 10 // alertas mostradas en el dashboard

func newDashboardCommand(deps Deps) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Muestra métricas, alertas y productos recientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireSession(deps)
			if err != nil {
				return err
			}

			render := func() error {
				summary, err := deps.DashboardUC.Summary(session.ID)
				if err != nil {
					return err
				}
				renderSummary(cmd.OutOrStdout(), session.Name, summary)
				return nil
			}

			if err := render(); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			// Refresco periódico: cada pasada es una relectura idempotente.
			// Se detiene con SIGINT/SIGTERM.
			ticker := time.NewTicker(time.Duration(deps.RefreshSeconds) * time.Second)
			defer ticker.Stop()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			for {
				select {
				case <-ticker.C:
					if err := render(); err != nil {
						deps.Log.Error().Err(err).Msg("refrescar dashboard")
					}
				case <-quit:
					deps.Log.Info().Msg("dashboard detenido")
					return nil
				}
			}
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "refresca el dashboard periódicamente")
	return cmd
}

func renderSummary(out io.Writer, userName string, s *dto.DashboardSummary) {
	fmt.Fprintf(out, "\n%s — inventario de %s\n\n", s.DateLabel, userName)

	fmt.Fprintf(out, "Productos: %d   Valor total: %s   Stock bajo: %d   Por vencer: %d\n\n",
		s.Stats.TotalProducts, format.Currency(s.Stats.TotalValue), s.Stats.LowStock, s.Stats.Expiring)

	if len(s.Alerts) == 0 {
		fmt.Fprintln(out, "Sin alertas por el momento")
	} else {
		alerts := s.Alerts
		if len(alerts) > topAlerts {
			alerts = alerts[:topAlerts]
		}
		fmt.Fprintf(out, "Alertas (%d):\n", len(s.Alerts))
		for _, a := range alerts {
			marker := "!"
			if a.Type == dto.AlertDanger {
				marker = "!!"
			}
			fmt.Fprintf(out, "  [%-2s] %s — %s\n", marker, a.Title, a.Description)
		}
	}

	if len(s.Categories) > 0 {
		fmt.Fprintln(out, "\nPor categoría:")
		for _, c := range s.Categories {
			fmt.Fprintf(out, "  %-20s %d\n", c.Category, c.Count)
		}
	}

	if len(s.StockRank) > 0 {
		fmt.Fprintln(out, "\nMenor stock (cantidad / mínimo):")
		for _, item := range s.StockRank {
			fmt.Fprintf(out, "  %-30s %d / %d\n", item.Name, item.Quantity, item.MinStock)
		}
	}

	if len(s.Recent) > 0 {
		fmt.Fprintln(out, "\nRecientes:")
		for _, row := range s.Recent {
			fmt.Fprintf(out, "  %-30s %-15s %s\n", row.Product.Name, row.Product.Category, row.State)
		}
	}
}
