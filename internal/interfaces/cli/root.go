// Package cli es la capa de presentación: comandos cobra que traducen flags
// a llamadas de casos de uso y pintan los resultados. No contiene reglas de
// negocio.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-local/internal/application/analytics"
	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// Deps dependencias inyectadas a los comandos.
type Deps struct {
	AuthUC         *auth.UseCase
	ProductUC      *usecase.ProductUseCase
	ExportUC       *usecase.ExportUseCase
	DashboardUC    *analytics.DashboardUseCase
	RefreshSeconds int
	Log            *logger.Logger
}

// NewRootCommand arma el árbol de comandos de la aplicación.
func NewRootCommand(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "inventario",
		Short:         "Control de inventario local: productos, alertas y dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRegisterCommand(deps),
		newLoginCommand(deps),
		newLogoutCommand(deps),
		newProductsCommand(deps),
		newDashboardCommand(deps),
		newExportCommand(deps),
	)
	return root
}

// requireSession devuelve la sesión activa o ErrUnauthorized para comandos
// que necesitan un usuario logueado.
func requireSession(deps Deps) (*entity.Session, error) {
	session, err := deps.AuthUC.CurrentSession()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	return session, nil
}
