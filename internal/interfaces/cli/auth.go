package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-local/internal/application/dto"
)

func newRegisterCommand(deps Deps) *cobra.Command {
	var in dto.RegisterRequest

	cmd := &cobra.Command{
		Use:   "registro",
		Short: "Crea una cuenta y deja la sesión iniciada",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := deps.AuthUC.Register(in)
			if err != nil {
				return err
			}
			deps.Log.Info().Str("user_id", session.ID).Msg("cuenta registrada")
			fmt.Fprintf(cmd.OutOrStdout(), "Cuenta creada. Sesión iniciada como %s <%s>\n", session.Name, session.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "nombre", "", "nombre completo (obligatorio)")
	cmd.Flags().StringVar(&in.Email, "email", "", "email (obligatorio, único)")
	cmd.Flags().StringVar(&in.Company, "empresa", "", "empresa (opcional)")
	cmd.Flags().StringVar(&in.Password, "password", "", "contraseña, mínimo 6 caracteres")
	cmd.Flags().StringVar(&in.PasswordConfirm, "confirmar", "", "confirmación de la contraseña")
	cmd.Flags().BoolVar(&in.AcceptTerms, "acepto-terminos", false, "acepta los términos de uso")
	return cmd
}

func newLoginCommand(deps Deps) *cobra.Command {
	var in dto.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión con email y contraseña",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Pre-llenado con el email recordado, como el formulario original.
			if in.Email == "" {
				remembered, err := deps.AuthUC.RememberedEmail()
				if err != nil {
					return err
				}
				in.Email = remembered
			}
			session, err := deps.AuthUC.Login(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bienvenido, %s\n", session.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Email, "email", "", "email de la cuenta (por defecto el recordado)")
	cmd.Flags().StringVar(&in.Password, "password", "", "contraseña")
	cmd.Flags().BoolVar(&in.Remember, "recordar", false, "recuerda el email para el próximo login")
	return cmd
}

func newLogoutCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión activa",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.AuthUC.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada")
			return nil
		},
	}
}
