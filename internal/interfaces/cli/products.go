package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/pkg/format"
)

func newProductsCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "productos",
		Short: "CRUD del inventario del usuario activo",
	}
	cmd.AddCommand(
		newProductsListCommand(deps),
		newProductsSaveCommand(deps),
		newProductsDeleteCommand(deps),
	)
	return cmd
}

func newProductsListCommand(deps Deps) *cobra.Command {
	var filter dto.ListFilter

	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista productos con búsqueda, filtros y paginación",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireSession(deps)
			if err != nil {
				return err
			}
			page, err := deps.ProductUC.List(session.ID, filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(page.Items) == 0 {
				fmt.Fprintln(out, "Ningún producto encontrado")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SKU\tNOMBRE\tCATEGORÍA\tCANTIDAD\tMÍNIMO\tPRECIO\tVENCE\tESTADO")
			for _, row := range page.Items {
				p := row.Product
				fmt.Fprintf(w, "%s\t%s\t%s\t%d %s\t%d %s\t%s\t%s\t%s\n",
					p.SKU, p.Name, p.Category,
					p.Quantity, p.Unit, p.MinStock, p.Unit,
					format.Currency(p.Price), format.Date(p.ExpiryDate), row.State)
			}
			w.Flush()
			fmt.Fprintf(out, "Página %d de %d (%d productos)\n", page.Page, page.TotalPages, page.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Search, "buscar", "", "busca en nombre, SKU y proveedor")
	cmd.Flags().StringVar(&filter.Category, "categoria", "", "filtra por categoría exacta")
	cmd.Flags().StringVar(&filter.Status, "estado", "", "ok | low | out | expiring")
	cmd.Flags().IntVar(&filter.Page, "pagina", 1, "página (desde 1)")
	cmd.Flags().IntVar(&filter.PageSize, "tamano", 0, "productos por página (defecto 10)")
	return cmd
}

func newProductsSaveCommand(deps Deps) *cobra.Command {
	var (
		in     dto.SaveProductRequest
		precio string
		vence  string
	)

	cmd := &cobra.Command{
		Use:   "guardar",
		Short: "Crea un producto (sin --id) o lo actualiza (con --id)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if precio != "" {
				price, err := decimal.NewFromString(precio)
				if err != nil {
					return fmt.Errorf("precio inválido %q: %w", precio, err)
				}
				in.Price = price
			}
			if vence != "" {
				d, err := time.Parse("2006-01-02", vence)
				if err != nil {
					return fmt.Errorf("fecha de vencimiento inválida %q (use AAAA-MM-DD): %w", vence, err)
				}
				in.ExpiryDate = &d
			}

			product, err := deps.ProductUC.Save(in)
			if err != nil {
				return err
			}
			if in.ID == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Producto creado: %s (%s)\n", product.Name, product.ID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Producto actualizado: %s\n", product.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in.ID, "id", "", "ID del producto a actualizar (vacío = crear)")
	cmd.Flags().StringVar(&in.Name, "nombre", "", "nombre (obligatorio)")
	cmd.Flags().StringVar(&in.SKU, "sku", "", "código único por usuario (obligatorio)")
	cmd.Flags().StringVar(&in.Category, "categoria", "", "categoría (obligatoria)")
	cmd.Flags().StringVar(&in.Supplier, "proveedor", "", "proveedor")
	cmd.Flags().IntVar(&in.Quantity, "cantidad", 0, "cantidad actual")
	cmd.Flags().IntVar(&in.MinStock, "minimo", 0, "stock mínimo")
	cmd.Flags().StringVar(&precio, "precio", "", "precio unitario, ej: 12.50")
	cmd.Flags().StringVar(&in.Unit, "unidad", "", "unidad de medida (defecto UN)")
	cmd.Flags().StringVar(&vence, "vence", "", "fecha de vencimiento AAAA-MM-DD")
	cmd.Flags().StringVar(&in.Description, "descripcion", "", "descripción")
	return cmd
}

func newProductsDeleteCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina un producto por ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(deps); err != nil {
				return err
			}
			if err := deps.ProductUC.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Producto eliminado")
			return nil
		},
	}
}
