package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
	"github.com/yourusername/shop-catalog/internal/usecase"
)

const categoryFlag = "category"

// Handler shopctl buyruqlari uchun usecase'lar
type Handler struct {
	catalog usecase.CatalogUseCase
	cart    usecase.CartUseCase
}

// NewHandler yangi CLI handler
func NewHandler(catalog usecase.CatalogUseCase, cart usecase.CartUseCase) *Handler {
	return &Handler{catalog: catalog, cart: cart}
}

// RootCommand shopctl buyruqlar daraxti
func (h *Handler) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "shopctl",
		Short:         "Manage the local shop catalog database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		h.seedCommand(),
		h.importCommand(),
		h.listCommand(),
		h.getCommand(),
		h.searchCommand(),
		h.deleteCommand(),
		h.clearCommand(),
		h.watchCommand(),
		h.cartCommand(),
	)
	return root
}

func (h *Handler) seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample catalog when the database is empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seeded, err := h.catalog.SeedSampleData(cmd.Context())
			if err != nil {
				return err
			}
			if seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "sample catalog inserted")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog is not empty, nothing to do")
			}
			return nil
		},
	}
}

func (h *Handler) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Import products from an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := h.catalog.ImportCatalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d products from %s\n", len(catalog.Products), catalog.Source)
			return nil
		},
	}
}

func (h *Handler) listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categoryID, _ := cmd.Flags().GetInt64(categoryFlag)
			products, err := h.catalog.Products(cmd.Context(), categoryID)
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}
	cmd.Flags().Int64(categoryFlag, 0, "Only products of this category id")
	return cmd
}

func (h *Handler) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			product, err := h.catalog.Product(cmd.Context(), id)
			if err != nil {
				return err
			}
			printProductDetails(cmd.OutOrStdout(), *product)
			return nil
		},
	}
}

func (h *Handler) searchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search products by name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, _ := cmd.Flags().GetInt64(categoryFlag)
			products, err := h.catalog.Search(cmd.Context(), args[0], categoryID)
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}
	cmd.Flags().Int64(categoryFlag, 0, "Only products of this category id")
	return cmd
}

func (h *Handler) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return h.catalog.DeleteProduct(cmd.Context(), id)
		},
	}
}

func (h *Handler) clearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.catalog.Clear(cmd.Context())
		},
	}
}

func (h *Handler) watchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the product list every time it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categoryID, _ := cmd.Flags().GetInt64(categoryFlag)
			lq, err := h.catalog.Watch(cmd.Context(), categoryID)
			if err != nil {
				return err
			}
			defer lq.Close()

			out := cmd.OutOrStdout()
			for products := range lq.Updates() {
				fmt.Fprintf(out, "--- %d products\n", len(products))
				printProducts(out, products)
			}
			return lq.Err()
		},
	}
	cmd.Flags().Int64(categoryFlag, 0, "Only products of this category id")
	return cmd
}

func (h *Handler) cartCommand() *cobra.Command {
	cart := &cobra.Command{
		Use:   "cart",
		Short: "Shopping cart operations",
	}

	cart.AddCommand(
		&cobra.Command{
			Use:   "add <productId>",
			Short: "Add one unit of a product to the cart",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				item, err := h.cart.AddToCart(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "cart item %d: product %d x%d\n", item.ID, item.ProductID, item.Quantity)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <itemId>",
			Short: "Remove a cart item",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return h.cart.RemoveFromCart(cmd.Context(), entity.CartItem{ID: id})
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show cart contents and total",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				summary, err := h.cart.Summary(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, line := range summary.Lines {
					fmt.Fprintf(out, "[%d] %s x%d = $%.2f\n", line.Item.ID, line.Product.Name, line.Item.Quantity, line.Subtotal)
				}
				fmt.Fprintf(out, "items: %d, total: $%.2f\n", summary.Count, summary.Total)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return h.cart.ClearCart(cmd.Context())
			},
		},
	)
	return cart
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid id %q", raw)
	}
	return id, nil
}

func printProducts(w io.Writer, products []entity.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "no products")
		return
	}
	for _, p := range products {
		stock := "in stock"
		if !p.InStock {
			stock = "out of stock"
		}
		fmt.Fprintf(w, "#%d %s $%.2f [%s] %s\n", p.ID, p.Name, p.Price, p.Category, stock)
	}
}

func printProductDetails(w io.Writer, p entity.Product) {
	fmt.Fprintf(w, "#%d %s\n", p.ID, p.Name)
	fmt.Fprintf(w, "price: $%.2f\n", p.Price)
	fmt.Fprintf(w, "category: %s (%d)\n", p.Category, p.CategoryID)
	fmt.Fprintf(w, "in stock: %t\n", p.InStock)
	if p.Description != "" {
		fmt.Fprintf(w, "description: %s\n", p.Description)
	}
	if p.ImageURL != "" {
		fmt.Fprintf(w, "image: %s\n", p.ImageURL)
	}
	if p.Details != "" {
		fmt.Fprintf(w, "details: %s\n", p.Details)
	}
	if p.Specifications != "" {
		fmt.Fprintf(w, "specifications:\n%s\n", p.Specifications)
	}
}
