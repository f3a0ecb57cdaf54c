package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/harlowe/quotesmith/internal/cli"
	"github.com/harlowe/quotesmith/internal/common"
	"github.com/harlowe/quotesmith/internal/document"
	"github.com/harlowe/quotesmith/internal/model"
	"github.com/harlowe/quotesmith/internal/storage"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the product catalog",
		Long:  `Import, list, and add products in the price book the wizard searches.`,
	}

	cmd.AddCommand(catalogImportCmd())
	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogAddCmd())

	return cmd
}

func catalogImportCmd() *cobra.Command {
	var skipDuplicates bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import products from a CSV file",
		Long: `Import products from a CSV file with columns: id, name, unit_price.
The id column may be empty; missing IDs are assigned automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			return runCatalogImport(ctx, store, args[0], skipDuplicates)
		},
	}

	cmd.Flags().BoolVar(&skipDuplicates, "skip-duplicates", false, "skip products whose ID already exists")

	return cmd
}

func runCatalogImport(ctx context.Context, store *storage.SQLiteStorage, path string, skipDuplicates bool) error {
	entries, err := readCatalogCSV(path)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No products found in file."))
		return nil
	}

	bar := progressbar.NewOptions(len(entries),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing products..."),
	)

	imported := 0
	skipped := 0
	for _, entry := range entries {
		_, err := store.AddProduct(ctx, entry)
		switch {
		case err == nil:
			imported++
		case skipDuplicates && errors.Is(err, common.ErrDuplicateEntry):
			skipped++
		default:
			return fmt.Errorf("failed to import %q: %w", entry.ProductName, err)
		}
		_ = bar.Add(1)
	}
	fmt.Fprintln(os.Stderr)

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Imported %d product(s), skipped %d.", imported, skipped)))
	return nil
}

// readCatalogCSV parses a product price book. A header row is detected by a
// non-numeric value in the price column and skipped.
func readCatalogCSV(path string) ([]model.CatalogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	var entries []model.CatalogEntry
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		line++

		price, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			if line == 1 {
				continue // header row
			}
			return nil, fmt.Errorf("line %d: invalid unit price %q", line, record[2])
		}

		entries = append(entries, model.CatalogEntry{
			ProductID:   strings.TrimSpace(record[0]),
			ProductName: strings.TrimSpace(record[1]),
			UnitPrice:   price,
		})
	}

	return entries, nil
}

func catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.SearchProducts(ctx)
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No products found. Use 'quotesmith catalog import' or 'catalog add'."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Unit Price"))
			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", entry.ProductID, entry.ProductName, document.Currency(entry.UnitPrice))
			}

			return nil
		},
	}
}

func catalogAddCmd() *cobra.Command {
	var productID string

	cmd := &cobra.Command{
		Use:   "add <name> <unit-price>",
		Short: "Add a single product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid unit price %q", args[1])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entry, err := store.AddProduct(ctx, model.CatalogEntry{
				ProductID:   productID,
				ProductName: args[0],
				UnitPrice:   price,
			})
			if err != nil {
				return fmt.Errorf("failed to add product: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Added %s (%s) at %s.",
				entry.ProductName, entry.ProductID, document.Currency(entry.UnitPrice))))
			return nil
		},
	}

	cmd.Flags().StringVar(&productID, "id", "", "explicit product ID (default: generated)")

	return cmd
}
