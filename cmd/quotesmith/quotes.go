package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harlowe/quotesmith/internal/cli"
	"github.com/harlowe/quotesmith/internal/common"
	"github.com/harlowe/quotesmith/internal/delivery"
	"github.com/harlowe/quotesmith/internal/document"
	"github.com/harlowe/quotesmith/internal/model"
	"github.com/harlowe/quotesmith/internal/render"
	"github.com/harlowe/quotesmith/internal/service"
	"github.com/harlowe/quotesmith/internal/storage"
)

func quotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "Inspect and export saved quotes",
	}

	cmd.AddCommand(quotesListCmd())
	cmd.AddCommand(quotesExportCmd())

	return cmd
}

func quotesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved quotes, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			quotes, err := store.ListQuotes(ctx)
			if err != nil {
				return fmt.Errorf("failed to list quotes: %w", err)
			}

			if len(quotes) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No quotes yet. Run 'quotesmith wizard' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Total"),
				cli.BoldStyle.Render("Created"))
			for _, quote := range quotes {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					quote.DisplayName(),
					quote.ID,
					document.Currency(quote.GrandTotal),
					quote.CreatedAt.Format("2006-01-02 15:04"))
			}

			return nil
		},
	}
}

func quotesExportCmd() *cobra.Command {
	var (
		outDir   string
		rerender bool
	)

	cmd := &cobra.Command{
		Use:   "export <quote-id>",
		Short: "Write a quote's PDF to the downloads directory",
		Long: `Write a quote's PDF to the downloads directory. The stored document is
used when one exists; --rerender regenerates it from the quote's line items
and replaces the stored copy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			quoteID := args[0]

			if outDir == "" {
				outDir = viper.GetString("downloads.dir")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			quote, err := store.GetQuote(ctx, quoteID)
			if err != nil {
				return fmt.Errorf("failed to load quote: %w", err)
			}

			pdf, fileName, err := store.GetDocument(ctx, quoteID)
			if rerender || errors.Is(err, common.ErrNotFound) {
				pdf, fileName, err = renderQuoteDocument(cmd, store, quote)
			}
			if err != nil {
				return err
			}

			target := delivery.NewLocalDelivery(outDir)
			if err := target.Deliver(pdf, fileName); err != nil {
				return fmt.Errorf("failed to write document: %w", err)
			}

			cli.ConsoleNotifier{}.Notify("Success",
				fmt.Sprintf("Exported %s to %s", quote.DisplayName(), filepath.Join(target.Dir(), fileName)),
				service.SeveritySuccess)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default: downloads.dir from config)")
	cmd.Flags().BoolVar(&rerender, "rerender", false, "regenerate the PDF instead of using the stored copy")

	return cmd
}

func renderQuoteDocument(cmd *cobra.Command, store *storage.SQLiteStorage, quote *model.Quote) ([]byte, string, error) {
	ctx := cmd.Context()

	renderer := render.NewPDFRenderer()
	if err := renderer.Init(ctx); err != nil {
		return nil, "", fmt.Errorf("failed to initialize renderer: %w", err)
	}

	spec := document.Build(quote.LineItems, quote.GrandTotal, quote.CreatedAt)
	pdf, err := renderer.Render(spec)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render document: %w", err)
	}

	fileName := document.FileName(quote.LineItems, quote.Name)
	if err := store.SaveDocument(ctx, quote.ID, pdf, fileName); err != nil {
		return nil, "", fmt.Errorf("failed to store document: %w", err)
	}

	return pdf, fileName, nil
}
