package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harlowe/quotesmith/internal/delivery"
	"github.com/harlowe/quotesmith/internal/render"
	"github.com/harlowe/quotesmith/internal/tui"
	"github.com/harlowe/quotesmith/internal/tui/themes"
)

func wizardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Run the interactive quote wizard",
		Long: `Launch the interactive wizard: search the catalog, select products and
quantities, review the quote, and save it together with its PDF document.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			return tui.Run(ctx, tui.Config{
				Theme:               themes.Default,
				Catalog:             store,
				Quotes:              store,
				Documents:           store,
				Renderer:            render.NewPDFRenderer(),
				Delivery:            delivery.NewLocalDelivery(viper.GetString("downloads.dir")),
				EnableCelebration:   viper.GetBool("wizard.celebration"),
				EnableLocalDownload: viper.GetBool("wizard.local_download"),
			})
		},
	}

	cmd.Flags().Bool("no-celebration", false, "disable the confetti effect after saving")
	cmd.Flags().Bool("no-download", false, "do not save the PDF to the downloads directory")
	_ = viper.BindPFlag("wizard.no_celebration", cmd.Flags().Lookup("no-celebration"))
	_ = viper.BindPFlag("wizard.no_download", cmd.Flags().Lookup("no-download"))

	cmd.PreRun = func(_ *cobra.Command, _ []string) {
		if viper.GetBool("wizard.no_celebration") {
			viper.Set("wizard.celebration", false)
		}
		if viper.GetBool("wizard.no_download") {
			viper.Set("wizard.local_download", false)
		}
	}

	return cmd
}
