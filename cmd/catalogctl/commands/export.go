package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/feed"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
)

var (
	sheetOut        string
	feedOut         string
	exportSkuID     int64
	exportProductID int64
	exportLimit     int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exportar fichas PDF o feed XML de SKUs",
}

var exportSheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Generar la ficha técnica PDF de un SKU",
	Example: `  catalogctl export sheet --sku 42 --out pixel.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUseCases(cmd.Context(), func(ctx context.Context, uc *useCases) error {
			sku, err := uc.skus.GetByID(ctx, exportSkuID)
			if err != nil {
				return err
			}
			out, err := pdf.NewSkuSheetRenderer("catalogctl").RenderSkuSheet(ctx, sku)
			if err != nil {
				return err
			}
			if err := os.WriteFile(sheetOut, out, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", sheetOut, err)
			}
			fmt.Printf("Ficha de %s escrita en %s (%d bytes)\n", sku.SkuNumber, sheetOut, len(out))
			return nil
		})
	},
}

var exportFeedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Generar el feed XML de SKUs activos",
	Example: `  catalogctl export feed --product 3 --out feed.xml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUseCases(cmd.Context(), func(ctx context.Context, uc *useCases) error {
			active := true
			filter := dto.SkuFilterRequest{IsActive: &active}
			if exportProductID > 0 {
				filter.ProductID = &exportProductID
			}
			list, err := uc.skus.List(ctx, filter, dto.PageRequest{Limit: exportLimit})
			if err != nil {
				return err
			}
			body, digest, err := feed.NewXMLFeedEncoder(2).EncodeSkuFeed(ctx, list.Items)
			if err != nil {
				return err
			}
			if err := os.WriteFile(feedOut, body, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", feedOut, err)
			}
			fmt.Printf("Feed con %d SKUs escrito en %s (sha256 %s)\n", len(list.Items), feedOut, digest)
			return nil
		})
	},
}

// withUseCases abre el pool, arma los casos de uso y los cierra al terminar fn.
func withUseCases(ctx context.Context, fn func(ctx context.Context, uc *useCases) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(ctx, newUseCases(postgres.NewRepositories(pool), postgres.NewTxRunner(pool), cfg, newLogger(cfg)))
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportSheetCmd, exportFeedCmd)

	exportSheetCmd.Flags().Int64Var(&exportSkuID, "sku", 0, "Id del SKU")
	exportSheetCmd.Flags().StringVarP(&sheetOut, "out", "o", "sku.pdf", "Archivo de salida")
	_ = exportSheetCmd.MarkFlagRequired("sku")

	exportFeedCmd.Flags().Int64Var(&exportProductID, "product", 0, "Filtrar por producto")
	exportFeedCmd.Flags().IntVar(&exportLimit, "limit", 100, "Máximo de SKUs")
	exportFeedCmd.Flags().StringVarP(&feedOut, "out", "o", "feed.xml", "Archivo de salida")
}
