package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Sembrar un catálogo de demostración",
	Long: `Crea Electronics → Phones → Android, un producto, una lista de precios,
atributos de cada tipo y un SKU con sus tramos. Se puede correr varias veces.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		pool, err := openPool(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		uc := newUseCases(postgres.NewRepositories(pool), postgres.NewTxRunner(pool), cfg, newLogger(cfg))
		im := &importer{uc: uc, actor: 1}
		leafID, err := im.ensurePath(ctx, "Electronics", []string{"Electronics", "Phones", "Android"}, "Teléfonos Android")
		if err != nil {
			return err
		}

		refs, err := postgres.SeedReferenceData(ctx, pool, leafID, "Pixel", "Retail", []postgres.DemoAttribute{
			{Name: "Color", DataType: entity.DataTypeText},
			{Name: "Memoria", DataType: entity.DataTypeNumber, UOM: "GB"},
			{Name: "Dual SIM", DataType: entity.DataTypeBoolean},
			{Name: "Lanzamiento", DataType: entity.DataTypeDate},
		})
		if err != nil {
			return err
		}

		const skuName = "Pixel Negro 128GB"
		existing, err := uc.repos.Skus.GetByName(ctx, skuName)
		if err != nil {
			return err
		}
		if existing == nil {
			minQty := 10
			sku, err := uc.skus.Create(ctx, 1, dto.CreateSkuRequest{
				Name:      skuName,
				ProductID: refs.ProductID,
				PriceDetails: []dto.PriceDetailInput{
					{PricelistID: refs.PricelistID, Price: decimal.RequireFromString("699.00")},
					{PricelistID: refs.PricelistID, Price: decimal.RequireFromString("649.00"), MinimumQuantity: &minQty},
				},
				AttributeValues: []dto.AttributeValueInput{
					{AttributeID: refs.Attributes["COLOR"], Value: "Negro"},
					{AttributeID: refs.Attributes["MEMORIA"], Value: "128"},
					{AttributeID: refs.Attributes["DUAL_SIM"], Value: "true"},
					{AttributeID: refs.Attributes["LANZAMIENTO"], Value: "2024-10-01"},
				},
			})
			if err != nil {
				return err
			}
			fmt.Printf("SKU creado: %s (%s)\n", sku.Name, sku.SkuNumber)
		} else {
			fmt.Printf("SKU existente: %s (%s)\n", existing.Name, existing.SkuNumber)
		}
		fmt.Printf("Categorías creadas: %d, reutilizadas: %d\n", im.result.CategoriesCreated, im.result.CategoriesReused)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
