package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
)

var (
	importFile    string
	importCharset string
	importActor   int64
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Importar categorías desde CSV",
	Long: `Importa tipos y rutas de categorías desde un CSV con cabecera type,path[,description].

Ejemplo:
  type,path,description
  Electronics,Electronics/Phones/Android,Teléfonos Android

  catalogctl import --file categorias.csv --charset latin1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		f, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("abrir CSV: %w", err)
		}
		defer f.Close()

		rows, err := parseCategoryRows(f, importCharset)
		if err != nil {
			return err
		}

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
		im := &importer{uc: uc, actor: importActor}
		if err := im.importRows(ctx, rows); err != nil {
			return err
		}
		fmt.Printf("Tipos creados: %d, categorías creadas: %d, reutilizadas: %d\n",
			im.result.TypesCreated, im.result.CategoriesCreated, im.result.CategoriesReused)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Ruta del CSV")
	importCmd.Flags().StringVar(&importCharset, "charset", "utf-8", "Codificación: utf-8, latin1, windows-1252")
	importCmd.Flags().Int64Var(&importActor, "actor", 1, "Id del usuario que queda en created_by")
	_ = importCmd.MarkFlagRequired("file")
}
