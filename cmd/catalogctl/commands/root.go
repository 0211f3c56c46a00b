package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

var (
	// Flags globales
	dbURL   string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Operación del catálogo de productos",
	Long: `catalogctl opera la base del catálogo fuera del servidor HTTP.

Subcomandos:
  migrate  - aplicar o consultar migraciones embebidas
  seed     - sembrar un catálogo de demostración
  import   - importar categorías desde CSV
  export   - fichas PDF y feed XML de SKUs
  token    - emitir un JWT para pruebas locales`,
	SilenceUsage: true,
}

// Execute ejecuta el comando raíz.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "URL de PostgreSQL (por defecto DATABASE_URL / DB_*)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Salida detallada")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if dbURL != "" {
		cfg.DB.DatabaseURL = dbURL
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *logger.Logger {
	if !verbose {
		return logger.Nop()
	}
	return logger.New(logger.Config{Env: "development", Level: "debug", Service: "catalogctl", Output: os.Stderr})
}

func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return pool, nil
}

// useCases casos de uso del catálogo sobre PostgreSQL, sin caché.
type useCases struct {
	repos      catalog.Repositories
	types      *catalog.CategoryTypeUseCase
	categories *catalog.CategoryUseCase
	skus       *catalog.SkuUseCase
}

func newUseCases(repos catalog.Repositories, tx catalog.TxRunner, cfg *config.Config, log *logger.Logger) *useCases {
	opts := catalog.Options{MaxDepth: cfg.Catalog.MaxDepth}
	return &useCases{
		repos:      repos,
		types:      catalog.NewCategoryTypeUseCase(repos, tx, nil, log),
		categories: catalog.NewCategoryUseCase(repos, tx, nil, log, opts),
		skus:       catalog.NewSkuUseCase(repos, tx, nil, log, opts),
	}
}
