package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Catalogo-api/pkg/jwt"
)

var (
	tokenUserID int64
	tokenRole   string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Emitir un JWT firmado con JWT_SECRET (pruebas locales)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.JWT.Secret == "" {
			return errors.New("JWT_SECRET no está definido")
		}
		tok, err := jwt.Generate(cfg.JWT.Secret, tokenUserID, tokenRole, cfg.JWT.Issuer, cfg.JWT.Expiration)
		if err != nil {
			return err
		}
		fmt.Println(tok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().Int64Var(&tokenUserID, "user", 1, "Id del usuario")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "admin", "Rol: admin, editor, viewer")
}
