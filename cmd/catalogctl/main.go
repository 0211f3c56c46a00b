// catalogctl herramienta de operación del catálogo: migraciones, datos demo, importación,
// exportación de fichas y feeds, y tokens de prueba.
//
// Uso: go run ./cmd/catalogctl migrate up
package main

import "github.com/jhoicas/Catalogo-api/cmd/catalogctl/commands"

func main() {
	commands.Execute()
}
