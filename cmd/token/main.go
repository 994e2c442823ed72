// token emite un JWT firmado con JWT_SECRET para operar la API.
//
// Uso: go run ./cmd/token <user-id> [admin|viewer]
// Por defecto el rol es admin (necesario para POST /api/snapshot/reload).
package main

import (
	"fmt"
	"os"

	"github.com/zuno10/Supply-Chain-Dashboard/pkg/config"
	"github.com/zuno10/Supply-Chain-Dashboard/pkg/jwt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: token <user-id> [admin|viewer]")
		os.Exit(2)
	}
	userID := os.Args[1]
	role := jwt.RoleAdmin
	if len(os.Args) > 2 {
		role = os.Args[2]
	}
	if role != jwt.RoleAdmin && role != jwt.RoleViewer {
		fmt.Fprintf(os.Stderr, "Rol desconocido: %s\n", role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, userID, role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Firmar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
