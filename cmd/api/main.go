// Comando jprint-api: servidor del panel de vendedores y tareas de mantenimiento
// (migraciones, datos de demostración, hash de contraseñas).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "jprint-api",
	Short:        "API del panel de vendedores JPRINT",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
