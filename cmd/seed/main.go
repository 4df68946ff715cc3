// Command seed carga un fixture YAML en el almacenamiento configurado.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/udistrital/gestion_proyectos/internal/seed"
	"github.com/udistrital/gestion_proyectos/internal/storage"
	"github.com/udistrital/gestion_proyectos/services"

	"github.com/beego/beego/v2/core/logs"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga un fixture YAML en el almacenamiento",
		Long: `Carga proyectos, tareas, usuarios y administradores desde un fixture YAML
en el almacenamiento configurado por STORE_DRIVER.

Examples:
  # Agregar los registros del fixture
  seed -f datos.yaml

  # Reemplazar el conjunto de datos completo
  seed -f datos.yaml --reemplazar
`,
		SilenceUsage: true,
		RunE:         runSeed,
	}
	cmd.Flags().StringP("file", "f", "seed.yaml", "fixture YAML con projects, tasks, users y administrators")
	cmd.Flags().Bool("reemplazar", false, "reemplaza los datos existentes en lugar de agregar")
	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	archivo, _ := cmd.Flags().GetString("file")
	reemplazar, _ := cmd.Flags().GetBool("reemplazar")

	_ = godotenv.Load()
	cfg := services.GetConfig()

	raw, err := os.ReadFile(archivo)
	if err != nil {
		logs.Critical("no se pudo leer %s: %v", archivo, err)
		return err
	}
	fixture, err := seed.Decodificar(raw)
	if err != nil {
		logs.Critical("fixture inválido: %v", err)
		return err
	}

	ctx := cmd.Context()
	store, err := storage.Abrir(ctx, cfg.StorageConfig())
	if err != nil {
		logs.Critical("no se pudo abrir el almacenamiento %s: %v", cfg.StoreDriver, err)
		return err
	}
	var fallos int
	almacen := storage.NuevoAlmacen(store, storage.ConObservador(func(*storage.StorageError) { fallos++ }))
	defer func() { _ = almacen.Cerrar() }()

	resumen := seed.Aplicar(ctx, almacen, fixture, reemplazar)
	if fallos > 0 {
		return fmt.Errorf("la carga terminó con %d fallos de almacenamiento", fallos)
	}
	logs.Info("carga completa: %d proyectos, %d tareas, %d usuarios, %d administradores",
		resumen.Proyectos, resumen.Tareas, resumen.Usuarios, resumen.Administradores)
	return nil
}
