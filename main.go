package main

import (
	"context"
	"fmt"

	"github.com/udistrital/gestion_proyectos/internal/eventos"
	internalservices "github.com/udistrital/gestion_proyectos/internal/services"
	"github.com/udistrital/gestion_proyectos/internal/storage"
	_ "github.com/udistrital/gestion_proyectos/routers"
	"github.com/udistrital/gestion_proyectos/services"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	cors "github.com/beego/beego/v2/server/web/filter/cors"
	"github.com/beego/beego/v2/server/web/filter/prometheus"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err == nil {
		logs.Info("variables cargadas desde .env")
	}
	cfg := services.GetConfig()
	configurarLogs(cfg)

	store, err := storage.Abrir(context.Background(), cfg.StorageConfig())
	if err != nil {
		logs.Critical("no se pudo abrir el almacenamiento %s: %v", cfg.StoreDriver, err)
		return
	}
	almacen := storage.NuevoAlmacen(store, storage.ConTimeout(cfg.StoreTimeout))
	defer func() { _ = almacen.Cerrar() }()

	var publicador eventos.Publicador = eventos.Nulo{}
	if cfg.NATSURL != "" {
		nc, err := eventos.ConectarNATS(cfg.NATSURL)
		if err != nil {
			logs.Warn("eventos deshabilitados: %v", err)
		} else {
			publicador = nc
		}
	}
	defer publicador.Cerrar()

	internalservices.Configurar(internalservices.NuevaGestion(almacen, publicador))

	beego.InsertFilter("*", beego.BeforeRouter, cors.Allow(&cors.Options{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Requested-With", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	beego.InsertFilterChain("*", (&prometheus.FilterChainBuilder{}).FilterChain)

	beego.BConfig.AppName = cfg.AppName
	beego.BConfig.RunMode = cfg.RunMode
	beego.BConfig.Listen.HTTPPort = cfg.HTTPPort
	logs.Info("Servidor escuchando en http://localhost:%d (almacenamiento: %s)", cfg.HTTPPort, almacen.Driver())
	beego.Run()
}

func configurarLogs(cfg services.Config) {
	if cfg.LogFile == "" {
		return
	}
	if err := logs.SetLogger(logs.AdapterFile, fmt.Sprintf(`{"filename":%q}`, cfg.LogFile)); err != nil {
		logs.Warn("no se pudo abrir %s: %v", cfg.LogFile, err)
	}
}
