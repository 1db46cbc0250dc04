package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ktalanov/ModelScrapOR/internal/conf"
	_ "github.com/ktalanov/ModelScrapOR/internal/server/handlers"
	"github.com/ktalanov/ModelScrapOR/internal/server/middleware"
	"github.com/ktalanov/ModelScrapOR/internal/server/resp"
	"github.com/ktalanov/ModelScrapOR/internal/server/router"
	"github.com/ktalanov/ModelScrapOR/internal/utils/log"
)

var httpSrv http.Server

func Start() error {
	if conf.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		resp.Error(c, http.StatusInternalServerError, resp.ErrInternalServer)
		c.Abort()
	}))

	if conf.IsDebug() {
		r.Use(middleware.Logger())
	}
	r.Use(middleware.Cors())
	// Generated reports are served as-is from the output directory.
	r.Use(middleware.StaticLocal("/", conf.AppConfig.Report.OutputDir))

	if err := router.RegisterAll(r); err != nil {
		return err
	}

	httpSrv.Addr = fmt.Sprintf("%s:%d", conf.AppConfig.Server.Host, conf.AppConfig.Server.Port)
	httpSrv.Handler = r
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("http server listen and serve error: %v", err)
		}
	}()
	return nil
}

func Close() error {
	return httpSrv.Close()
}
