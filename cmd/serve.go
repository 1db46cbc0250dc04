package cmd

import (
	"github.com/ktalanov/ModelScrapOR/internal/conf"
	"github.com/ktalanov/ModelScrapOR/internal/db"
	"github.com/ktalanov/ModelScrapOR/internal/op"
	"github.com/ktalanov/ModelScrapOR/internal/server"
	"github.com/ktalanov/ModelScrapOR/internal/task"
	"github.com/ktalanov/ModelScrapOR/internal/utils/log"
	"github.com/ktalanov/ModelScrapOR/internal/utils/shutdown"
	"github.com/spf13/cobra"
)

var cfgFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve generated reports and regenerate them on a schedule",
	PreRun: func(cmd *cobra.Command, args []string) {
		conf.PrintBanner()
		conf.Load(cfgFile)
		log.SetLevel(conf.AppConfig.Log.Level)
	},
	Run: func(cmd *cobra.Command, args []string) {
		shutdown.Init(log.Logger)
		defer shutdown.Listen()
		if err := db.InitDB(conf.AppConfig.Database.Type, conf.AppConfig.Database.Path, conf.IsDebug()); err != nil {
			log.Errorf("database init error: %v", err)
			return
		}
		shutdown.Register(db.Close)

		if err := op.InitCache(); err != nil {
			log.Errorf("cache init error: %v", err)
			return
		}

		if err := server.Start(); err != nil {
			log.Errorf("server start error: %v", err)
			return
		}
		shutdown.Register(server.Close)

		task.Init()
		go task.RUN()
	},
}

func init() {
	serveCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./data/config.json)")
	rootCmd.AddCommand(serveCmd)
}
