package cmd

import (
	"context"

	"github.com/ktalanov/ModelScrapOR/internal/conf"
	"github.com/ktalanov/ModelScrapOR/internal/db"
	"github.com/ktalanov/ModelScrapOR/internal/helper"
	"github.com/ktalanov/ModelScrapOR/internal/op"
	"github.com/ktalanov/ModelScrapOR/internal/utils/log"
	"github.com/spf13/cobra"
)

var offline bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate today's model rankings report",
	PreRun: func(cmd *cobra.Command, args []string) {
		conf.Load(cfgFile)
		log.SetLevel(conf.AppConfig.Log.Level)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := db.InitDB(conf.AppConfig.Database.Type, conf.AppConfig.Database.Path, conf.IsDebug()); err != nil {
			log.Errorf("database init error: %v", err)
			return
		}
		defer db.Close()

		if err := op.InitCache(); err != nil {
			log.Errorf("cache init error: %v", err)
			return
		}

		path, err := helper.GenerateReport(context.Background(), offline)
		if err != nil {
			log.Errorf("report generation failed: %v", err)
			return
		}
		log.Infof("report generation complete: %s", path)
	},
}

func init() {
	generateCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./data/config.json)")
	generateCmd.PersistentFlags().BoolVar(&offline, "offline", false, "build from the cached catalog without fetching")
	rootCmd.AddCommand(generateCmd)
}
