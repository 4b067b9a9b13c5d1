package main

import (
	"flag"

	"github.com/reusedev/observer-hub/config"
	"github.com/reusedev/observer-hub/internal/modules/demo"
	"github.com/reusedev/observer-hub/internal/modules/logs"
	"github.com/reusedev/observer-hub/internal/modules/observer"
	"github.com/reusedev/observer-hub/tools"
)

var (
	configPath string
)

func init() {
	flag.StringVar(&configPath, "config", "config.yml", "config file path, optional")
}

func main() {
	flag.Parse()
	config.Init(tools.PanicOnError(tools.ReadOptionalFile(configPath)))
	logs.InitLogger()
	demo.Run(observer.NewRegistry(logs.Logger))
}
