package main

import (
	"flag"
	"net/http"
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/thunur/travel-route-planner/pkg/network"
	"github.com/thunur/travel-route-planner/pkg/routing"
	"github.com/thunur/travel-route-planner/pkg/server/restapi"
)

// Config of the route planning server.
type Config struct {
	Listen  string `yaml:"listen"`
	Network string `yaml:"network"`
	Weights struct {
		Time float64 `yaml:"time"`
		Cost float64 `yaml:"cost"`
	} `yaml:"weights"`
}

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	config := Config{Listen: ":8081"}
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file, using defaults: " + err.Error())
		return config
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
	}
	return config
}

func loadNetwork(filename string) *network.Network {
	if filename == "" {
		return network.NewDefaultNetwork()
	}
	net, err := network.NewNetworkFromCsvFile(filename)
	if err != nil {
		slog.Error("failed to read network file, using built-in dataset: " + err.Error())
		return network.NewDefaultNetwork()
	}
	return net
}

func main() {
	configFile := flag.String("config", "config.yaml", "服务配置文件")
	flag.Parse()

	config := ReadConfig(*configFile)

	net := loadNetwork(config.Network)
	slog.Info("network loaded", "cities", net.CityCount(), "nodes", net.NodeCount())

	defaults := routing.Preferences{TimeWeight: config.Weights.Time, CostWeight: config.Weights.Cost}
	if defaults.TimeWeight == 0 && defaults.CostWeight == 0 {
		defaults = routing.Balanced()
	}

	service := restapi.NewDefaultApiService(net, defaults)
	controller := restapi.NewDefaultApiController(service)
	router := restapi.NewRouter(controller)

	slog.Info("listening", "address", config.Listen)
	if err := http.ListenAndServe(config.Listen, router); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
