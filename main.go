package main

import (
	"flag"
	"fmt"
	"sync"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/hokm/config"
	"github.com/ratel-online/hokm/database"
	"github.com/ratel-online/hokm/network"
)

var configPath = flag.String("c", "", "path of the yaml config file")

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error(err)
		return
	}
	database.Init(cfg)

	servers := make([]network.Network, 0, 2)
	if cfg.Server.TcpAddr != "" {
		servers = append(servers, network.NewTcpServer(cfg.Server.TcpAddr))
	}
	if cfg.Server.WsAddr != "" {
		servers = append(servers, network.NewWebsocketServer(cfg.Server.WsAddr))
	}
	wg := sync.WaitGroup{}
	for _, server := range servers {
		server := server
		wg.Add(1)
		async.Async(func() {
			defer wg.Done()
			log.Error(server.Serve())
		})
	}
	wg.Wait()
}
