package main

import (
	"flag"
	"log"
	"strconv"

	"github.com/pastryhash/pastry/internal/node/app"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "configPath", "", "Path to configuration file")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		log.Fatalf("usage: %s [-configPath path] <host> <port> [<bootstrap-addr>]", flag.CommandLine.Name())
	}

	host := args[0]
	port, err := strconv.Atoi(args[1])
	if err != nil {
		log.Fatalf("invalid port %q: %v", args[1], err)
	}

	var bootstrapAddr string
	if len(args) >= 3 {
		bootstrapAddr = args[2]
	}

	application, err := app.New(configPath, host, port, bootstrapAddr)
	if err != nil {
		log.Fatalf("failed to initialize node: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("node failed: %v", err)
	}
}
