// Command rental loads a movie catalog, its customers and a day of
// commands, then replays the commands against the catalog.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/eirikbell/rental/config"
	"github.com/eirikbell/rental/store"
	"github.com/eirikbell/rental/textfile"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rental", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "rental.yaml", "path to the YAML config file")
	items := fs.String("items", "", "movie file, overrides the config")
	customers := fs.String("customers", "", "customer file, overrides the config")
	commands := fs.String("commands", "", "command file, overrides the config")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *items != "" {
		cfg.ItemsFile = *items
	}
	if *customers != "" {
		cfg.CustomersFile = *customers
	}
	if *commands != "" {
		cfg.CommandsFile = *commands
	}

	logger := configureLogging(stderr, cfg.LogLevel)

	s, err := store.New(cfg.Buckets,
		store.WithOutput(stdout),
		store.WithLogger(logger),
		store.WithInventoryOrder(cfg.Categories()...))
	if err != nil {
		logger.Error("cannot create store", "err", err)
		return 1
	}
	defer s.Close()

	src := textfile.Files{Items: cfg.ItemsFile, Customers: cfg.CustomersFile, Commands: cfg.CommandsFile}
	if err := s.Load(src); err != nil {
		fmt.Fprintln(stdout, "Error loading data from files.")
		logger.Error("load failed", "err", err)
		return 1
	}

	fmt.Fprintln(stdout, "Data loaded successfully.")
	s.Process()
	fmt.Fprintln(stdout, "Transactions processed.")
	return 0
}
