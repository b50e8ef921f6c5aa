package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dhiyaancnirmal/boerd/internal/config"
	"github.com/dhiyaancnirmal/boerd/internal/testutil"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var dbType string
	flag.StringVar(&dbType, "db", "", "database type to run (mariadb or postgres), defaults to DB_TYPE")
	flag.Parse()

	usage := `
Run a throwaway boerd database container, configured from the .env file.
The connection settings are printed once the database accepts connections.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH] [-db DB_TYPE]

ENV_FILE_PATH: path to the .env file
DB_TYPE: mariadb or postgres

example
  testcontainers -f /path/to/something/.env -db postgres
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := config.LoadEnvFile(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	if dbType == "" {
		dbType = os.Getenv("DB_TYPE")
	}
	if dbType == "" || dbType == "sqlite" || dbType == "sqlite-pure" {
		dbType = "mariadb"
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	dc, err := testutil.StartDatabase(ctx, nil, dbType)
	if err != nil {
		stop()
		log.Fatalf("Failed to create test container: %v\n", err)
	}

	<-ctx.Done()
	log.Printf("\nReceived signal, terminating test container...\n")
	dc.Terminate(nil)
}
