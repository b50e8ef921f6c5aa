// This file starts throwaway database containers for integration tests.
// It is also used by cmd/testcontainers as a standalone dev database runner, with a nil *testing.T.

package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/config"
	"github.com/dhiyaancnirmal/boerd/internal/database"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm/logger"
)

const (
	containerDatabase = "boerd"
	containerUser     = "boerd"
	containerPassword = "boerd-test"
)

// DatabaseContainer is a running database plus the config that reaches it
type DatabaseContainer struct {
	Container testcontainers.Container
	Config    *config.Config
}

// Terminate stops the container
func (dc *DatabaseContainer) Terminate(t *testing.T) {
	if dc == nil || dc.Container == nil {
		return
	}
	if err := dc.Container.Terminate(context.Background()); err != nil {
		logMessage(t, "Failed to terminate database container: %v", err)
	}
}

// StartDatabase runs a mariadb or postgres container and waits until it accepts connections.
// The image can be overridden with DB_IMAGE.
func StartDatabase(ctx context.Context, t *testing.T, dbType string) (*DatabaseContainer, error) {
	image, portNumber, env, dataDir, err := containerSpec(dbType)
	if err != nil {
		return nil, err
	}
	if override := os.Getenv("DB_IMAGE"); override != "" {
		image = override
	}

	tcpPort, err := nat.NewPort("tcp", portNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env:          env,
			HostConfigModifier: func(hostConfig *container.HostConfig) {
				// data dir lives in memory; nothing survives the container
				hostConfig.Tmpfs = map[string]string{dataDir: "rw"}
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", image, err)
	}
	dc := &DatabaseContainer{Container: dbContainer}

	host, err := dbContainer.Host(ctx)
	if err != nil {
		dc.Terminate(t)
		return nil, fmt.Errorf("failed to resolve container host: %w", err)
	}
	mapped, err := dbContainer.MappedPort(ctx, tcpPort)
	if err != nil {
		dc.Terminate(t)
		return nil, fmt.Errorf("failed to resolve mapped port: %w", err)
	}

	dc.Config = &config.Config{
		DBType:            dbType,
		DBHost:            host,
		DBPort:            mapped.Port(),
		DBDatabase:        containerDatabase,
		DBUser:            containerUser,
		DBPassword:        containerPassword,
		DBConnectionLimit: 4,
	}

	if err := waitForDatabase(dc.Config); err != nil {
		dc.Terminate(t)
		return nil, err
	}

	logMessage(t, "DB_TYPE=%s DB_HOST=%s DB_PORT=%s DB_DATABASE=%s DB_USER=%s DB_PASSWORD=%s",
		dbType, host, mapped.Port(), containerDatabase, containerUser, containerPassword)
	return dc, nil
}

func containerSpec(dbType string) (image, port string, env map[string]string, dataDir string, err error) {
	switch dbType {
	case "mysql", "mariadb":
		return "mariadb:11", "3306", map[string]string{
			"MARIADB_RANDOM_ROOT_PASSWORD": "yes",
			"MARIADB_DATABASE":             containerDatabase,
			"MARIADB_USER":                 containerUser,
			"MARIADB_PASSWORD":             containerPassword,
		}, "/var/lib/mysql", nil
	case "postgres", "postgresql":
		return "postgres:16-alpine", "5432", map[string]string{
			"POSTGRES_DB":       containerDatabase,
			"POSTGRES_USER":     containerUser,
			"POSTGRES_PASSWORD": containerPassword,
		}, "/var/lib/postgresql/data", nil
	}
	return "", "", nil, "", fmt.Errorf("no container for database type %s", dbType)
}

// waitForDatabase retries until the server finishes its init restart
func waitForDatabase(cfg *config.Config) error {
	var lastErr error
	for i := 0; i < 30; i++ {
		db, err := database.Connect(cfg, database.Options{LogLevel: logger.Silent, Log: zerolog.Nop()})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				err = sqlDB.Ping()
			} else {
				err = dbErr
			}
			_ = database.Close(db)
			if err == nil {
				return nil
			}
		}
		lastErr = err
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database not ready after 30 seconds: %w", lastErr)
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
