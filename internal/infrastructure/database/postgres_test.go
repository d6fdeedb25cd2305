package database

import (
	"testing"

	"github.com/Abdudhi100/dr-olaosebikan/config"

	"github.com/stretchr/testify/assert"
)

func TestPostgresDSN_UsesConfiguredTimezone(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "clinic",
		Password: "secret",
		Name:     "clinic_db",
	}

	dsn := postgresDSN(cfg, "Africa/Lagos")
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=clinic_db")
	assert.Contains(t, dsn, "TimeZone=Africa/Lagos")

	assert.Contains(t, postgresDSN(cfg, "UTC"), "TimeZone=UTC")
}
