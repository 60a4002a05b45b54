package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joefazee/qrmenu/models"
)

func TestConfig_Validate(t *testing.T) {
	c := &Config{Host: "localhost", User: "menu", Database: "menu"}
	assert.ErrorIs(t, c.Validate(), models.ErrDatabaseCredentialNotConfigured)

	c.Password = "secret"
	assert.NoError(t, c.Validate())
}

func TestConfig_URL(t *testing.T) {
	c := &Config{Host: "db", Port: "5433", User: "menu", Password: "p@ss/word", Database: "qrmenu"}
	assert.Equal(t, "postgres://menu:p%40ss%2Fword@db:5433/qrmenu?sslmode=disable", c.URL())

	c.UseSSL = true
	assert.Contains(t, c.URL(), "sslmode=require")
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New(&Config{Host: "localhost"})
	assert.ErrorIs(t, err, models.ErrDatabaseCredentialNotConfigured)
}

func TestMigrate_NoPath(t *testing.T) {
	assert.Error(t, Migrate("", "postgres://x"))
}
