package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// Los valores numéricos que llegan como texto (variables de entorno) se
// parsean; si el texto no es un número se usa el valor por defecto, nunca 0.
func TestGetInt(t *testing.T) {
	v := viper.New()
	v.Set("db_port", "6543")
	v.Set("exp_minutes", 120)
	v.Set("bad_port", "abc")

	assert.Equal(t, 6543, getInt(v, "db_port", 5432))
	assert.Equal(t, 120, getInt(v, "exp_minutes", 60))
	assert.Equal(t, 5432, getInt(v, "bad_port", 5432), "texto no numérico cae al default")
	assert.Equal(t, 5432, getInt(v, "no_definido", 5432))
}

func TestGetString(t *testing.T) {
	v := viper.New()
	v.Set("app_name", "comercio-api")

	assert.Equal(t, "comercio-api", getString(v, "app_name", "otro"))
	assert.Equal(t, "otro", getString(v, "no_definido", "otro"))
}
