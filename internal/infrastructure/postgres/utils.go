package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// jsonField devuelve la expresión SQL que extrae un campo del body como texto.
// El nombre del campo viene del caller (no del cliente directo en rutas de
// escritura), pero igual se escapan comillas simples por si un handler expone
// el campo de orden o filtro.
func jsonField(field string) string {
	return "body->>'" + strings.ReplaceAll(field, "'", "''") + "'"
}
