package document

import (
	"encoding/base64"
	"encoding/json"

	"github.com/jortega/comercio-api/internal/domain"
)

// Cursor es la posición de reanudación de una consulta paginada: el valor de
// ordenamiento y el id del último registro de la página anterior. Viaja hacia
// el cliente como un token opaco (base64 url-safe); el cliente no debe
// interpretarlo ni construirlo.
type Cursor struct {
	SortValue string `json:"v"`
	ID        string `json:"id"`
}

// Encode serializa el cursor como token opaco.
func (c Cursor) Encode() string {
	b, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeCursor reconstruye un cursor desde su token. Un token malformado
// devuelve ErrInvalidCursor (el cliente envió algo que no produjimos).
func DecodeCursor(token string) (Cursor, error) {
	var c Cursor
	if token == "" {
		return c, domain.ErrInvalidCursor
	}
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return c, domain.ErrInvalidCursor
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, domain.ErrInvalidCursor
	}
	if c.ID == "" {
		return c, domain.ErrInvalidCursor
	}
	return c, nil
}
