package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ID identificador de registro tal como lo envía el backend. El backend mezcla
// ids numéricos y de texto, por eso se acepta cualquiera de los dos y se guarda como texto.
type ID string

// UnmarshalJSON acepta 12, "12" o null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id inválido %s: %w", string(b), err)
	}
	*id = ID(n.String())
	return nil
}

// String implementa fmt.Stringer.
func (id ID) String() string { return string(id) }

// Int devuelve el id como entero (los formularios del backend esperan números).
func (id ID) Int() (int64, error) {
	return strconv.ParseInt(string(id), 10, 64)
}

// fechaLayouts formatos de texto que el backend usa para fechas.
var fechaLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

// epochMillis a partir de este valor un número se lee como milisegundos.
const epochMillis = 100_000_000_000

// Fecha fecha del backend. El valor cero es "sin fecha": un formato desconocido
// se trata como ausente para no invalidar el registro que la contiene.
type Fecha struct {
	time.Time
}

// UnmarshalJSON implementa json.Unmarshaler. Acepta texto en cualquiera de
// fechaLayouts o un timestamp Unix en segundos o milisegundos.
func (f *Fecha) UnmarshalJSON(b []byte) error {
	f.Time = time.Time{}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("fecha inválida %s: %w", string(b), err)
	}
	switch x := v.(type) {
	case string:
		for _, layout := range fechaLayouts {
			if t, err := time.Parse(layout, x); err == nil {
				f.Time = t
				return nil
			}
		}
	case float64:
		n := int64(x)
		if n > epochMillis || n < -epochMillis {
			f.Time = time.UnixMilli(n).UTC()
		} else if n != 0 {
			f.Time = time.Unix(n, 0).UTC()
		}
	}
	return nil
}

// MarshalJSON serializa en RFC3339, o null si no hay fecha.
func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Time.Format(time.RFC3339))
}

// Corta formato dd/mm/aaaa para tablas.
func (f Fecha) Corta() string {
	if f.IsZero() {
		return "—"
	}
	return f.Format("02/01/2006")
}
