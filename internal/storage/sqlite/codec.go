package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	apperrors "github.com/julianstephens/lifelog/internal/errors"
)

// encodeJSON serializes list/struct columns stored as JSON text. A nil slice
// encodes as "[]" via the zero-value fallback at the call sites.
func encodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode column: %w", err)
	}
	return string(data), nil
}

func decodeJSON(data string, v any) error {
	if data == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("failed to decode column: %w", err)
	}
	return nil
}

// notFound rewrites the driver's no-rows error into the shared sentinel.
func notFound(err error, entity, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(entity, id)
	}
	return err
}

// requireRows turns a zero-row UPDATE/DELETE into a not-found error.
func requireRows(result sql.Result, entity, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound(entity, id)
	}
	return nil
}
