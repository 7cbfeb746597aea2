package repositories

import (
	"fmt"
	"strings"
)

// patchField pairs a column name with its new value.
type patchField struct {
	column string
	value  interface{}
}

// buildSetClause renders a SET clause from patch fields. Placeholders start
// at $startIdx so callers can prepend their own arguments (typically the id).
// Returns an empty clause when no fields are present.
func buildSetClause(fields []patchField, startIdx int) (string, []interface{}) {
	if len(fields) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields))
	for i, f := range fields {
		parts = append(parts, fmt.Sprintf("%s = $%d", f.column, startIdx+i))
		args = append(args, f.value)
	}

	return strings.Join(parts, ", "), args
}
