package services

import (
	"encoding/json"
	"strings"

	"github.com/kaanb/courseboard/internal/app/models"
)

// rosterHeader is the first line of every roster export.
const rosterHeader = `"id","name","email"`

// ProjectRosterCSV renders the enrolled students as CSV text, one header line
// plus one line per student. Every value, numeric ids included, is emitted as
// a JSON string literal, which double-quotes the value and escapes any
// embedded quotes or control characters. An empty roster projects to an empty
// string with no header.
func ProjectRosterCSV(students []*models.User) string {
	if len(students) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(rosterHeader)
	b.WriteByte('\n')

	for _, student := range students {
		b.WriteString(jsonQuote(student.ID))
		b.WriteByte(',')
		b.WriteString(jsonQuote(student.Name))
		b.WriteByte(',')
		b.WriteString(jsonQuote(student.Email))
		b.WriteByte('\n')
	}

	return b.String()
}

// jsonQuote renders a value as a JSON string literal.
func jsonQuote(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		raw, _ := json.Marshal(v)
		s = string(raw)
	}
	quoted, _ := json.Marshal(s)
	return string(quoted)
}
