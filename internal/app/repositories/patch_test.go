package repositories

import "testing"

func TestBuildSetClauseEmpty(t *testing.T) {
	clause, args := buildSetClause(nil, 2)
	if clause != "" || args != nil {
		t.Errorf("empty fields should produce empty clause, got %q with %v", clause, args)
	}
}

func TestBuildSetClauseSingle(t *testing.T) {
	clause, args := buildSetClause([]patchField{{"title", "Homework 1"}}, 2)
	if clause != "title = $2" {
		t.Errorf("clause = %q", clause)
	}
	if len(args) != 1 || args[0] != "Homework 1" {
		t.Errorf("args = %v", args)
	}
}

func TestBuildSetClauseMultiple(t *testing.T) {
	fields := []patchField{
		{"subject", "CS"},
		{"number", "493"},
		{"term", "fa26"},
	}

	clause, args := buildSetClause(fields, 2)
	if clause != "subject = $2, number = $3, term = $4" {
		t.Errorf("clause = %q", clause)
	}
	if len(args) != 3 || args[0] != "CS" || args[1] != "493" || args[2] != "fa26" {
		t.Errorf("args = %v", args)
	}
}
