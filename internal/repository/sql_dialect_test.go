package repository

import (
	"strings"
	"testing"
)

func TestJSONAsTextExprByDialect(t *testing.T) {
	cases := map[string]string{
		"sqlite":   "tags",
		"postgres": "CAST(tags AS TEXT)",
		"mysql":    "CAST(tags AS CHAR)",
	}
	for dialect, want := range cases {
		if got := jsonAsTextExprByDialect(dialect, "tags"); got != want {
			t.Fatalf("%s json text expr mismatch, want %s got %s", dialect, want, got)
		}
	}
}

func TestBuildLikeCondition(t *testing.T) {
	condition, argCount := buildLikeCondition(nil, []string{"name", "name_en", " "}, []string{"tags"})
	if argCount != 3 {
		t.Fatalf("arg count want 3 got %d", argCount)
	}
	if condition != "name LIKE ? OR name_en LIKE ? OR tags LIKE ?" {
		t.Fatalf("unexpected condition: %s", condition)
	}
}

func TestBuildLikeConditionPostgresUsesILike(t *testing.T) {
	condition, _ := buildLikeConditionByDialect("postgres", []string{"name"}, []string{"tags"})
	if !strings.Contains(condition, "name ILIKE ?") || !strings.Contains(condition, "CAST(tags AS TEXT) ILIKE ?") {
		t.Fatalf("postgres condition should use ILIKE, got %s", condition)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%test%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%test%" {
			t.Fatalf("args[%d] want %%test%% got %v", idx, arg)
		}
	}
}
