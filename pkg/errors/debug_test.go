package errors

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestDumpPgxDiagnostics(t *testing.T) {
	cause := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uq_profiles_username",
		Detail:         "Key (username)=(john-doe) already exists.",
		Message:        "duplicate key value violates unique constraint",
	}
	dump := Dump(Wrap(CodeConflict, cause, "create profile"))

	if dump.Code != CodeConflict {
		t.Fatalf("expected conflict code, got %s", dump.Code)
	}
	if dump.PGCode != "23505" || dump.PGConstraint != "uq_profiles_username" {
		t.Fatalf("unexpected pg diagnostics %+v", dump)
	}
	if len(dump.Chain) < 2 {
		t.Fatalf("expected wrapped chain, got %v", dump.Chain)
	}
}

func TestDumpPqDiagnostics(t *testing.T) {
	cause := &pq.Error{
		Code:       "23505",
		Constraint: "uq_admin_accounts_email",
		Message:    "duplicate key value violates unique constraint",
	}
	dump := Dump(Wrap(CodeConflict, cause, "create admin"))

	if dump.PGCode != "23505" || dump.PGConstraint != "uq_admin_accounts_email" {
		t.Fatalf("unexpected pg diagnostics %+v", dump)
	}
}

func TestDumpPlainError(t *testing.T) {
	dump := Dump(errors.New("connection refused"))

	if dump.TopMessage != "connection refused" {
		t.Fatalf("unexpected top message %q", dump.TopMessage)
	}
	if dump.Code != "" || dump.PGCode != "" {
		t.Fatalf("plain errors must not carry code metadata, got %+v", dump)
	}

	empty := Dump(nil)
	if empty.TopMessage != "" || empty.Chain != nil {
		t.Fatalf("nil error must dump empty, got %+v", empty)
	}
}
