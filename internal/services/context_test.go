package services

import (
	"context"
	"testing"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	if _, ok := RunIDFromContext(ctx); ok {
		t.Fatal("expected no run id on empty context")
	}

	ctx = WithRunID(ctx, "run-1")
	ctx = WithStage(ctx, "preprocess")
	ctx = WithBook(ctx, "/books/alpha")

	if id, ok := RunIDFromContext(ctx); !ok || id != "run-1" {
		t.Fatalf("unexpected run id %q (%v)", id, ok)
	}
	if stage, ok := StageFromContext(ctx); !ok || stage != "preprocess" {
		t.Fatalf("unexpected stage %q (%v)", stage, ok)
	}
	if book, ok := BookFromContext(ctx); !ok || book != "/books/alpha" {
		t.Fatalf("unexpected book %q (%v)", book, ok)
	}
}

func TestEmptyValuesLeaveContextUntouched(t *testing.T) {
	base := context.Background()
	if WithRunID(base, "") != base {
		t.Fatal("expected empty run id to return original context")
	}
	if WithStage(base, "") != base {
		t.Fatal("expected empty stage to return original context")
	}
	if WithBook(base, "") != base {
		t.Fatal("expected empty book to return original context")
	}
}
