package domain

import (
	"context"
	"testing"
)

func TestSubjectRoundTrip(t *testing.T) {
	ctx := WithSubject(context.Background(), "64f0c0ffee")

	got, ok := SubjectFrom(ctx)
	if !ok || got != "64f0c0ffee" {
		t.Fatalf("expected subject 64f0c0ffee, got %q (ok=%v)", got, ok)
	}
}

func TestSubjectFrom_Missing(t *testing.T) {
	if _, ok := SubjectFrom(context.Background()); ok {
		t.Fatal("expected no subject on empty context")
	}
	if _, ok := SubjectFrom(WithSubject(context.Background(), "")); ok {
		t.Fatal("empty subject must not count as authenticated")
	}
}
