package services

import (
	"context"
	"testing"
)

func TestSeriesIDRoundTrip(t *testing.T) {
	ctx := WithSeriesID(context.Background(), "GRMG8ZQZR")
	id, ok := SeriesIDFromContext(ctx)
	if !ok || id != "GRMG8ZQZR" {
		t.Fatalf("SeriesIDFromContext = %q, %v", id, ok)
	}
}

func TestEmptyValuesNotStored(t *testing.T) {
	ctx := context.Background()
	if WithSeriesID(ctx, "") != ctx {
		t.Error("empty series id should not allocate a new context")
	}
	if WithOperation(ctx, "") != ctx {
		t.Error("empty operation should not allocate a new context")
	}
	if WithRequestID(ctx, "") != ctx {
		t.Error("empty request id should not allocate a new context")
	}
}

func TestMissingValues(t *testing.T) {
	ctx := context.Background()
	if _, ok := SeriesIDFromContext(ctx); ok {
		t.Error("expected no series id")
	}
	if _, ok := OperationFromContext(ctx); ok {
		t.Error("expected no operation")
	}
	if _, ok := RequestIDFromContext(ctx); ok {
		t.Error("expected no request id")
	}
}
