package ctxutil

import (
	"context"
	"testing"
)

func TestOperatorFromContext(t *testing.T) {
	ctx := context.Background()
	if got := OperatorFromContext(ctx); got != "" {
		t.Errorf("OperatorFromContext(empty) = %q, want empty", got)
	}

	ctx = WithOperator(ctx, "maria")
	if got := OperatorFromContext(ctx); got != "maria" {
		t.Errorf("OperatorFromContext() = %q, want %q", got, "maria")
	}
}
