package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/resmaker/internal/ports/primary"
	"github.com/example/resmaker/internal/ports/secondary"
)

// mockHistoryService implements primary.HistoryService for testing
type mockHistoryService struct {
	generations []*primary.Generation
	listErr     error
	lastLimit   int
}

func (m *mockHistoryService) ListGenerations(ctx context.Context, limit int) ([]*primary.Generation, error) {
	m.lastLimit = limit
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.generations, nil
}

func (m *mockHistoryService) GetGeneration(ctx context.Context, id string) (*primary.Generation, error) {
	for _, g := range m.generations {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func sampleGeneration() *primary.Generation {
	return &primary.Generation{
		ID:            "GEN-007",
		GroupName:     "ComboOrders",
		FileName:      "combo_orders",
		VersionToken:  "20250108.1626",
		KeyCount:      2,
		QualifiedKeys: []string{"ComboOrders.ChooseCombo", "ComboOrders.Confirm"},
		UpDigest:      "a1b2c3d4e5f60718",
		DownDigest:    "0817f6e5d4c3b2a1",
		Archived:      true,
		CreatedAt:     "2025-01-08T16:26:59Z",
	}
}

func TestHistoryAdapter_ListEmpty(t *testing.T) {
	var out bytes.Buffer
	adapter := NewHistoryAdapter(&mockHistoryService{}, &out)

	if _, err := adapter.List(context.Background(), 10); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), "No generations recorded.") {
		t.Errorf("expected empty message, got: %s", out.String())
	}
}

func TestHistoryAdapter_List(t *testing.T) {
	var out bytes.Buffer
	mock := &mockHistoryService{generations: []*primary.Generation{sampleGeneration()}}
	adapter := NewHistoryAdapter(mock, &out)

	if _, err := adapter.List(context.Background(), 5); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mock.lastLimit != 5 {
		t.Errorf("limit = %d, want 5", mock.lastLimit)
	}
	output := out.String()
	for _, w := range []string{"ID", "GEN-007", "ComboOrders", "20250108.1626"} {
		if !strings.Contains(output, w) {
			t.Errorf("expected %q in output: %s", w, output)
		}
	}
	// Missing operator renders as a dash.
	if !strings.Contains(output, " - ") {
		t.Errorf("expected dash for empty operator: %s", output)
	}
}

func TestHistoryAdapter_ListError(t *testing.T) {
	var out bytes.Buffer
	adapter := NewHistoryAdapter(&mockHistoryService{listErr: errors.New("locked")}, &out)

	if _, err := adapter.List(context.Background(), 0); err == nil {
		t.Fatal("expected error")
	}
}

func TestHistoryAdapter_Show(t *testing.T) {
	var out bytes.Buffer
	adapter := NewHistoryAdapter(&mockHistoryService{generations: []*primary.Generation{sampleGeneration()}}, &out)

	if _, err := adapter.Show(context.Background(), "GEN-007"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	output := out.String()
	for _, w := range []string{"GEN-007", "combo_orders (zip)", "Keys (2):", "ComboOrders.Confirm", "a1b2c3d4e5f60718"} {
		if !strings.Contains(output, w) {
			t.Errorf("expected %q in output: %s", w, output)
		}
	}
}

func TestHistoryAdapter_ShowNotFound(t *testing.T) {
	var out bytes.Buffer
	adapter := NewHistoryAdapter(&mockHistoryService{}, &out)

	_, err := adapter.Show(context.Background(), "GEN-404")
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
