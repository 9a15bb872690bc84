package storage

import (
	"os"
	"strings"
	"testing"

	"sewamobil-backend/internal/domain"
)

func TestSaveProofStoresFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	body := strings.NewReader("bukti transfer")
	ref, err := store.SaveProof("bukti.jpg", int64(body.Len()), body)
	if err != nil {
		t.Fatalf("SaveProof error: %v", err)
	}
	if !strings.HasSuffix(ref, ".jpg") || !strings.Contains(ref, "proof-") {
		t.Fatalf("reference format: %q", ref)
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "bukti transfer" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestSaveProofRejectsBadExtension(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	_, err = store.SaveProof("virus.exe", 10, strings.NewReader("x"))
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSaveProofRejectsOversize(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	_, err = store.SaveProof("besar.png", MaxProofSize+1, strings.NewReader("x"))
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
