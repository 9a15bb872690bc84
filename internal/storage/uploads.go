package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sewamobil-backend/internal/domain"

	"github.com/google/uuid"
)

// MaxProofSize caps payment proof uploads at 5MB.
const MaxProofSize = 5 << 20

// Store saves payment proofs on local disk. Penyimpanan cloud bisa
// menggantikan ini lewat interface yang sama di handler.
type Store struct {
	Dir string
}

func NewStore(dir string) (Store, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Store{}, domain.InternalError{Msg: "gagal menyiapkan direktori upload", Err: err}
	}
	return Store{Dir: dir}, nil
}

// SaveProof validates and persists one payment proof, returning the
// stored reference (relative path).
func (s Store) SaveProof(originalName string, size int64, r io.Reader) (string, error) {
	if size > MaxProofSize {
		return "", domain.ValidationError{Field: "file", Msg: "ukuran file terlalu besar, maksimal 5MB"}
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".pdf", ".webp":
	default:
		return "", domain.ValidationError{Field: "file", Msg: "tipe file harus gambar atau PDF"}
	}

	name := fmt.Sprintf("proof-%s%s", uuid.New().String(), ext)
	path := filepath.Join(s.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", domain.InternalError{Msg: "gagal menyimpan file", Err: err}
	}
	defer f.Close()

	// Guard against clients lying about Content-Length.
	n, err := io.Copy(f, io.LimitReader(r, MaxProofSize+1))
	if err != nil {
		_ = os.Remove(path)
		return "", domain.InternalError{Msg: "gagal menulis file", Err: err}
	}
	if n > MaxProofSize {
		_ = os.Remove(path)
		return "", domain.ValidationError{Field: "file", Msg: "ukuran file terlalu besar, maksimal 5MB"}
	}

	return filepath.ToSlash(filepath.Join(s.Dir, name)), nil
}
