package classify

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestLoadModels_MissingFilesFallBack(t *testing.T) {
	m, err := LoadModels(t.TempDir(), 16, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id, _ := m.Weapon.Classify(make([]float32, WeaponModel.Features)); id != 0 {
		t.Fatalf("fallback should answer 0, got %d", id)
	}
}

func TestLoadModels_RejectsWrongShape(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, WeaponModel.File), []byte(tinyWeights), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadModels(dir, 0, discardLogger()); err == nil {
		t.Fatalf("expected shape error")
	}
}

func TestLoadModels_LoadsMatchingShape(t *testing.T) {
	dir := t.TempDir()
	// 80 inputs, 1 hidden unit, 8 outputs
	var b []byte
	b = append(b, "WeightH1 = new float[]{"...)
	for i := 0; i < ButtonModel.Features; i++ {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, "0.0f"...)
	}
	b = append(b, "};\nWeightOut = new float[]{0f, 0f, 0f, 1f, 0f, 0f, 0f, 0f};\nBiasH1 = new float[]{0f};\nBiasOut = new float[]{0f, 0f, 0f, 0f, 0f, 0f, 0f, 0f};\n"...)
	if err := os.WriteFile(filepath.Join(dir, ButtonModel.File), b, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m, err := LoadModels(dir, 4, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id, _ := m.Buttons.Classify(make([]float32, ButtonModel.Features)); id != 3 {
		t.Fatalf("expected class 3, got %d", id)
	}
}
