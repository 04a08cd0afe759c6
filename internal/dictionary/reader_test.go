package dictionary

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"codeberg.org/snonux/wordbank/internal/testutil"
)

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, "dict.txt", "alpha\nbeta\n\ngamma\n")

	words, err := Load(fs, "dict.txt")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expected := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("Load = %v, want %v", words, expected)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Load(fs, "missing.txt")
	if err == nil {
		t.Error("Expected error for missing dictionary file")
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
		wantErr   string
	}{
		{
			name:      "valid dictionary",
			content:   "algorithm\nnode\nnodes\ntrie\n",
			wantCount: 4,
		},
		{
			name:      "empty file",
			content:   "",
			wantCount: 0,
		},
		{
			name:    "missing final newline",
			content: "alpha\nbeta",
			wantErr: "newline-terminated",
		},
		{
			name:    "uppercase line",
			content: "alpha\nBeta\n",
			wantErr: "uppercase",
		},
		{
			name:    "duplicate line",
			content: "alpha\nalpha\n",
			wantErr: "duplicates",
		},
		{
			name:    "out of order",
			content: "beta\nalpha\n",
			wantErr: "out of order",
		},
		{
			name:    "empty line",
			content: "alpha\n\nbeta\n",
			wantErr: "is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			testutil.WriteFile(t, fs, "dict.txt", tt.content)

			count, err := Verify(fs, "dict.txt")
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("Verify failed: %v", err)
			}
			if count != tt.wantCount {
				t.Errorf("Expected %d words, got %d", tt.wantCount, count)
			}
		})
	}
}

func TestVerifyMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Verify(fs, "missing.txt")
	if err == nil {
		t.Error("Expected error for missing dictionary file")
	}
}
