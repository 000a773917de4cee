package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
)

func TestNewSessionID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{
			name:  "正常系: 空でない値で作成できる",
			value: "abcDEF123",
		},
		{
			name:    "異常系: 空文字列の場合、エラーが返る",
			value:   "",
			wantErr: domain.ErrEmptySessionID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewSessionID(tt.value)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.value, got.String()); diff != "" {
				t.Errorf("String() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCredentials_String(t *testing.T) {
	creds := domain.NewCredentials("admin", "super-secret")

	got := creds.String()

	if strings.Contains(got, "super-secret") {
		t.Errorf("String() should mask password, got %s", got)
	}
	if !strings.Contains(got, "admin") {
		t.Errorf("String() should contain account, got %s", got)
	}
	if creds.Password() != "super-secret" {
		t.Errorf("Password() = %s, want super-secret", creds.Password())
	}
}

func TestNewSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name: "正常系: JPEGデータで作成できる",
			data: []byte{0xff, 0xd8, 0xff, 0xe0},
		},
		{
			name:    "異常系: 空データの場合、エラーが返る",
			data:    []byte{},
			wantErr: domain.ErrEmptySnapshot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewSnapshot(tt.data, domain.JPEGContentType)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.data, got.Data()); diff != "" {
				t.Errorf("Data() mismatch (-want +got):\n%s", diff)
			}
			if got.ContentType() != domain.JPEGContentType {
				t.Errorf("ContentType() = %s, want %s", got.ContentType(), domain.JPEGContentType)
			}
			if got.Size() != len(tt.data) {
				t.Errorf("Size() = %d, want %d", got.Size(), len(tt.data))
			}
		})
	}
}
