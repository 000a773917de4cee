package domain_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
)

func TestAPIInfo_Path(t *testing.T) {
	info := domain.NewAPIInfo(map[string]domain.APIEntry{
		domain.APINameAuth:   {Path: "auth.cgi", MinVersion: 1, MaxVersion: 7},
		domain.APINameCamera: {Path: "entry.cgi", MinVersion: 1, MaxVersion: 9},
		"SYNO.Broken":        {Path: ""},
	})

	tests := []struct {
		name    string
		api     string
		want    string
		wantErr error
	}{
		{
			name: "正常系: 認証APIのパスを返す",
			api:  domain.APINameAuth,
			want: "auth.cgi",
		},
		{
			name: "正常系: カメラAPIのパスを返す",
			api:  domain.APINameCamera,
			want: "entry.cgi",
		},
		{
			name:    "異常系: 存在しないAPIの場合、ErrAPINotFoundが返る",
			api:     "SYNO.Unknown",
			wantErr: domain.ErrAPINotFound,
		},
		{
			name:    "異常系: パスが空のAPIの場合、ErrAPINotFoundが返る",
			api:     "SYNO.Broken",
			wantErr: domain.ErrAPINotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := info.Path(tt.api)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Path() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewAPIInfo_IsImmutable(t *testing.T) {
	source := map[string]domain.APIEntry{
		domain.APINameAuth: {Path: "auth.cgi"},
	}
	info := domain.NewAPIInfo(source)

	source[domain.APINameAuth] = domain.APIEntry{Path: "changed.cgi"}
	entries := info.Entries()
	entries[domain.APINameCamera] = domain.APIEntry{Path: "entry.cgi"}

	got, err := info.Path(domain.APINameAuth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff("auth.cgi", got); diff != "" {
		t.Errorf("Path() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(1, info.Len()); diff != "" {
		t.Errorf("Len() mismatch (-want +got):\n%s", diff)
	}
}
