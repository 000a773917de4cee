package domain_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
)

func TestNewAllowedSet(t *testing.T) {
	tests := []struct {
		name       string
		values     []int
		wantValues []int
		wantErr    error
	}{
		{
			name:       "正常系: 複数の値で作成でき、昇順で返る",
			values:     []int{5, 3, 4},
			wantValues: []int{3, 4, 5},
		},
		{
			name:       "正常系: 重複は1つにまとめられる",
			values:     []int{0, 0, 2},
			wantValues: []int{0, 2},
		},
		{
			name:    "異常系: 空のスライスの場合、エラーが返る",
			values:  []int{},
			wantErr: domain.ErrEmptyAllowedSet,
		},
		{
			name:    "異常系: nilの場合、エラーが返る",
			values:  nil,
			wantErr: domain.ErrEmptyAllowedSet,
		},
		{
			name:    "異常系: 負の値を含む場合、エラーが返る",
			values:  []int{1, -1},
			wantErr: domain.ErrInvalidAllowedItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewAllowedSet(tt.values)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.wantValues, got.Values()); diff != "" {
				t.Errorf("Values() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAllowedSet_Contains(t *testing.T) {
	set, err := domain.NewAllowedSet([]int{3, 4, 5})
	if err != nil {
		t.Fatalf("NewAllowedSet() failed: %v", err)
	}

	tests := []struct {
		name  string
		value int
		want  bool
	}{
		{name: "正常系: 許可された値はtrue", value: 3, want: true},
		{name: "正常系: 許可された最大値はtrue", value: 5, want: true},
		{name: "異常系: 許可されていない値はfalse", value: 7, want: false},
		{name: "異常系: 0はfalse", value: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := set.Contains(tt.value); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
