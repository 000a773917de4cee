package cache_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
	"github.com/Gregy/synology-surveillance-get-image/internal/infrastructure/cache"
)

func mustNewSnapshotRequest(t *testing.T, camera, profile int) domain.SnapshotRequest {
	t.Helper()
	cam, err := domain.NewCameraID(camera)
	if err != nil {
		t.Fatalf("failed to create CameraID: %v", err)
	}
	prof, err := domain.NewStreamProfile(profile)
	if err != nil {
		t.Fatalf("failed to create StreamProfile: %v", err)
	}
	return domain.NewSnapshotRequest(cam, prof)
}

func TestKeyGenerator(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{
			name:   "正常系: 既定のプレフィックスでキーが生成される",
			prefix: cache.DefaultKeyPrefix,
			want:   []string{"synology:APIInfo", "synology:SID", "synology:Snap_3_0"},
		},
		{
			name:   "正常系: プレフィックスなしでもキーが生成される",
			prefix: "",
			want:   []string{"APIInfo", "SID", "Snap_3_0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := cache.NewKeyGenerator(tt.prefix)
			got := []string{
				g.APIInfoKey(),
				g.SessionKey(),
				g.SnapshotKey(mustNewSnapshotRequest(t, 3, 0)),
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKeyGenerator_SnapshotKey_DistinctPerSlot(t *testing.T) {
	g := cache.NewKeyGenerator(cache.DefaultKeyPrefix)

	seen := make(map[string]struct{})
	for _, camera := range []int{3, 4, 5} {
		for _, profile := range []int{0, 1, 2} {
			key := g.SnapshotKey(mustNewSnapshotRequest(t, camera, profile))
			if _, ok := seen[key]; ok {
				t.Fatalf("duplicate snapshot key %q", key)
			}
			seen[key] = struct{}{}
		}
	}
}

func TestConfig_SnapshotTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
		want time.Duration
	}{
		{name: "正常系: 指定したTTLが返る", ttl: 30 * time.Second, want: 30 * time.Second},
		{name: "エッジケース: 0の場合は既定値が返る", ttl: 0, want: cache.DefaultSnapshotTTL},
		{name: "エッジケース: 負の場合は既定値が返る", ttl: -time.Second, want: cache.DefaultSnapshotTTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cache.NewConfig(tt.ttl).SnapshotTTL(); got != tt.want {
				t.Errorf("SnapshotTTL() = %v, want %v", got, tt.want)
			}
		})
	}
}
