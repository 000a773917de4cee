//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshotEndpoint_Get(t *testing.T) {
	client := newHTTPClient()

	fetch := func(t *testing.T) []byte {
		t.Helper()
		resp, err := client.Get(GetSnapshotEndpoint(GetTestCamera(), GetTestProfile()))
		if err != nil {
			t.Fatalf("HTTPリクエストに失敗しました: %v", err)
		}
		defer func() { _ = resp.Body.Close() }()

		if diff := cmp.Diff(http.StatusOK, resp.StatusCode); diff != "" {
			t.Fatalf("ステータスコードが一致しません (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff("image/jpeg", resp.Header.Get("Content-Type")); diff != "" {
			t.Errorf("Content-Typeが一致しません (-want +got):\n%s", diff)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("レスポンスボディの読み取りに失敗しました: %v", err)
		}
		if len(body) == 0 {
			t.Fatal("レスポンスボディが空です")
		}
		return body
	}

	first := fetch(t)
	// TTL内の2回目はキャッシュから同じ画像が返る
	second := fetch(t)
	if !bytes.Equal(first, second) {
		t.Errorf("キャッシュ期間内に異なる画像が返りました (%d bytes, %d bytes)", len(first), len(second))
	}
}

func TestSnapshotEndpoint_InvalidParameters(t *testing.T) {
	tests := []struct {
		name    string
		camera  string
		profile string
	}{
		{name: "異常系: 許可されていないカメラ", camera: "7", profile: "0"},
		{name: "異常系: 許可されていないプロファイル", camera: "3", profile: "9"},
		{name: "異常系: 数値でないカメラ", camera: "front", profile: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newHTTPClient().Get(GetSnapshotEndpoint(tt.camera, tt.profile))
			if err != nil {
				t.Fatalf("HTTPリクエストに失敗しました: %v", err)
			}
			defer func() { _ = resp.Body.Close() }()

			if diff := cmp.Diff(http.StatusBadRequest, resp.StatusCode); diff != "" {
				t.Errorf("ステータスコードが一致しません (-want +got):\n%s", diff)
			}

			var got map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatalf("JSONのパースに失敗しました: %v", err)
			}
			if got["message"] == "" {
				t.Error("messageフィールドが空です")
			}
		})
	}
}

func TestMetricsEndpoint_Get(t *testing.T) {
	resp, err := newHTTPClient().Get(GetMetricsEndpoint())
	if err != nil {
		t.Fatalf("HTTPリクエストに失敗しました: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if diff := cmp.Diff(http.StatusOK, resp.StatusCode); diff != "" {
		t.Errorf("ステータスコードが一致しません (-want +got):\n%s", diff)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("レスポンスボディの読み取りに失敗しました: %v", err)
	}
	for _, name := range []string{"snapshot_proxy_upstream_requests_total", "snapshot_proxy_cache_requests_total"} {
		if !strings.Contains(string(body), name) {
			t.Errorf("メトリクス %q が出力されていません", name)
		}
	}
}
