//go:build e2e

// Package e2e は起動済みのスナップショットプロキシに対するE2Eテストを提供します
// 接続先は E2E_TEST_ENDPOINT、確認するカメラとプロファイルは E2E_TEST_CAMERA / E2E_TEST_PROFILE で指定します
package e2e

import (
	"fmt"
	"net/http"
	"os"
	"time"
)

const requestTimeout = 30 * time.Second

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetBaseEndpoint はテスト対象のベースURLを返します
func GetBaseEndpoint() string {
	return getEnvOrDefault("E2E_TEST_ENDPOINT", "http://localhost:8080")
}

func GetHealthzEndpoint() string {
	return fmt.Sprintf("%s/healthz", GetBaseEndpoint())
}

func GetReadyzEndpoint() string {
	return fmt.Sprintf("%s/readyz", GetBaseEndpoint())
}

func GetMetricsEndpoint() string {
	return fmt.Sprintf("%s/metrics", GetBaseEndpoint())
}

// GetSnapshotEndpoint は camera と profile を指定した /snapshot のURLを返します
func GetSnapshotEndpoint(camera, profile string) string {
	return fmt.Sprintf("%s/snapshot?camera=%s&profile=%s", GetBaseEndpoint(), camera, profile)
}

// GetTestCamera は実機で有効なカメラIDを返します
func GetTestCamera() string {
	return getEnvOrDefault("E2E_TEST_CAMERA", "3")
}

// GetTestProfile は実機で有効なプロファイルを返します
func GetTestProfile() string {
	return getEnvOrDefault("E2E_TEST_PROFILE", "0")
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}
