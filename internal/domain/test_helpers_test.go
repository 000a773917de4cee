package domain_test

import (
	"testing"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
)

func NewTestSnapshotRequest(t *testing.T, cameraValue, profileValue int) domain.SnapshotRequest {
	t.Helper()

	camera, err := domain.NewCameraID(cameraValue)
	if err != nil {
		t.Fatalf("NewCameraID() failed: %v", err)
	}

	profile, err := domain.NewStreamProfile(profileValue)
	if err != nil {
		t.Fatalf("NewStreamProfile() failed: %v", err)
	}

	return domain.NewSnapshotRequest(camera, profile)
}
