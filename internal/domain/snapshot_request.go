package domain

// SnapshotRequest はスナップショットのキャッシュスロットを識別する
type SnapshotRequest struct {
	camera  CameraID
	profile StreamProfile
}

func NewSnapshotRequest(camera CameraID, profile StreamProfile) SnapshotRequest {
	return SnapshotRequest{
		camera:  camera,
		profile: profile,
	}
}

func (r SnapshotRequest) Camera() CameraID {
	return r.camera
}

func (r SnapshotRequest) Profile() StreamProfile {
	return r.profile
}

// SlotName はカメラIDとプロファイルから決定的に導出されるスロット名を返す
func (r SnapshotRequest) SlotName() string {
	return r.camera.String() + "_" + r.profile.String()
}
