package domain

import (
	"errors"
	"fmt"
)

const (
	APINameInfo   = "SYNO.API.Info"
	APINameAuth   = "SYNO.API.Auth"
	APINameCamera = "SYNO.SurveillanceStation.Camera"
)

var ErrAPINotFound = errors.New("API not found in API info")

// RequiredAPINames はスナップショット取得に必要なAPI名の一覧を返す
func RequiredAPINames() []string {
	return []string{APINameAuth, APINameCamera}
}

// APIEntry は1つのAPIについてSYNO.API.Infoが返すパス情報
type APIEntry struct {
	Path       string `json:"path"`
	MinVersion int    `json:"minVersion"`
	MaxVersion int    `json:"maxVersion"`
}

// APIInfo はAPI名から相対パスへの対応表。生成後は変更しない
type APIInfo struct {
	entries map[string]APIEntry
}

func NewAPIInfo(entries map[string]APIEntry) APIInfo {
	copied := make(map[string]APIEntry, len(entries))
	for name, entry := range entries {
		copied[name] = entry
	}
	return APIInfo{entries: copied}
}

// Path は指定されたAPIの相対パスを返す
func (a APIInfo) Path(name string) (string, error) {
	entry, ok := a.entries[name]
	if !ok || entry.Path == "" {
		return "", fmt.Errorf("%w: %s", ErrAPINotFound, name)
	}
	return entry.Path, nil
}

func (a APIInfo) Entries() map[string]APIEntry {
	copied := make(map[string]APIEntry, len(a.entries))
	for name, entry := range a.entries {
		copied[name] = entry
	}
	return copied
}

func (a APIInfo) Len() int {
	return len(a.entries)
}
