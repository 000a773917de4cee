package domain

import "errors"

const JPEGContentType = "image/jpeg"

var ErrEmptySnapshot = errors.New("snapshot data cannot be empty")

// Snapshot はカメラから取得した1枚の静止画
type Snapshot struct {
	data        []byte
	contentType string
}

func NewSnapshot(data []byte, contentType string) (*Snapshot, error) {
	if len(data) == 0 {
		return nil, ErrEmptySnapshot
	}
	return &Snapshot{
		data:        data,
		contentType: contentType,
	}, nil
}

func (s *Snapshot) Data() []byte {
	return s.data
}

func (s *Snapshot) ContentType() string {
	return s.contentType
}

func (s *Snapshot) Size() int {
	return len(s.data)
}
