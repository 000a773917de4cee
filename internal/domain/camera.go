package domain

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidCameraID      = errors.New("camera ID must be non-negative")
	ErrInvalidStreamProfile = errors.New("stream profile must be non-negative")
)

// CameraID はSurveillance Stationに登録されたカメラのIDを表す
type CameraID struct {
	value int
}

func NewCameraID(value int) (CameraID, error) {
	if value < 0 {
		return CameraID{}, ErrInvalidCameraID
	}
	return CameraID{value: value}, nil
}

func (c CameraID) Int() int {
	return c.value
}

func (c CameraID) String() string {
	return strconv.Itoa(c.value)
}

// StreamProfile はスナップショット取得時のストリームプロファイルを表す
// 0が高画質、2が低画質
type StreamProfile struct {
	value int
}

func NewStreamProfile(value int) (StreamProfile, error) {
	if value < 0 {
		return StreamProfile{}, ErrInvalidStreamProfile
	}
	return StreamProfile{value: value}, nil
}

func (p StreamProfile) Int() int {
	return p.value
}

func (p StreamProfile) String() string {
	return strconv.Itoa(p.value)
}
