package usecase

import "errors"

var (
	// ErrDiscoveryFailed はSYNO.API.Infoが失敗を返した場合のエラー
	ErrDiscoveryFailed = errors.New("API discovery failed")

	// ErrAuthenticationFailed はログインAPIが失敗を返した場合のエラーです
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidParameters はカメラIDやプロファイルが許可されていない場合のエラーです
	ErrInvalidParameters = errors.New("unsupported parameters")

	// ErrCacheOperation はキャッシュの操作に失敗した場合のエラー
	ErrCacheOperation = errors.New("failed to operate cache")

	// ErrEmptySnapshot は上流が空の画像を返した場合のエラー
	ErrEmptySnapshot = errors.New("upstream returned empty snapshot")
)
