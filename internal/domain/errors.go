package domain

import "errors"

var (
	ErrCacheMiss = errors.New("cache miss")

	// ErrUnexpectedStatus は上流のステータスコードが期待値と異なる場合のエラー
	ErrUnexpectedStatus = errors.New("unexpected upstream status code")
	// ErrUnexpectedContentType は上流のContent-Typeが期待値と異なる場合のエラー
	ErrUnexpectedContentType = errors.New("unexpected upstream content type")
	// ErrUpstreamUnavailable は上流に到達できない、または応答を読み切れない場合のエラー
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
