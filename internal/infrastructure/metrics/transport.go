package metrics

import (
	"context"
	"net/url"
	"time"

	"github.com/Gregy/synology-surveillance-get-image/internal/usecase"
)

const unknownAPI = "unknown"

// InstrumentedTransport は usecase.Transport の呼び出し回数と所要時間を記録する
type InstrumentedTransport struct {
	next    usecase.Transport
	metrics *Metrics
}

func NewInstrumentedTransport(next usecase.Transport, m *Metrics) *InstrumentedTransport {
	return &InstrumentedTransport{next: next, metrics: m}
}

func (t *InstrumentedTransport) Fetch(ctx context.Context, rawURL string, expectedStatus int, expectedContentType string) ([]byte, error) {
	api := apiLabel(rawURL)
	start := time.Now()

	body, err := t.next.Fetch(ctx, rawURL, expectedStatus, expectedContentType)

	t.metrics.upstreamDuration.WithLabelValues(api).Observe(time.Since(start).Seconds())
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	t.metrics.upstreamRequests.WithLabelValues(api, result).Inc()

	return body, err
}

// apiLabel はURLのapiクエリパラメータをラベルに使う
// パスワードやSIDを含むURL全体はラベルにしない
func apiLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return unknownAPI
	}
	if api := u.Query().Get("api"); api != "" {
		return api
	}
	return unknownAPI
}
