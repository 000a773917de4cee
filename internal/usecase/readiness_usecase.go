package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrHealthCheckFailed はヘルスチェックが失敗したことを示すエラー
var ErrHealthCheckFailed = errors.New("health check failed")

// defaultCheckTimeout は個々のヘルスチェッカーに与える時間
const defaultCheckTimeout = 3 * time.Second

// HealthCheckResult は個々のヘルスチェック結果を表す
type HealthCheckResult struct {
	Name    string
	Healthy bool
	Error   error
}

// ReadinessUseCase はキャッシュバックエンドと上流WebAPIの疎通を確認するUseCase
type ReadinessUseCase struct {
	checkers     []HealthChecker
	checkTimeout time.Duration
}

func NewReadinessUseCase(checkers ...HealthChecker) *ReadinessUseCase {
	return &ReadinessUseCase{
		checkers:     checkers,
		checkTimeout: defaultCheckTimeout,
	}
}

// WithCheckTimeout は個々のチェッカーのタイムアウトを差し替えたコピーを返す
func (uc *ReadinessUseCase) WithCheckTimeout(timeout time.Duration) *ReadinessUseCase {
	return &ReadinessUseCase{
		checkers:     uc.checkers,
		checkTimeout: timeout,
	}
}

func (uc *ReadinessUseCase) Execute(ctx context.Context) error {
	_, err := uc.ExecuteDetails(ctx)
	return err
}

// ExecuteDetails はすべてのヘルスチェッカーを順に実行し、1つでも失敗した場合はエラーを返す
func (uc *ReadinessUseCase) ExecuteDetails(ctx context.Context) ([]HealthCheckResult, error) {
	results := make([]HealthCheckResult, 0, len(uc.checkers))
	var failed []string

	for _, checker := range uc.checkers {
		err := uc.check(ctx, checker)
		results = append(results, HealthCheckResult{
			Name:    checker.Name(),
			Healthy: err == nil,
			Error:   err,
		})
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", checker.Name(), err))
		}
	}

	if len(failed) > 0 {
		return results, fmt.Errorf("%w: %s", ErrHealthCheckFailed, strings.Join(failed, "; "))
	}
	return results, nil
}

func (uc *ReadinessUseCase) check(ctx context.Context, checker HealthChecker) error {
	checkCtx, cancel := context.WithTimeout(ctx, uc.checkTimeout)
	defer cancel()
	return checker.Check(checkCtx)
}
