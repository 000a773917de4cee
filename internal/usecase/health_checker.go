//go:generate mockgen -source=$GOFILE -destination=../mocks/usecase/mock_health_checker.go -package=mock_usecase
package usecase

import (
	"context"
)

type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
