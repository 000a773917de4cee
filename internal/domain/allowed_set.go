package domain

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmptyAllowedSet    = errors.New("allowed set cannot be empty")
	ErrInvalidAllowedItem = errors.New("allowed set item must be non-negative")
)

// AllowedSet はHTTP境界で受け付ける整数パラメータの許可リスト
type AllowedSet struct {
	values map[int]struct{}
}

func NewAllowedSet(values []int) (*AllowedSet, error) {
	if len(values) == 0 {
		return nil, ErrEmptyAllowedSet
	}

	m := make(map[int]struct{}, len(values))
	for _, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidAllowedItem, v)
		}
		m[v] = struct{}{}
	}

	return &AllowedSet{values: m}, nil
}

func (a *AllowedSet) Contains(v int) bool {
	_, ok := a.values[v]
	return ok
}

func (a *AllowedSet) Values() []int {
	result := make([]int, 0, len(a.values))
	for v := range a.values {
		result = append(result, v)
	}
	sort.Ints(result)
	return result
}
