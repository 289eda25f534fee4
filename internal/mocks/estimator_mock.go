// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/tileworks/tile-estimator/internal/domain/model"
)

type MockEstimator struct {
	mock.Mock
}

func (m *MockEstimator) Estimate(rooms []model.RoomInput) (model.EstimateResult, error) {
	args := m.Called(rooms)
	return args.Get(0).(model.EstimateResult), args.Error(1)
}
