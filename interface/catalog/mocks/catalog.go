package mocks

import (
	"context"

	"github.com/airbusgeo/geotransform/internal/geotransform"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type Catalog struct {
	mock.Mock
}

func (_m *Catalog) Put(ctx context.Context, fit *geotransform.Fit) error {
	ret := _m.Called(ctx, fit)
	return ret.Error(0)
}

func (_m *Catalog) Get(ctx context.Context, id uuid.UUID) (*geotransform.Fit, error) {
	ret := _m.Called(ctx, id)

	var r0 *geotransform.Fit
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *geotransform.Fit); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*geotransform.Fit)
	}
	return r0, ret.Error(1)
}

func (_m *Catalog) List(ctx context.Context) ([]*geotransform.Fit, error) {
	ret := _m.Called(ctx)

	var r0 []*geotransform.Fit
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*geotransform.Fit)
	}
	return r0, ret.Error(1)
}

func (_m *Catalog) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *Catalog) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}
