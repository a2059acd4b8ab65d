package mocks

import (
	"context"

	"github.com/airbusgeo/geotransform/interface/storage"
	"github.com/stretchr/testify/mock"
)

type Strategy struct {
	mock.Mock
}

func (_m *Strategy) Download(ctx context.Context, uri string, options ...storage.Option) ([]byte, error) {
	ret := _m.Called(ctx, uri)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(context.Context, string) []byte); ok {
		r0 = rf(ctx, uri)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, uri)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

func (_m *Strategy) Upload(ctx context.Context, uri string, data []byte, options ...storage.Option) error {
	ret := _m.Called(ctx, uri, data)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, []byte) error); ok {
		r0 = rf(ctx, uri, data)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *Strategy) Delete(ctx context.Context, uri string, options ...storage.Option) error {
	ret := _m.Called(ctx, uri)
	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, uri)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *Strategy) Exist(ctx context.Context, uri string) (bool, error) {
	ret := _m.Called(ctx, uri)
	return ret.Bool(0), ret.Error(1)
}
