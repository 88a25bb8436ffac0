package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/conanhost/internal/boundaries/out"
)

// MockMetadataStore is a mock implementation of the MetadataStore port
type MockMetadataStore struct {
	mock.Mock
}

type MockMetadataStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMetadataStore) EXPECT() *MockMetadataStore_Expecter {
	return &MockMetadataStore_Expecter{mock: &_m.Mock}
}

// Close provides a mock function with given fields: 
func (_m *MockMetadataStore) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockMetadataStore_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockMetadataStore_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockMetadataStore_Expecter) Close() *MockMetadataStore_Close_Call {
	return &MockMetadataStore_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockMetadataStore_Close_Call) Run(run func()) *MockMetadataStore_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockMetadataStore_Close_Call) Return(_a0 error) *MockMetadataStore_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockMetadataStore_Close_Call) RunAndReturn(run func() error) *MockMetadataStore_Close_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, fn
func (_m *MockMetadataStore) Update(ctx context.Context, fn func(out.StorageTx) error) error {
	ret := _m.Called(ctx, fn)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, func(out.StorageTx) error) error); ok {
		r0 = rf(ctx, fn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockMetadataStore_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockMetadataStore_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - fn func(out.StorageTx) error
func (_e *MockMetadataStore_Expecter) Update(ctx interface{}, fn interface{}) *MockMetadataStore_Update_Call {
	return &MockMetadataStore_Update_Call{Call: _e.mock.On("Update", ctx, fn)}
}

func (_c *MockMetadataStore_Update_Call) Run(run func(ctx context.Context, fn func(out.StorageTx) error)) *MockMetadataStore_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(func(out.StorageTx) error))
	})
	return _c
}

func (_c *MockMetadataStore_Update_Call) Return(_a0 error) *MockMetadataStore_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockMetadataStore_Update_Call) RunAndReturn(run func(context.Context, func(out.StorageTx) error) error) *MockMetadataStore_Update_Call {
	_c.Call.Return(run)
	return _c
}

// View provides a mock function with given fields: ctx, fn
func (_m *MockMetadataStore) View(ctx context.Context, fn func(out.StorageTx) error) error {
	ret := _m.Called(ctx, fn)

	if len(ret) == 0 {
		panic("no return value specified for View")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, func(out.StorageTx) error) error); ok {
		r0 = rf(ctx, fn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockMetadataStore_View_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'View'
type MockMetadataStore_View_Call struct {
	*mock.Call
}

// View is a helper method to define mock.On call
//   - ctx context.Context
//   - fn func(out.StorageTx) error
func (_e *MockMetadataStore_Expecter) View(ctx interface{}, fn interface{}) *MockMetadataStore_View_Call {
	return &MockMetadataStore_View_Call{Call: _e.mock.On("View", ctx, fn)}
}

func (_c *MockMetadataStore_View_Call) Run(run func(ctx context.Context, fn func(out.StorageTx) error)) *MockMetadataStore_View_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(func(out.StorageTx) error))
	})
	return _c
}

func (_c *MockMetadataStore_View_Call) Return(_a0 error) *MockMetadataStore_View_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockMetadataStore_View_Call) RunAndReturn(run func(context.Context, func(out.StorageTx) error) error) *MockMetadataStore_View_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockMetadataStore creates a new instance of MockMetadataStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMetadataStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMetadataStore {
	mock := &MockMetadataStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
