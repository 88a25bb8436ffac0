package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/conanhost/internal/boundaries/out"
	"github.com/bnema/conanhost/internal/domain"
)

// MockBlobStore is a mock implementation of the BlobStore port
type MockBlobStore struct {
	mock.Mock
}

type MockBlobStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBlobStore) EXPECT() *MockBlobStore_Expecter {
	return &MockBlobStore_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: ctx, ref
func (_m *MockBlobStore) Get(ctx context.Context, ref domain.BlobRef) (out.Blob, error) {
	ret := _m.Called(ctx, ref)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 out.Blob
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.BlobRef) (out.Blob, error)); ok {
		return rf(ctx, ref)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.BlobRef) out.Blob); ok {
		r0 = rf(ctx, ref)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(out.Blob)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.BlobRef) error); ok {
		r1 = rf(ctx, ref)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBlobStore_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockBlobStore_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - ref domain.BlobRef
func (_e *MockBlobStore_Expecter) Get(ctx interface{}, ref interface{}) *MockBlobStore_Get_Call {
	return &MockBlobStore_Get_Call{Call: _e.mock.On("Get", ctx, ref)}
}

func (_c *MockBlobStore_Get_Call) Run(run func(ctx context.Context, ref domain.BlobRef)) *MockBlobStore_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.BlobRef))
	})
	return _c
}

func (_c *MockBlobStore_Get_Call) Return(_a0 out.Blob, _a1 error) *MockBlobStore_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBlobStore_Get_Call) RunAndReturn(run func(context.Context, domain.BlobRef) (out.Blob, error)) *MockBlobStore_Get_Call {
	_c.Call.Return(run)
	return _c
}

// Put provides a mock function with given fields: ctx, r, algorithms
func (_m *MockBlobStore) Put(ctx context.Context, r io.Reader, algorithms []domain.HashAlgorithm) (domain.BlobInfo, error) {
	ret := _m.Called(ctx, r, algorithms)

	if len(ret) == 0 {
		panic("no return value specified for Put")
	}

	var r0 domain.BlobInfo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, io.Reader, []domain.HashAlgorithm) (domain.BlobInfo, error)); ok {
		return rf(ctx, r, algorithms)
	}
	if rf, ok := ret.Get(0).(func(context.Context, io.Reader, []domain.HashAlgorithm) domain.BlobInfo); ok {
		r0 = rf(ctx, r, algorithms)
	} else {
		r0 = ret.Get(0).(domain.BlobInfo)
	}

	if rf, ok := ret.Get(1).(func(context.Context, io.Reader, []domain.HashAlgorithm) error); ok {
		r1 = rf(ctx, r, algorithms)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBlobStore_Put_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Put'
type MockBlobStore_Put_Call struct {
	*mock.Call
}

// Put is a helper method to define mock.On call
//   - ctx context.Context
//   - r io.Reader
//   - algorithms []domain.HashAlgorithm
func (_e *MockBlobStore_Expecter) Put(ctx interface{}, r interface{}, algorithms interface{}) *MockBlobStore_Put_Call {
	return &MockBlobStore_Put_Call{Call: _e.mock.On("Put", ctx, r, algorithms)}
}

func (_c *MockBlobStore_Put_Call) Run(run func(ctx context.Context, r io.Reader, algorithms []domain.HashAlgorithm)) *MockBlobStore_Put_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(io.Reader), args[2].([]domain.HashAlgorithm))
	})
	return _c
}

func (_c *MockBlobStore_Put_Call) Return(_a0 domain.BlobInfo, _a1 error) *MockBlobStore_Put_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBlobStore_Put_Call) RunAndReturn(run func(context.Context, io.Reader, []domain.HashAlgorithm) (domain.BlobInfo, error)) *MockBlobStore_Put_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockBlobStore creates a new instance of MockBlobStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockBlobStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBlobStore {
	mock := &MockBlobStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
