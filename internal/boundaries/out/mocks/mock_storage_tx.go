package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/conanhost/internal/boundaries/out"
	"github.com/bnema/conanhost/internal/domain"
)

// MockStorageTx is a mock implementation of the StorageTx port
type MockStorageTx struct {
	mock.Mock
}

type MockStorageTx_Expecter struct {
	mock *mock.Mock
}

func (_m *MockStorageTx) EXPECT() *MockStorageTx_Expecter {
	return &MockStorageTx_Expecter{mock: &_m.Mock}
}

// BrowseAssets provides a mock function with given fields: ctx, componentID
func (_m *MockStorageTx) BrowseAssets(ctx context.Context, componentID string) ([]*domain.Asset, error) {
	ret := _m.Called(ctx, componentID)

	if len(ret) == 0 {
		panic("no return value specified for BrowseAssets")
	}

	var r0 []*domain.Asset
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]*domain.Asset, error)); ok {
		return rf(ctx, componentID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []*domain.Asset); ok {
		r0 = rf(ctx, componentID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*domain.Asset)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, componentID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStorageTx_BrowseAssets_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'BrowseAssets'
type MockStorageTx_BrowseAssets_Call struct {
	*mock.Call
}

// BrowseAssets is a helper method to define mock.On call
//   - ctx context.Context
//   - componentID string
func (_e *MockStorageTx_Expecter) BrowseAssets(ctx interface{}, componentID interface{}) *MockStorageTx_BrowseAssets_Call {
	return &MockStorageTx_BrowseAssets_Call{Call: _e.mock.On("BrowseAssets", ctx, componentID)}
}

func (_c *MockStorageTx_BrowseAssets_Call) Run(run func(ctx context.Context, componentID string)) *MockStorageTx_BrowseAssets_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockStorageTx_BrowseAssets_Call) Return(_a0 []*domain.Asset, _a1 error) *MockStorageTx_BrowseAssets_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStorageTx_BrowseAssets_Call) RunAndReturn(run func(context.Context, string) ([]*domain.Asset, error)) *MockStorageTx_BrowseAssets_Call {
	_c.Call.Return(run)
	return _c
}

// CreateAsset provides a mock function with given fields: ctx, asset
func (_m *MockStorageTx) CreateAsset(ctx context.Context, asset *domain.Asset) error {
	ret := _m.Called(ctx, asset)

	if len(ret) == 0 {
		panic("no return value specified for CreateAsset")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Asset) error); ok {
		r0 = rf(ctx, asset)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStorageTx_CreateAsset_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateAsset'
type MockStorageTx_CreateAsset_Call struct {
	*mock.Call
}

// CreateAsset is a helper method to define mock.On call
//   - ctx context.Context
//   - asset *domain.Asset
func (_e *MockStorageTx_Expecter) CreateAsset(ctx interface{}, asset interface{}) *MockStorageTx_CreateAsset_Call {
	return &MockStorageTx_CreateAsset_Call{Call: _e.mock.On("CreateAsset", ctx, asset)}
}

func (_c *MockStorageTx_CreateAsset_Call) Run(run func(ctx context.Context, asset *domain.Asset)) *MockStorageTx_CreateAsset_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domain.Asset))
	})
	return _c
}

func (_c *MockStorageTx_CreateAsset_Call) Return(_a0 error) *MockStorageTx_CreateAsset_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStorageTx_CreateAsset_Call) RunAndReturn(run func(context.Context, *domain.Asset) error) *MockStorageTx_CreateAsset_Call {
	_c.Call.Return(run)
	return _c
}

// CreateComponent provides a mock function with given fields: ctx, component
func (_m *MockStorageTx) CreateComponent(ctx context.Context, component *domain.Component) error {
	ret := _m.Called(ctx, component)

	if len(ret) == 0 {
		panic("no return value specified for CreateComponent")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Component) error); ok {
		r0 = rf(ctx, component)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStorageTx_CreateComponent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateComponent'
type MockStorageTx_CreateComponent_Call struct {
	*mock.Call
}

// CreateComponent is a helper method to define mock.On call
//   - ctx context.Context
//   - component *domain.Component
func (_e *MockStorageTx_Expecter) CreateComponent(ctx interface{}, component interface{}) *MockStorageTx_CreateComponent_Call {
	return &MockStorageTx_CreateComponent_Call{Call: _e.mock.On("CreateComponent", ctx, component)}
}

func (_c *MockStorageTx_CreateComponent_Call) Run(run func(ctx context.Context, component *domain.Component)) *MockStorageTx_CreateComponent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domain.Component))
	})
	return _c
}

func (_c *MockStorageTx_CreateComponent_Call) Return(_a0 error) *MockStorageTx_CreateComponent_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStorageTx_CreateComponent_Call) RunAndReturn(run func(context.Context, *domain.Component) error) *MockStorageTx_CreateComponent_Call {
	_c.Call.Return(run)
	return _c
}

// FindAsset provides a mock function with given fields: ctx, path
func (_m *MockStorageTx) FindAsset(ctx context.Context, path string) (*domain.Asset, error) {
	ret := _m.Called(ctx, path)

	if len(ret) == 0 {
		panic("no return value specified for FindAsset")
	}

	var r0 *domain.Asset
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.Asset, error)); ok {
		return rf(ctx, path)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.Asset); ok {
		r0 = rf(ctx, path)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Asset)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStorageTx_FindAsset_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindAsset'
type MockStorageTx_FindAsset_Call struct {
	*mock.Call
}

// FindAsset is a helper method to define mock.On call
//   - ctx context.Context
//   - path string
func (_e *MockStorageTx_Expecter) FindAsset(ctx interface{}, path interface{}) *MockStorageTx_FindAsset_Call {
	return &MockStorageTx_FindAsset_Call{Call: _e.mock.On("FindAsset", ctx, path)}
}

func (_c *MockStorageTx_FindAsset_Call) Run(run func(ctx context.Context, path string)) *MockStorageTx_FindAsset_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockStorageTx_FindAsset_Call) Return(_a0 *domain.Asset, _a1 error) *MockStorageTx_FindAsset_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStorageTx_FindAsset_Call) RunAndReturn(run func(context.Context, string) (*domain.Asset, error)) *MockStorageTx_FindAsset_Call {
	_c.Call.Return(run)
	return _c
}

// FindComponent provides a mock function with given fields: ctx, coord
func (_m *MockStorageTx) FindComponent(ctx context.Context, coord domain.Coordinate) (*domain.Component, error) {
	ret := _m.Called(ctx, coord)

	if len(ret) == 0 {
		panic("no return value specified for FindComponent")
	}

	var r0 *domain.Component
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Coordinate) (*domain.Component, error)); ok {
		return rf(ctx, coord)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Coordinate) *domain.Component); ok {
		r0 = rf(ctx, coord)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Component)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Coordinate) error); ok {
		r1 = rf(ctx, coord)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStorageTx_FindComponent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindComponent'
type MockStorageTx_FindComponent_Call struct {
	*mock.Call
}

// FindComponent is a helper method to define mock.On call
//   - ctx context.Context
//   - coord domain.Coordinate
func (_e *MockStorageTx_Expecter) FindComponent(ctx interface{}, coord interface{}) *MockStorageTx_FindComponent_Call {
	return &MockStorageTx_FindComponent_Call{Call: _e.mock.On("FindComponent", ctx, coord)}
}

func (_c *MockStorageTx_FindComponent_Call) Run(run func(ctx context.Context, coord domain.Coordinate)) *MockStorageTx_FindComponent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Coordinate))
	})
	return _c
}

func (_c *MockStorageTx_FindComponent_Call) Return(_a0 *domain.Component, _a1 error) *MockStorageTx_FindComponent_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStorageTx_FindComponent_Call) RunAndReturn(run func(context.Context, domain.Coordinate) (*domain.Component, error)) *MockStorageTx_FindComponent_Call {
	_c.Call.Return(run)
	return _c
}

// FindComponents provides a mock function with given fields: ctx, q
func (_m *MockStorageTx) FindComponents(ctx context.Context, q out.ComponentQuery) ([]*domain.Component, error) {
	ret := _m.Called(ctx, q)

	if len(ret) == 0 {
		panic("no return value specified for FindComponents")
	}

	var r0 []*domain.Component
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, out.ComponentQuery) ([]*domain.Component, error)); ok {
		return rf(ctx, q)
	}
	if rf, ok := ret.Get(0).(func(context.Context, out.ComponentQuery) []*domain.Component); ok {
		r0 = rf(ctx, q)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*domain.Component)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, out.ComponentQuery) error); ok {
		r1 = rf(ctx, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStorageTx_FindComponents_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindComponents'
type MockStorageTx_FindComponents_Call struct {
	*mock.Call
}

// FindComponents is a helper method to define mock.On call
//   - ctx context.Context
//   - q out.ComponentQuery
func (_e *MockStorageTx_Expecter) FindComponents(ctx interface{}, q interface{}) *MockStorageTx_FindComponents_Call {
	return &MockStorageTx_FindComponents_Call{Call: _e.mock.On("FindComponents", ctx, q)}
}

func (_c *MockStorageTx_FindComponents_Call) Run(run func(ctx context.Context, q out.ComponentQuery)) *MockStorageTx_FindComponents_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(out.ComponentQuery))
	})
	return _c
}

func (_c *MockStorageTx_FindComponents_Call) Return(_a0 []*domain.Component, _a1 error) *MockStorageTx_FindComponents_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStorageTx_FindComponents_Call) RunAndReturn(run func(context.Context, out.ComponentQuery) ([]*domain.Component, error)) *MockStorageTx_FindComponents_Call {
	_c.Call.Return(run)
	return _c
}

// RequireBlob provides a mock function with given fields: ctx, ref
func (_m *MockStorageTx) RequireBlob(ctx context.Context, ref domain.BlobRef) (out.Blob, error) {
	ret := _m.Called(ctx, ref)

	if len(ret) == 0 {
		panic("no return value specified for RequireBlob")
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

// MockStorageTx_RequireBlob_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RequireBlob'
type MockStorageTx_RequireBlob_Call struct {
	*mock.Call
}

// RequireBlob is a helper method to define mock.On call
//   - ctx context.Context
//   - ref domain.BlobRef
func (_e *MockStorageTx_Expecter) RequireBlob(ctx interface{}, ref interface{}) *MockStorageTx_RequireBlob_Call {
	return &MockStorageTx_RequireBlob_Call{Call: _e.mock.On("RequireBlob", ctx, ref)}
}

func (_c *MockStorageTx_RequireBlob_Call) Run(run func(ctx context.Context, ref domain.BlobRef)) *MockStorageTx_RequireBlob_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.BlobRef))
	})
	return _c
}

func (_c *MockStorageTx_RequireBlob_Call) Return(_a0 out.Blob, _a1 error) *MockStorageTx_RequireBlob_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStorageTx_RequireBlob_Call) RunAndReturn(run func(context.Context, domain.BlobRef) (out.Blob, error)) *MockStorageTx_RequireBlob_Call {
	_c.Call.Return(run)
	return _c
}

// SaveAsset provides a mock function with given fields: ctx, asset
func (_m *MockStorageTx) SaveAsset(ctx context.Context, asset *domain.Asset) error {
	ret := _m.Called(ctx, asset)

	if len(ret) == 0 {
		panic("no return value specified for SaveAsset")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Asset) error); ok {
		r0 = rf(ctx, asset)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStorageTx_SaveAsset_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SaveAsset'
type MockStorageTx_SaveAsset_Call struct {
	*mock.Call
}

// SaveAsset is a helper method to define mock.On call
//   - ctx context.Context
//   - asset *domain.Asset
func (_e *MockStorageTx_Expecter) SaveAsset(ctx interface{}, asset interface{}) *MockStorageTx_SaveAsset_Call {
	return &MockStorageTx_SaveAsset_Call{Call: _e.mock.On("SaveAsset", ctx, asset)}
}

func (_c *MockStorageTx_SaveAsset_Call) Run(run func(ctx context.Context, asset *domain.Asset)) *MockStorageTx_SaveAsset_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domain.Asset))
	})
	return _c
}

func (_c *MockStorageTx_SaveAsset_Call) Return(_a0 error) *MockStorageTx_SaveAsset_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStorageTx_SaveAsset_Call) RunAndReturn(run func(context.Context, *domain.Asset) error) *MockStorageTx_SaveAsset_Call {
	_c.Call.Return(run)
	return _c
}

// AttachBlob provides a mock function with given fields: ctx, asset, info, contentType
func (_m *MockStorageTx) AttachBlob(ctx context.Context, asset *domain.Asset, info domain.BlobInfo, contentType string) error {
	ret := _m.Called(ctx, asset, info, contentType)

	if len(ret) == 0 {
		panic("no return value specified for AttachBlob")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Asset, domain.BlobInfo, string) error); ok {
		r0 = rf(ctx, asset, info, contentType)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStorageTx_AttachBlob_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AttachBlob'
type MockStorageTx_AttachBlob_Call struct {
	*mock.Call
}

// AttachBlob is a helper method to define mock.On call
//   - ctx context.Context
//   - asset *domain.Asset
//   - info domain.BlobInfo
//   - contentType string
func (_e *MockStorageTx_Expecter) AttachBlob(ctx interface{}, asset interface{}, info interface{}, contentType interface{}) *MockStorageTx_AttachBlob_Call {
	return &MockStorageTx_AttachBlob_Call{Call: _e.mock.On("AttachBlob", ctx, asset, info, contentType)}
}

func (_c *MockStorageTx_AttachBlob_Call) Run(run func(ctx context.Context, asset *domain.Asset, info domain.BlobInfo, contentType string)) *MockStorageTx_AttachBlob_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domain.Asset), args[2].(domain.BlobInfo), args[3].(string))
	})
	return _c
}

func (_c *MockStorageTx_AttachBlob_Call) Return(_a0 error) *MockStorageTx_AttachBlob_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStorageTx_AttachBlob_Call) RunAndReturn(run func(context.Context, *domain.Asset, domain.BlobInfo, string) error) *MockStorageTx_AttachBlob_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockStorageTx creates a new instance of MockStorageTx. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockStorageTx(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStorageTx {
	mock := &MockStorageTx{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
