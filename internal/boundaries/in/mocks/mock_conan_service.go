package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/conanhost/internal/domain"
)

// MockConanService is a mock implementation of the ConanService port
type MockConanService struct {
	mock.Mock
}

type MockConanService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockConanService) EXPECT() *MockConanService_Expecter {
	return &MockConanService_Expecter{mock: &_m.Mock}
}

// GetContent provides a mock function with given fields: ctx, path
func (_m *MockConanService) GetContent(ctx context.Context, path string) (*domain.Content, error) {
	ret := _m.Called(ctx, path)

	if len(ret) == 0 {
		panic("no return value specified for GetContent")
	}

	var r0 *domain.Content
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.Content, error)); ok {
		return rf(ctx, path)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.Content); ok {
		r0 = rf(ctx, path)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Content)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockConanService_GetContent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetContent'
type MockConanService_GetContent_Call struct {
	*mock.Call
}

// GetContent is a helper method to define mock.On call
//   - ctx context.Context
//   - path string
func (_e *MockConanService_Expecter) GetContent(ctx interface{}, path interface{}) *MockConanService_GetContent_Call {
	return &MockConanService_GetContent_Call{Call: _e.mock.On("GetContent", ctx, path)}
}

func (_c *MockConanService_GetContent_Call) Run(run func(ctx context.Context, path string)) *MockConanService_GetContent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockConanService_GetContent_Call) Return(_a0 *domain.Content, _a1 error) *MockConanService_GetContent_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockConanService_GetContent_Call) RunAndReturn(run func(context.Context, string) (*domain.Content, error)) *MockConanService_GetContent_Call {
	_c.Call.Return(run)
	return _c
}

// GetDownloadURLs provides a mock function with given fields: ctx, path
func (_m *MockConanService) GetDownloadURLs(ctx context.Context, path string) (string, error) {
	ret := _m.Called(ctx, path)

	if len(ret) == 0 {
		panic("no return value specified for GetDownloadURLs")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (string, error)); ok {
		return rf(ctx, path)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, path)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockConanService_GetDownloadURLs_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetDownloadURLs'
type MockConanService_GetDownloadURLs_Call struct {
	*mock.Call
}

// GetDownloadURLs is a helper method to define mock.On call
//   - ctx context.Context
//   - path string
func (_e *MockConanService_Expecter) GetDownloadURLs(ctx interface{}, path interface{}) *MockConanService_GetDownloadURLs_Call {
	return &MockConanService_GetDownloadURLs_Call{Call: _e.mock.On("GetDownloadURLs", ctx, path)}
}

func (_c *MockConanService_GetDownloadURLs_Call) Run(run func(ctx context.Context, path string)) *MockConanService_GetDownloadURLs_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockConanService_GetDownloadURLs_Call) Return(_a0 string, _a1 error) *MockConanService_GetDownloadURLs_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockConanService_GetDownloadURLs_Call) RunAndReturn(run func(context.Context, string) (string, error)) *MockConanService_GetDownloadURLs_Call {
	_c.Call.Return(run)
	return _c
}

// ListPackageInfos provides a mock function with given fields: ctx, coord
func (_m *MockConanService) ListPackageInfos(ctx context.Context, coord domain.Coordinate) (map[string]domain.ConanInfo, error) {
	ret := _m.Called(ctx, coord)

	if len(ret) == 0 {
		panic("no return value specified for ListPackageInfos")
	}

	var r0 map[string]domain.ConanInfo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Coordinate) (map[string]domain.ConanInfo, error)); ok {
		return rf(ctx, coord)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Coordinate) map[string]domain.ConanInfo); ok {
		r0 = rf(ctx, coord)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[string]domain.ConanInfo)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Coordinate) error); ok {
		r1 = rf(ctx, coord)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockConanService_ListPackageInfos_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListPackageInfos'
type MockConanService_ListPackageInfos_Call struct {
	*mock.Call
}

// ListPackageInfos is a helper method to define mock.On call
//   - ctx context.Context
//   - coord domain.Coordinate
func (_e *MockConanService_Expecter) ListPackageInfos(ctx interface{}, coord interface{}) *MockConanService_ListPackageInfos_Call {
	return &MockConanService_ListPackageInfos_Call{Call: _e.mock.On("ListPackageInfos", ctx, coord)}
}

func (_c *MockConanService_ListPackageInfos_Call) Run(run func(ctx context.Context, coord domain.Coordinate)) *MockConanService_ListPackageInfos_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Coordinate))
	})
	return _c
}

func (_c *MockConanService_ListPackageInfos_Call) Return(_a0 map[string]domain.ConanInfo, _a1 error) *MockConanService_ListPackageInfos_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockConanService_ListPackageInfos_Call) RunAndReturn(run func(context.Context, domain.Coordinate) (map[string]domain.ConanInfo, error)) *MockConanService_ListPackageInfos_Call {
	_c.Call.Return(run)
	return _c
}

// Search provides a mock function with given fields: ctx, query
func (_m *MockConanService) Search(ctx context.Context, query string) ([]string, error) {
	ret := _m.Called(ctx, query)

	if len(ret) == 0 {
		panic("no return value specified for Search")
	}

	var r0 []string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]string, error)); ok {
		return rf(ctx, query)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []string); ok {
		r0 = rf(ctx, query)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, query)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockConanService_Search_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Search'
type MockConanService_Search_Call struct {
	*mock.Call
}

// Search is a helper method to define mock.On call
//   - ctx context.Context
//   - query string
func (_e *MockConanService_Expecter) Search(ctx interface{}, query interface{}) *MockConanService_Search_Call {
	return &MockConanService_Search_Call{Call: _e.mock.On("Search", ctx, query)}
}

func (_c *MockConanService_Search_Call) Run(run func(ctx context.Context, query string)) *MockConanService_Search_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockConanService_Search_Call) Return(_a0 []string, _a1 error) *MockConanService_Search_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockConanService_Search_Call) RunAndReturn(run func(context.Context, string) ([]string, error)) *MockConanService_Search_Call {
	_c.Call.Return(run)
	return _c
}

// Upload provides a mock function with given fields: ctx, coord, assetPath, payload, kind
func (_m *MockConanService) Upload(ctx context.Context, coord domain.Coordinate, assetPath string, payload io.Reader, kind domain.AssetKind) error {
	ret := _m.Called(ctx, coord, assetPath, payload, kind)

	if len(ret) == 0 {
		panic("no return value specified for Upload")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Coordinate, string, io.Reader, domain.AssetKind) error); ok {
		r0 = rf(ctx, coord, assetPath, payload, kind)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockConanService_Upload_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Upload'
type MockConanService_Upload_Call struct {
	*mock.Call
}

// Upload is a helper method to define mock.On call
//   - ctx context.Context
//   - coord domain.Coordinate
//   - assetPath string
//   - payload io.Reader
//   - kind domain.AssetKind
func (_e *MockConanService_Expecter) Upload(ctx interface{}, coord interface{}, assetPath interface{}, payload interface{}, kind interface{}) *MockConanService_Upload_Call {
	return &MockConanService_Upload_Call{Call: _e.mock.On("Upload", ctx, coord, assetPath, payload, kind)}
}

func (_c *MockConanService_Upload_Call) Run(run func(ctx context.Context, coord domain.Coordinate, assetPath string, payload io.Reader, kind domain.AssetKind)) *MockConanService_Upload_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Coordinate), args[2].(string), args[3].(io.Reader), args[4].(domain.AssetKind))
	})
	return _c
}

func (_c *MockConanService_Upload_Call) Return(_a0 error) *MockConanService_Upload_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockConanService_Upload_Call) RunAndReturn(run func(context.Context, domain.Coordinate, string, io.Reader, domain.AssetKind) error) *MockConanService_Upload_Call {
	_c.Call.Return(run)
	return _c
}

// UploadDownloadURLs provides a mock function with given fields: ctx, coord, assetPath, manifest
func (_m *MockConanService) UploadDownloadURLs(ctx context.Context, coord domain.Coordinate, assetPath string, manifest io.Reader) (string, error) {
	ret := _m.Called(ctx, coord, assetPath, manifest)

	if len(ret) == 0 {
		panic("no return value specified for UploadDownloadURLs")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Coordinate, string, io.Reader) (string, error)); ok {
		return rf(ctx, coord, assetPath, manifest)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Coordinate, string, io.Reader) string); ok {
		r0 = rf(ctx, coord, assetPath, manifest)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Coordinate, string, io.Reader) error); ok {
		r1 = rf(ctx, coord, assetPath, manifest)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockConanService_UploadDownloadURLs_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UploadDownloadURLs'
type MockConanService_UploadDownloadURLs_Call struct {
	*mock.Call
}

// UploadDownloadURLs is a helper method to define mock.On call
//   - ctx context.Context
//   - coord domain.Coordinate
//   - assetPath string
//   - manifest io.Reader
func (_e *MockConanService_Expecter) UploadDownloadURLs(ctx interface{}, coord interface{}, assetPath interface{}, manifest interface{}) *MockConanService_UploadDownloadURLs_Call {
	return &MockConanService_UploadDownloadURLs_Call{Call: _e.mock.On("UploadDownloadURLs", ctx, coord, assetPath, manifest)}
}

func (_c *MockConanService_UploadDownloadURLs_Call) Run(run func(ctx context.Context, coord domain.Coordinate, assetPath string, manifest io.Reader)) *MockConanService_UploadDownloadURLs_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Coordinate), args[2].(string), args[3].(io.Reader))
	})
	return _c
}

func (_c *MockConanService_UploadDownloadURLs_Call) Return(_a0 string, _a1 error) *MockConanService_UploadDownloadURLs_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockConanService_UploadDownloadURLs_Call) RunAndReturn(run func(context.Context, domain.Coordinate, string, io.Reader) (string, error)) *MockConanService_UploadDownloadURLs_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockConanService creates a new instance of MockConanService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockConanService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockConanService {
	mock := &MockConanService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
