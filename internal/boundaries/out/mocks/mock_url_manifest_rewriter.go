package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"
)

// MockURLManifestRewriter is a mock implementation of the URLManifestRewriter port
type MockURLManifestRewriter struct {
	mock.Mock
}

type MockURLManifestRewriter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockURLManifestRewriter) EXPECT() *MockURLManifestRewriter_Expecter {
	return &MockURLManifestRewriter_Expecter{mock: &_m.Mock}
}

// AbsoluteValues provides a mock function with given fields: baseURL, r
func (_m *MockURLManifestRewriter) AbsoluteValues(baseURL string, r io.Reader) (string, error) {
	ret := _m.Called(baseURL, r)

	if len(ret) == 0 {
		panic("no return value specified for AbsoluteValues")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(string, io.Reader) (string, error)); ok {
		return rf(baseURL, r)
	}
	if rf, ok := ret.Get(0).(func(string, io.Reader) string); ok {
		r0 = rf(baseURL, r)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(string, io.Reader) error); ok {
		r1 = rf(baseURL, r)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockURLManifestRewriter_AbsoluteValues_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AbsoluteValues'
type MockURLManifestRewriter_AbsoluteValues_Call struct {
	*mock.Call
}

// AbsoluteValues is a helper method to define mock.On call
//   - baseURL string
//   - r io.Reader
func (_e *MockURLManifestRewriter_Expecter) AbsoluteValues(baseURL interface{}, r interface{}) *MockURLManifestRewriter_AbsoluteValues_Call {
	return &MockURLManifestRewriter_AbsoluteValues_Call{Call: _e.mock.On("AbsoluteValues", baseURL, r)}
}

func (_c *MockURLManifestRewriter_AbsoluteValues_Call) Run(run func(baseURL string, r io.Reader)) *MockURLManifestRewriter_AbsoluteValues_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(io.Reader))
	})
	return _c
}

func (_c *MockURLManifestRewriter_AbsoluteValues_Call) Return(_a0 string, _a1 error) *MockURLManifestRewriter_AbsoluteValues_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockURLManifestRewriter_AbsoluteValues_Call) RunAndReturn(run func(string, io.Reader) (string, error)) *MockURLManifestRewriter_AbsoluteValues_Call {
	_c.Call.Return(run)
	return _c
}

// RelativeKeys provides a mock function with given fields: prefix, r
func (_m *MockURLManifestRewriter) RelativeKeys(prefix string, r io.Reader) (string, error) {
	ret := _m.Called(prefix, r)

	if len(ret) == 0 {
		panic("no return value specified for RelativeKeys")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(string, io.Reader) (string, error)); ok {
		return rf(prefix, r)
	}
	if rf, ok := ret.Get(0).(func(string, io.Reader) string); ok {
		r0 = rf(prefix, r)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(string, io.Reader) error); ok {
		r1 = rf(prefix, r)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockURLManifestRewriter_RelativeKeys_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RelativeKeys'
type MockURLManifestRewriter_RelativeKeys_Call struct {
	*mock.Call
}

// RelativeKeys is a helper method to define mock.On call
//   - prefix string
//   - r io.Reader
func (_e *MockURLManifestRewriter_Expecter) RelativeKeys(prefix interface{}, r interface{}) *MockURLManifestRewriter_RelativeKeys_Call {
	return &MockURLManifestRewriter_RelativeKeys_Call{Call: _e.mock.On("RelativeKeys", prefix, r)}
}

func (_c *MockURLManifestRewriter_RelativeKeys_Call) Run(run func(prefix string, r io.Reader)) *MockURLManifestRewriter_RelativeKeys_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(io.Reader))
	})
	return _c
}

func (_c *MockURLManifestRewriter_RelativeKeys_Call) Return(_a0 string, _a1 error) *MockURLManifestRewriter_RelativeKeys_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockURLManifestRewriter_RelativeKeys_Call) RunAndReturn(run func(string, io.Reader) (string, error)) *MockURLManifestRewriter_RelativeKeys_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockURLManifestRewriter creates a new instance of MockURLManifestRewriter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockURLManifestRewriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockURLManifestRewriter {
	mock := &MockURLManifestRewriter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
