package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/conanhost/internal/domain"
)

// MockAuthService is a mock implementation of the AuthService port
type MockAuthService struct {
	mock.Mock
}

type MockAuthService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthService) EXPECT() *MockAuthService_Expecter {
	return &MockAuthService_Expecter{mock: &_m.Mock}
}

// AllowsAnonymousRead provides a mock function with given fields: 
func (_m *MockAuthService) AllowsAnonymousRead() bool {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for AllowsAnonymousRead")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func() bool); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// MockAuthService_AllowsAnonymousRead_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AllowsAnonymousRead'
type MockAuthService_AllowsAnonymousRead_Call struct {
	*mock.Call
}

// AllowsAnonymousRead is a helper method to define mock.On call
func (_e *MockAuthService_Expecter) AllowsAnonymousRead() *MockAuthService_AllowsAnonymousRead_Call {
	return &MockAuthService_AllowsAnonymousRead_Call{Call: _e.mock.On("AllowsAnonymousRead")}
}

func (_c *MockAuthService_AllowsAnonymousRead_Call) Run(run func()) *MockAuthService_AllowsAnonymousRead_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockAuthService_AllowsAnonymousRead_Call) Return(_a0 bool) *MockAuthService_AllowsAnonymousRead_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockAuthService_AllowsAnonymousRead_Call) RunAndReturn(run func() bool) *MockAuthService_AllowsAnonymousRead_Call {
	_c.Call.Return(run)
	return _c
}

// GenerateToken provides a mock function with given fields: ctx, subject
func (_m *MockAuthService) GenerateToken(ctx context.Context, subject string) (string, error) {
	ret := _m.Called(ctx, subject)

	if len(ret) == 0 {
		panic("no return value specified for GenerateToken")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (string, error)); ok {
		return rf(ctx, subject)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, subject)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, subject)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuthService_GenerateToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateToken'
type MockAuthService_GenerateToken_Call struct {
	*mock.Call
}

// GenerateToken is a helper method to define mock.On call
//   - ctx context.Context
//   - subject string
func (_e *MockAuthService_Expecter) GenerateToken(ctx interface{}, subject interface{}) *MockAuthService_GenerateToken_Call {
	return &MockAuthService_GenerateToken_Call{Call: _e.mock.On("GenerateToken", ctx, subject)}
}

func (_c *MockAuthService_GenerateToken_Call) Run(run func(ctx context.Context, subject string)) *MockAuthService_GenerateToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockAuthService_GenerateToken_Call) Return(_a0 string, _a1 error) *MockAuthService_GenerateToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthService_GenerateToken_Call) RunAndReturn(run func(context.Context, string) (string, error)) *MockAuthService_GenerateToken_Call {
	_c.Call.Return(run)
	return _c
}

// IsEnabled provides a mock function with given fields: 
func (_m *MockAuthService) IsEnabled() bool {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for IsEnabled")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func() bool); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// MockAuthService_IsEnabled_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IsEnabled'
type MockAuthService_IsEnabled_Call struct {
	*mock.Call
}

// IsEnabled is a helper method to define mock.On call
func (_e *MockAuthService_Expecter) IsEnabled() *MockAuthService_IsEnabled_Call {
	return &MockAuthService_IsEnabled_Call{Call: _e.mock.On("IsEnabled")}
}

func (_c *MockAuthService_IsEnabled_Call) Run(run func()) *MockAuthService_IsEnabled_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockAuthService_IsEnabled_Call) Return(_a0 bool) *MockAuthService_IsEnabled_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockAuthService_IsEnabled_Call) RunAndReturn(run func() bool) *MockAuthService_IsEnabled_Call {
	_c.Call.Return(run)
	return _c
}

// ValidatePassword provides a mock function with given fields: ctx, username, password
func (_m *MockAuthService) ValidatePassword(ctx context.Context, username string, password string) bool {
	ret := _m.Called(ctx, username, password)

	if len(ret) == 0 {
		panic("no return value specified for ValidatePassword")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string, string) bool); ok {
		r0 = rf(ctx, username, password)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// MockAuthService_ValidatePassword_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ValidatePassword'
type MockAuthService_ValidatePassword_Call struct {
	*mock.Call
}

// ValidatePassword is a helper method to define mock.On call
//   - ctx context.Context
//   - username string
//   - password string
func (_e *MockAuthService_Expecter) ValidatePassword(ctx interface{}, username interface{}, password interface{}) *MockAuthService_ValidatePassword_Call {
	return &MockAuthService_ValidatePassword_Call{Call: _e.mock.On("ValidatePassword", ctx, username, password)}
}

func (_c *MockAuthService_ValidatePassword_Call) Run(run func(ctx context.Context, username string, password string)) *MockAuthService_ValidatePassword_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockAuthService_ValidatePassword_Call) Return(_a0 bool) *MockAuthService_ValidatePassword_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockAuthService_ValidatePassword_Call) RunAndReturn(run func(context.Context, string, string) bool) *MockAuthService_ValidatePassword_Call {
	_c.Call.Return(run)
	return _c
}

// ValidateToken provides a mock function with given fields: ctx, tokenString
func (_m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*domain.TokenClaims, error) {
	ret := _m.Called(ctx, tokenString)

	if len(ret) == 0 {
		panic("no return value specified for ValidateToken")
	}

	var r0 *domain.TokenClaims
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.TokenClaims, error)); ok {
		return rf(ctx, tokenString)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.TokenClaims); ok {
		r0 = rf(ctx, tokenString)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.TokenClaims)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, tokenString)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuthService_ValidateToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ValidateToken'
type MockAuthService_ValidateToken_Call struct {
	*mock.Call
}

// ValidateToken is a helper method to define mock.On call
//   - ctx context.Context
//   - tokenString string
func (_e *MockAuthService_Expecter) ValidateToken(ctx interface{}, tokenString interface{}) *MockAuthService_ValidateToken_Call {
	return &MockAuthService_ValidateToken_Call{Call: _e.mock.On("ValidateToken", ctx, tokenString)}
}

func (_c *MockAuthService_ValidateToken_Call) Run(run func(ctx context.Context, tokenString string)) *MockAuthService_ValidateToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockAuthService_ValidateToken_Call) Return(_a0 *domain.TokenClaims, _a1 error) *MockAuthService_ValidateToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthService_ValidateToken_Call) RunAndReturn(run func(context.Context, string) (*domain.TokenClaims, error)) *MockAuthService_ValidateToken_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAuthService creates a new instance of MockAuthService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthService {
	mock := &MockAuthService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
