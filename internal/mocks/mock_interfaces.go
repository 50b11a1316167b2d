package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sectrean/di-cradle/internal/testtypes"
)

// InterfaceAMock is a mock implementation of testtypes.InterfaceA.
type InterfaceAMock struct {
	mock.Mock
}

var _ testtypes.InterfaceA = (*InterfaceAMock)(nil)

type InterfaceAMock_Expecter struct {
	mock *mock.Mock
}

func (_m *InterfaceAMock) EXPECT() *InterfaceAMock_Expecter {
	return &InterfaceAMock_Expecter{mock: &_m.Mock}
}

// A provides a mock function with no fields
func (_m *InterfaceAMock) A() {
	_m.Called()
}

// InterfaceAMock_A_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'A'
type InterfaceAMock_A_Call struct {
	*mock.Call
}

func (_e *InterfaceAMock_Expecter) A() *InterfaceAMock_A_Call {
	return &InterfaceAMock_A_Call{Call: _e.mock.On("A")}
}

func (_c *InterfaceAMock_A_Call) Run(run func()) *InterfaceAMock_A_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *InterfaceAMock_A_Call) Return() *InterfaceAMock_A_Call {
	_c.Call.Return()
	return _c
}

// Close provides a mock function with given fields: ctx
func (_m *InterfaceAMock) Close(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// InterfaceAMock_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type InterfaceAMock_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
//   - ctx context.Context
func (_e *InterfaceAMock_Expecter) Close(ctx interface{}) *InterfaceAMock_Close_Call {
	return &InterfaceAMock_Close_Call{Call: _e.mock.On("Close", ctx)}
}

func (_c *InterfaceAMock_Close_Call) Run(run func(ctx context.Context)) *InterfaceAMock_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *InterfaceAMock_Close_Call) Return(_a0 error) *InterfaceAMock_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewInterfaceAMock creates a new instance of InterfaceAMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewInterfaceAMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *InterfaceAMock {
	m := &InterfaceAMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// InterfaceBMock is a mock implementation of testtypes.InterfaceB.
type InterfaceBMock struct {
	mock.Mock
}

var _ testtypes.InterfaceB = (*InterfaceBMock)(nil)

type InterfaceBMock_Expecter struct {
	mock *mock.Mock
}

func (_m *InterfaceBMock) EXPECT() *InterfaceBMock_Expecter {
	return &InterfaceBMock_Expecter{mock: &_m.Mock}
}

// B provides a mock function with no fields
func (_m *InterfaceBMock) B() {
	_m.Called()
}

// InterfaceBMock_B_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'B'
type InterfaceBMock_B_Call struct {
	*mock.Call
}

func (_e *InterfaceBMock_Expecter) B() *InterfaceBMock_B_Call {
	return &InterfaceBMock_B_Call{Call: _e.mock.On("B")}
}

func (_c *InterfaceBMock_B_Call) Run(run func()) *InterfaceBMock_B_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *InterfaceBMock_B_Call) Return() *InterfaceBMock_B_Call {
	_c.Call.Return()
	return _c
}

// Close provides a mock function with given fields: ctx
func (_m *InterfaceBMock) Close(ctx context.Context) {
	_m.Called(ctx)
}

// InterfaceBMock_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type InterfaceBMock_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
//   - ctx context.Context
func (_e *InterfaceBMock_Expecter) Close(ctx interface{}) *InterfaceBMock_Close_Call {
	return &InterfaceBMock_Close_Call{Call: _e.mock.On("Close", ctx)}
}

func (_c *InterfaceBMock_Close_Call) Run(run func(ctx context.Context)) *InterfaceBMock_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *InterfaceBMock_Close_Call) Return() *InterfaceBMock_Close_Call {
	_c.Call.Return()
	return _c
}

// NewInterfaceBMock creates a new instance of InterfaceBMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewInterfaceBMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *InterfaceBMock {
	m := &InterfaceBMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// InterfaceCMock is a mock implementation of testtypes.InterfaceC.
type InterfaceCMock struct {
	mock.Mock
}

var _ testtypes.InterfaceC = (*InterfaceCMock)(nil)

type InterfaceCMock_Expecter struct {
	mock *mock.Mock
}

func (_m *InterfaceCMock) EXPECT() *InterfaceCMock_Expecter {
	return &InterfaceCMock_Expecter{mock: &_m.Mock}
}

// C provides a mock function with no fields
func (_m *InterfaceCMock) C() {
	_m.Called()
}

// InterfaceCMock_C_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'C'
type InterfaceCMock_C_Call struct {
	*mock.Call
}

func (_e *InterfaceCMock_Expecter) C() *InterfaceCMock_C_Call {
	return &InterfaceCMock_C_Call{Call: _e.mock.On("C")}
}

func (_c *InterfaceCMock_C_Call) Run(run func()) *InterfaceCMock_C_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *InterfaceCMock_C_Call) Return() *InterfaceCMock_C_Call {
	_c.Call.Return()
	return _c
}

// Close provides a mock function with given fields: 
func (_m *InterfaceCMock) Close() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// InterfaceCMock_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type InterfaceCMock_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *InterfaceCMock_Expecter) Close() *InterfaceCMock_Close_Call {
	return &InterfaceCMock_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *InterfaceCMock_Close_Call) Run(run func()) *InterfaceCMock_Close_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *InterfaceCMock_Close_Call) Return(_a0 error) *InterfaceCMock_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewInterfaceCMock creates a new instance of InterfaceCMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewInterfaceCMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *InterfaceCMock {
	m := &InterfaceCMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// InterfaceDMock is a mock implementation of testtypes.InterfaceD.
type InterfaceDMock struct {
	mock.Mock
}

var _ testtypes.InterfaceD = (*InterfaceDMock)(nil)

type InterfaceDMock_Expecter struct {
	mock *mock.Mock
}

func (_m *InterfaceDMock) EXPECT() *InterfaceDMock_Expecter {
	return &InterfaceDMock_Expecter{mock: &_m.Mock}
}

// D provides a mock function with no fields
func (_m *InterfaceDMock) D() {
	_m.Called()
}

// InterfaceDMock_D_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'D'
type InterfaceDMock_D_Call struct {
	*mock.Call
}

func (_e *InterfaceDMock_Expecter) D() *InterfaceDMock_D_Call {
	return &InterfaceDMock_D_Call{Call: _e.mock.On("D")}
}

func (_c *InterfaceDMock_D_Call) Run(run func()) *InterfaceDMock_D_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *InterfaceDMock_D_Call) Return() *InterfaceDMock_D_Call {
	_c.Call.Return()
	return _c
}

// Close provides a mock function with given fields: 
func (_m *InterfaceDMock) Close() {
	_m.Called()
}

// InterfaceDMock_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type InterfaceDMock_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *InterfaceDMock_Expecter) Close() *InterfaceDMock_Close_Call {
	return &InterfaceDMock_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *InterfaceDMock_Close_Call) Run(run func()) *InterfaceDMock_Close_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *InterfaceDMock_Close_Call) Return() *InterfaceDMock_Close_Call {
	_c.Call.Return()
	return _c
}

// NewInterfaceDMock creates a new instance of InterfaceDMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewInterfaceDMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *InterfaceDMock {
	m := &InterfaceDMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
