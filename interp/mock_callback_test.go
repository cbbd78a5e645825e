package interp_test

// Hand-maintained in the shape mockgen would generate for
// interp.Callback[testEnd] (mockgen's generic support was still
// limited when this pack's go.mod pinned golang/mock v1.6.0, so this
// mock is written by hand rather than go:generate'd, but follows the
// same Controller/recorder pattern).

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/sarchlab/zfunge/interp"
	"github.com/sarchlab/zfunge/value"
)

type testEnd struct {
	Label string
}

// MockCallback is a mock of interp.Callback[testEnd].
type MockCallback struct {
	ctrl     *gomock.Controller
	recorder *MockCallbackMockRecorder
}

// MockCallbackMockRecorder is the mock recorder for MockCallback.
type MockCallbackMockRecorder struct {
	mock *MockCallback
}

// NewMockCallback creates a new mock instance.
func NewMockCallback(ctrl *gomock.Controller) *MockCallback {
	mock := &MockCallback{ctrl: ctrl}
	mock.recorder = &MockCallbackMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCallback) EXPECT() *MockCallbackMockRecorder {
	return m.recorder
}

func (m *MockCallback) Output(v value.StackValue) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Output", v)
}

func (mr *MockCallbackMockRecorder) Output(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Output", reflect.TypeOf((*MockCallback)(nil).Output), v)
}

func (m *MockCallback) Input() value.StackValue {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Input")
	ret0, _ := ret[0].(value.StackValue)
	return ret0
}

func (mr *MockCallbackMockRecorder) Input() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Input", reflect.TypeOf((*MockCallback)(nil).Input))
}

func (m *MockCallback) Duplicate(d value.DynamicValue) value.StackValue {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Duplicate", d)
	ret0, _ := ret[0].(value.StackValue)
	return ret0
}

func (mr *MockCallbackMockRecorder) Duplicate(d interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Duplicate", reflect.TypeOf((*MockCallback)(nil).Duplicate), d)
}

func (m *MockCallback) IfZero(d value.DynamicValue, t, f interp.QueuedState) testEnd {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IfZero", d, t, f)
	ret0, _ := ret[0].(testEnd)
	return ret0
}

func (mr *MockCallbackMockRecorder) IfZero(d, t, f interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IfZero", reflect.TypeOf((*MockCallback)(nil).IfZero), d, t, f)
}

func (m *MockCallback) End() testEnd {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "End")
	ret0, _ := ret[0].(testEnd)
	return ret0
}

func (mr *MockCallbackMockRecorder) End() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "End", reflect.TypeOf((*MockCallback)(nil).End))
}

var _ interp.Callback[testEnd] = (*MockCallback)(nil)
