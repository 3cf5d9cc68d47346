package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderFile(name string, data any) (string, error) {
	args := m.Called(name, data)
	return args.String(0), args.Error(1)
}
