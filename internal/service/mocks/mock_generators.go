package mocks

import (
	"context"

	"docgen/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockInvoiceGenerator struct {
	mock.Mock
}

func (m *MockInvoiceGenerator) Generate(ctx context.Context, req service.InvoiceRequest) service.InvoiceResult {
	args := m.Called(ctx, req)
	return args.Get(0).(service.InvoiceResult)
}

type MockBillGenerator struct {
	mock.Mock
}

func (m *MockBillGenerator) Generate(ctx context.Context, req service.BillRequest) service.BillResult {
	args := m.Called(ctx, req)
	return args.Get(0).(service.BillResult)
}

type MockReceiptGenerator struct {
	mock.Mock
}

func (m *MockReceiptGenerator) Generate(ctx context.Context, req service.ReceiptRequest) service.ReceiptResult {
	args := m.Called(ctx, req)
	return args.Get(0).(service.ReceiptResult)
}
