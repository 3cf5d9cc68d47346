package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"docgen/internal/model"
	"docgen/internal/repository"
	repoMocks "docgen/internal/repository/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://example.com"

type mockArchiver struct {
	mock.Mock
}

func (m *mockArchiver) Archive(ctx context.Context, doc *model.Document, markup string) {
	m.Called(ctx, doc, markup)
}

func widgetInvoice(templateID string) InvoiceRequest {
	return InvoiceRequest{
		CustomerName:    "ACME Corp",
		CustomerAddress: "1 Main St",
		InvoiceNumber:   "INV-001",
		DateIssued:      "2024-05-01",
		DueDate:         "2024-05-31",
		Items: []model.InvoiceItem{{
			Description: "Widget",
			Quantity:    2,
			UnitPrice:   decimal.RequireFromString("5.0"),
			TotalPrice:  decimal.RequireFromString("10.0"),
		}},
		Subtotal:    decimal.RequireFromString("10.0"),
		TaxRate:     decimal.RequireFromString("0.1"),
		TotalAmount: decimal.RequireFromString("11.0"),
		TemplateID:  templateID,
	}
}

type storedInvoice struct {
	RenderedDocument string `json:"renderedDocument"`
	Data             struct {
		CustomerName  string              `json:"customer_name"`
		InvoiceNumber string              `json:"invoice_number"`
		Items         []model.InvoiceItem `json:"items"`
		TaxRate       decimal.Decimal     `json:"tax_rate"`
		TotalAmount   decimal.Decimal     `json:"total_amount"`
	} `json:"data"`
}

func TestInvoiceGenerator_Generate(t *testing.T) {
	ctx := context.Background()
	t1 := &model.Template{ID: "T1", Name: "Default", HTML: "<h1>Invoice</h1>"}

	t.Run("existing template persists and links the document", func(t *testing.T) {
		mTemplates := new(repoMocks.MockTemplateRepository)
		mDocs := new(repoMocks.MockDocumentRepository)

		var created *model.Document
		mTemplates.On("FindByID", mock.Anything, "T1").Return(t1, nil)
		mDocs.On("Create", mock.Anything, mock.AnythingOfType("*model.Document")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*model.Document) }).
			Return(&model.Document{ID: "6f1c2a"}, nil)

		gen := NewInvoiceGenerator(mTemplates, mDocs, Options{BaseURL: testBaseURL + "/", OwnerID: "owner-1"})
		res := gen.Generate(ctx, widgetInvoice("T1"))

		assert.True(t, res.Success)
		assert.Equal(t, "Invoice generated successfully", res.Message)
		assert.Equal(t, "http://example.com/documents/6f1c2a", res.DocumentURL)
		assert.Nil(t, res.Failure)

		require.NotNil(t, created)
		assert.Equal(t, "Invoice INV-001", created.Title)
		assert.Equal(t, model.DocumentTypeInvoice, created.Type)
		assert.Equal(t, "owner-1", created.OwnerID)

		var content storedInvoice
		require.NoError(t, json.Unmarshal(created.Content, &content))
		assert.Equal(t, "<h1>Invoice</h1>", content.RenderedDocument)
		assert.Equal(t, "ACME Corp", content.Data.CustomerName)
		require.Len(t, content.Data.Items, 1)
		assert.Equal(t, "Widget", content.Data.Items[0].Description)
		assert.True(t, content.Data.Items[0].TotalPrice.Equal(decimal.NewFromInt(10)))
		assert.True(t, content.Data.TaxRate.Equal(decimal.RequireFromString("0.1")))

		mTemplates.AssertExpectations(t)
		mDocs.AssertExpectations(t)
	})

	t.Run("stored body is kept verbatim", func(t *testing.T) {
		bodies := []string{
			"<h1>Invoice for {{ customer_name }}</h1>{% for item in items %}<li>{{ item.description }}</li>{% endfor %}",
			"<h1>{{.customer_name}}</h1>",
			"<script>var t = '{{';</script>",
		}
		for _, body := range bodies {
			mTemplates := new(repoMocks.MockTemplateRepository)
			mDocs := new(repoMocks.MockDocumentRepository)

			var created *model.Document
			mTemplates.On("FindByID", mock.Anything, "T2").Return(&model.Template{ID: "T2", HTML: body}, nil)
			mDocs.On("Create", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) { created = args.Get(1).(*model.Document) }).
				Return(&model.Document{ID: "doc-2"}, nil)

			res := NewInvoiceGenerator(mTemplates, mDocs, Options{BaseURL: testBaseURL}).Generate(ctx, widgetInvoice("T2"))

			require.True(t, res.Success, "body=%q message=%q", body, res.Message)
			var content storedInvoice
			require.NoError(t, json.Unmarshal(created.Content, &content))
			assert.Equal(t, body, content.RenderedDocument)
			assert.Equal(t, "ACME Corp", content.Data.CustomerName)
		}
	})

	t.Run("missing template writes nothing", func(t *testing.T) {
		mTemplates := new(repoMocks.MockTemplateRepository)
		mDocs := new(repoMocks.MockDocumentRepository)
		mTemplates.On("FindByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

		res := NewInvoiceGenerator(mTemplates, mDocs, Options{BaseURL: testBaseURL}).Generate(ctx, widgetInvoice("missing"))

		assert.False(t, res.Success)
		assert.Equal(t, "Template not found", res.Message)
		assert.Empty(t, res.DocumentURL)
		require.NotNil(t, res.Failure)
		assert.Equal(t, FailureNotFound, res.Failure.Kind)
		assert.ErrorIs(t, res.Failure, ErrTemplateNotFound)
		mDocs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lookup error", func(t *testing.T) {
		mTemplates := new(repoMocks.MockTemplateRepository)
		mDocs := new(repoMocks.MockDocumentRepository)
		mTemplates.On("FindByID", mock.Anything, "T1").Return(nil, errors.New("connection refused"))

		res := NewInvoiceGenerator(mTemplates, mDocs, Options{}).Generate(ctx, widgetInvoice("T1"))

		assert.False(t, res.Success)
		assert.Equal(t, "connection refused", res.Message)
		assert.Equal(t, FailurePersistence, res.Failure.Kind)
		mDocs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("persistence error", func(t *testing.T) {
		mTemplates := new(repoMocks.MockTemplateRepository)
		mDocs := new(repoMocks.MockDocumentRepository)
		mTemplates.On("FindByID", mock.Anything, "T1").Return(t1, nil)
		mDocs.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed"))

		res := NewInvoiceGenerator(mTemplates, mDocs, Options{}).Generate(ctx, widgetInvoice("T1"))

		assert.False(t, res.Success)
		assert.Equal(t, "insert failed", res.Message)
		assert.Equal(t, FailurePersistence, res.Failure.Kind)
	})

	t.Run("panic becomes an internal failure", func(t *testing.T) {
		mTemplates := new(repoMocks.MockTemplateRepository)
		mDocs := new(repoMocks.MockDocumentRepository)
		mTemplates.On("FindByID", mock.Anything, "T1").Return(t1, nil)
		mDocs.On("Create", mock.Anything, mock.Anything).Run(func(mock.Arguments) { panic("driver bug") })

		var res InvoiceResult
		assert.NotPanics(t, func() {
			res = NewInvoiceGenerator(mTemplates, mDocs, Options{}).Generate(ctx, widgetInvoice("T1"))
		})

		assert.False(t, res.Success)
		assert.Equal(t, FailureInternal, res.Failure.Kind)
		assert.Contains(t, res.Message, "driver bug")
	})
}

func TestInvoiceGenerator_DocumentURLCarriesCreatedID(t *testing.T) {
	ctx := context.Background()
	for _, id := range []string{"1", "a3bb189e-8bf9-3888-9912-ace4e6543002", "doc-99"} {
		mTemplates := new(repoMocks.MockTemplateRepository)
		mDocs := new(repoMocks.MockDocumentRepository)
		mTemplates.On("FindByID", mock.Anything, "T1").Return(&model.Template{ID: "T1", HTML: "x"}, nil)
		mDocs.On("Create", mock.Anything, mock.Anything).Return(&model.Document{ID: id}, nil)

		res := NewInvoiceGenerator(mTemplates, mDocs, Options{BaseURL: testBaseURL}).Generate(ctx, widgetInvoice("T1"))

		require.True(t, res.Success)
		assert.True(t, strings.HasSuffix(res.DocumentURL, "/documents/"+id), res.DocumentURL)
	}
}

func TestInvoiceGenerator_TotalsAreNotRecomputed(t *testing.T) {
	ctx := context.Background()
	req := widgetInvoice("T1")
	req.Items[0].TotalPrice = decimal.RequireFromString("99.99")

	mTemplates := new(repoMocks.MockTemplateRepository)
	mDocs := new(repoMocks.MockDocumentRepository)
	var created *model.Document
	mTemplates.On("FindByID", mock.Anything, "T1").Return(&model.Template{ID: "T1", HTML: "x"}, nil)
	mDocs.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(*model.Document) }).
		Return(&model.Document{ID: "d"}, nil)

	res := NewInvoiceGenerator(mTemplates, mDocs, Options{}).Generate(ctx, req)

	require.True(t, res.Success)
	var content storedInvoice
	require.NoError(t, json.Unmarshal(created.Content, &content))
	assert.True(t, content.Data.Items[0].TotalPrice.Equal(decimal.RequireFromString("99.99")))
}

func TestInvoiceGenerator_ArchivesAndCounts(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)

	mTemplates := new(repoMocks.MockTemplateRepository)
	mDocs := new(repoMocks.MockDocumentRepository)
	mArchiver := new(mockArchiver)

	stored := &model.Document{ID: "doc-1", Type: model.DocumentTypeInvoice}
	mTemplates.On("FindByID", mock.Anything, "T1").Return(&model.Template{ID: "T1", HTML: "<p>ok</p>"}, nil)
	mTemplates.On("FindByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)
	mDocs.On("Create", mock.Anything, mock.Anything).Return(stored, nil)
	mArchiver.On("Archive", mock.Anything, stored, "<p>ok</p>").Return()

	gen := NewInvoiceGenerator(mTemplates, mDocs, Options{Archiver: mArchiver, Metrics: metrics})
	gen.Generate(ctx, widgetInvoice("T1"))
	gen.Generate(ctx, widgetInvoice("missing"))

	mArchiver.AssertExpectations(t)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.generated.WithLabelValues("invoice", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.generated.WithLabelValues("invoice", "not_found")))
}
