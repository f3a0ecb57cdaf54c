package render

import (
	"context"
	"testing"
	"time"

	"github.com/harlowe/quotesmith/internal/common"
	"github.com/harlowe/quotesmith/internal/document"
	"github.com/harlowe/quotesmith/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() document.Spec {
	items := []model.LineItem{
		{ProductID: "P1", ProductName: "Widget", Quantity: 3, UnitPrice: 10, LineTotal: 30},
		{ProductID: "P2", ProductName: "Gadget", Quantity: 2, UnitPrice: 5, LineTotal: 10},
	}
	return document.Build(items, 40, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
}

func TestRenderBeforeInit(t *testing.T) {
	r := NewPDFRenderer()

	assert.False(t, r.Ready())
	_, err := r.Render(testSpec())
	assert.ErrorIs(t, err, common.ErrRendererNotReady)
}

func TestInitIdempotent(t *testing.T) {
	r := NewPDFRenderer()

	require.NoError(t, r.Init(context.Background()))
	assert.True(t, r.Ready())
	require.NoError(t, r.Init(context.Background()))
	assert.True(t, r.Ready())
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewPDFRenderer()
	require.NoError(t, r.Init(context.Background()))

	pdf, err := r.Render(testSpec())
	require.NoError(t, err)

	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderEmptyTable(t *testing.T) {
	r := NewPDFRenderer()
	require.NoError(t, r.Init(context.Background()))

	spec := document.Build(nil, 0, time.Now())
	pdf, err := r.Render(spec)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestRenderManyRowsPaginates(t *testing.T) {
	r := NewPDFRenderer()
	require.NoError(t, r.Init(context.Background()))

	var items []model.LineItem
	for i := 0; i < 60; i++ {
		items = append(items, model.LineItem{
			ProductID:   "P1",
			ProductName: "Widget",
			Quantity:    1,
			UnitPrice:   10,
			LineTotal:   10,
		})
	}
	spec := document.Build(items, 600, time.Now())

	pdf, err := r.Render(spec)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
