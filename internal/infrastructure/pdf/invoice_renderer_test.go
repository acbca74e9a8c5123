package pdf

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malkitsweets/invoicing-api/internal/domain/entity"
	"github.com/malkitsweets/invoicing-api/pkg/logger"
)

func sampleDocument() entity.InvoiceDocument {
	items := []entity.LineItem{
		{Description: "Baklava", Quantity: entity.FlexNumber{Raw: "2", Set: true}, Price: entity.FlexNumber{Raw: "3.00", Set: true}},
		{Description: "Barfi", Quantity: entity.FlexNumber{Raw: "1", Set: true}, Price: entity.FlexNumber{Raw: "4.00", Set: true}},
	}
	vendor := entity.Vendor{
		Name:    "Malkit Sweets",
		Email:   "pedidos@malkit.co",
		Address: "Calle 1 # 2-3",
		City:    "Pastryville",
		Phone:   "555-1000",
	}
	return entity.BuildInvoiceDocument("INV-0042", "03/15/2026", vendor, items, "entregar refrigerado")
}

// logoServer sirve un PNG de 1x1 válido, como lo haría el sitio real.
func logoServer(t *testing.T) *httptest.Server {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 79, G: 70, B: 229, A: 255})
	require.NoError(t, png.Encode(&buf, img))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRender_GeneraUnPDF(t *testing.T) {
	r := NewInvoiceRenderer(logger.Nop())
	r.logoURL = logoServer(t).URL

	out, err := r.Render(context.Background(), sampleDocument())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"), "los bytes deben ser un PDF")
}

// Sin logo descargable la factura sale igual, con la marca en texto.
func TestRender_SinLogoUsaTextoDeRespaldo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	r := NewInvoiceRenderer(logger.Nop())
	r.logoURL = srv.URL

	out, err := r.Render(context.Background(), sampleDocument())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestRender_SinNotasNiContacto(t *testing.T) {
	r := NewInvoiceRenderer(logger.Nop())
	r.logoURL = "http://127.0.0.1:1" // inalcanzable a propósito

	doc := entity.BuildInvoiceDocument("INV-0001", "", entity.Vendor{Name: "Malkit"}, nil, "")
	out, err := r.Render(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestFetchLogo_DevuelveNilSiFalla(t *testing.T) {
	r := NewInvoiceRenderer(logger.Nop())
	r.logoURL = "http://127.0.0.1:1"
	assert.Nil(t, r.fetchLogo(context.Background()), "un logo inalcanzable se reporta como nil")
}
