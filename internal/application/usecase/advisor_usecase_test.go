package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Thahab-api/internal/application/dto"
	"github.com/jhoicas/Thahab-api/internal/application/store"
	"github.com/jhoicas/Thahab-api/internal/application/usecase"
	"github.com/jhoicas/Thahab-api/internal/domain"
	"github.com/jhoicas/Thahab-api/internal/domain/entity"
	"github.com/jhoicas/Thahab-api/internal/infrastructure/storage"
	"github.com/jhoicas/Thahab-api/pkg/logger"
)

// stubAdvisor implementación controlable del puerto AdvisorService.
type stubAdvisor struct {
	text      string
	err       error
	gotSales  int
	gotName   string
	gotKarat  entity.Karat
	describes int
}

func (s *stubAdvisor) DescribeProduct(_ context.Context, p entity.Product) (string, error) {
	s.describes++
	s.gotName = p.Name
	s.gotKarat = p.Karat
	return s.text, s.err
}

func (s *stubAdvisor) SummarizeSales(_ context.Context, sales []entity.Sale) (string, error) {
	s.gotSales = len(sales)
	return s.text, s.err
}

func newAdvisorFixture(t *testing.T, llm *stubAdvisor) (*usecase.AdvisorUseCase, *store.Store) {
	t.Helper()
	st := store.New(context.Background(), storage.NewMemoryKV(), logger.Nop())
	return usecase.NewAdvisorUseCase(llm, st, logger.Nop()), st
}

// Éxito: el texto llega recortado y sin marca de fallback.
func TestDescribeProduct_Exito(t *testing.T) {
	llm := &stubAdvisor{text: "  وصف جميل  "}
	uc, st := newAdvisorFixture(t, llm)
	st.AddProduct(context.Background(), entity.Product{ID: "p1", Name: "خاتم", Karat: entity.Karat21})

	out, err := uc.DescribeProduct(context.Background(), dto.DescribeProductRequest{ProductID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, "وصف جميل", out.Text)
	assert.False(t, out.Fallback)
	assert.Equal(t, "خاتم", llm.gotName)
}

// Cualquier fallo del proveedor degrada al texto fijo; nunca hay error HTTP.
func TestDescribeProduct_FalloDegradaATextoFijo(t *testing.T) {
	llm := &stubAdvisor{err: errors.New("api key no configurada")}
	uc, st := newAdvisorFixture(t, llm)
	st.AddProduct(context.Background(), entity.Product{ID: "p1", Name: "خاتم"})

	out, err := uc.DescribeProduct(context.Background(), dto.DescribeProductRequest{ProductID: "p1"})
	require.NoError(t, err, "el fallo del proveedor no se propaga")
	assert.Equal(t, usecase.FallbackDescription, out.Text)
	assert.True(t, out.Fallback)
}

// Pieza borrador: atributos sueltos sin product_id.
func TestDescribeProduct_PiezaBorrador(t *testing.T) {
	llm := &stubAdvisor{text: "وصف"}
	uc, _ := newAdvisorFixture(t, llm)

	_, err := uc.DescribeProduct(context.Background(), dto.DescribeProductRequest{
		Name: "سلسلة", Karat: "18", Weight: "12.5",
	})
	require.NoError(t, err)
	assert.Equal(t, "سلسلة", llm.gotName)
	assert.Equal(t, entity.Karat18, llm.gotKarat)
}

func TestDescribeProduct_SinNombreNiID(t *testing.T) {
	uc, _ := newAdvisorFixture(t, &stubAdvisor{})
	_, err := uc.DescribeProduct(context.Background(), dto.DescribeProductRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDescribeProduct_ProductoInexistente(t *testing.T) {
	uc, _ := newAdvisorFixture(t, &stubAdvisor{})
	_, err := uc.DescribeProduct(context.Background(), dto.DescribeProductRequest{ProductID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El análisis recibe como máximo las 20 ventas más recientes.
func TestSummarizeSales_LimitaMuestra(t *testing.T) {
	llm := &stubAdvisor{text: "تحليل"}
	uc, st := newAdvisorFixture(t, llm)
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		st.AddSale(ctx, entity.Sale{ID: string(rune('a' + i))})
	}

	out, err := uc.SummarizeSales(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, llm.gotSales)
	assert.False(t, out.Fallback)
}

func TestSummarizeSales_FalloDegradaATextoFijo(t *testing.T) {
	llm := &stubAdvisor{err: errors.New("timeout")}
	uc, _ := newAdvisorFixture(t, llm)

	out, err := uc.SummarizeSales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, usecase.FallbackAnalysis, out.Text)
	assert.True(t, out.Fallback)
}
