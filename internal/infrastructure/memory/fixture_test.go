package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-core/internal/domain/entity"
	"github.com/tu-usuario/inventario-core/internal/domain/repository"
	"github.com/tu-usuario/inventario-core/internal/infrastructure/memory"
	"golang.org/x/crypto/bcrypt"
)

func TestFixtureProductRepository_CatalogoDemo(t *testing.T) {
	repo := memory.NewFixtureProductRepository()

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 6, "el catálogo demo debe tener 6 productos")

	p, err := repo.GetBySKU("MON-001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, `Monitor 24"`, p.Name)
	assert.EqualValues(t, 15, p.StockQuantity)
	assert.EqualValues(t, 5, p.MinimumStock)
	assert.False(t, p.IsLowStock())

	missing, err := repo.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFixtureProductRepository_StockBajo(t *testing.T) {
	repo := memory.NewFixtureProductRepository()

	low, err := repo.GetLowStock()
	require.NoError(t, err)

	skus := make([]string, 0, len(low))
	for _, p := range low {
		skus = append(skus, p.SKU)
	}
	assert.ElementsMatch(t, []string{"TEC-002", "PAP-003", "DET-005", "RAT-006"}, skus)
}

func TestFixtureProductRepository_EscriturasNoPersisten(t *testing.T) {
	repo := memory.NewFixtureProductRepository()

	p, err := repo.GetBySKU("MON-001")
	require.NoError(t, err)
	require.NotNil(t, p)

	p.StockQuantity = 999
	require.NoError(t, repo.Save(p))
	require.NoError(t, repo.Delete(p.ID))

	again, err := repo.GetBySKU("MON-001")
	require.NoError(t, err)
	require.NotNil(t, again, "Delete no debe desactivar nada en modo fixture")
	assert.EqualValues(t, 15, again.StockQuantity, "Save no debe modificar nada en modo fixture")
}

func TestFixtureMovementRepository_Filtros(t *testing.T) {
	repo := memory.NewFixtureMovementRepository()

	all, err := repo.List(repository.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt), "el historial va de más reciente a más antiguo")
	}

	entries, err := repo.List(repository.MovementFilter{Type: entity.MovementTypeENTRY})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	from := time.Date(2025, 2, 22, 0, 0, 0, 0, time.UTC)
	recent, err := repo.List(repository.MovementFilter{From: &from})
	require.NoError(t, err)
	assert.Len(t, recent, 3)

	byProduct, err := repo.ListByProduct("d1000000-0000-0000-0000-000000000001", 10, 0)
	require.NoError(t, err)
	assert.Len(t, byProduct, 2)

	paged, err := repo.List(repository.MovementFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, paged, 2)
	assert.Equal(t, "a1000000-0000-0000-0000-000000000004", paged[0].ID)
}

func TestFixtureTxRunner_EjecutaSinPersistir(t *testing.T) {
	products := memory.NewFixtureProductRepository()
	movements := memory.NewFixtureMovementRepository()
	runner := memory.NewFixtureTxRunner(products, movements)

	err := runner.Run(context.Background(), func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		p, err := productRepo.GetForUpdate("d1000000-0000-0000-0000-000000000001")
		require.NoError(t, err)
		require.NotNil(t, p)

		p.StockQuantity += 20
		require.NoError(t, productRepo.Save(p))
		return movementRepo.Create(&entity.StockMovement{
			ID:        "mov-demo",
			ProductID: p.ID,
			Type:      entity.MovementTypeENTRY,
			Quantity:  20,
			CreatedAt: time.Now(),
		})
	})
	require.NoError(t, err)

	p, err := products.GetBySKU("MON-001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.EqualValues(t, 15, p.StockQuantity)
}

func TestFixtureUserRepository_AdminDemo(t *testing.T) {
	repo := memory.NewFixtureUserRepository()

	u, err := repo.FindByEmail("admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("admin123")))

	missing, err := repo.FindByEmail("nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
