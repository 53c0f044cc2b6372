package service

import (
	"testing"

	"launch-go/internal/models"
	"launch-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkflowService(t *testing.T) (*WorkflowService, *repository.ProductRepository) {
	t.Helper()
	db := setupTestDB(t)
	productRepo := repository.NewProductRepository(db)
	return NewWorkflowService(productRepo), productRepo
}

func TestStagesFor(t *testing.T) {
	svc, _ := newWorkflowService(t)

	physical := svc.StagesFor("physical")
	require.Len(t, physical, 5)
	assert.Equal(t, "concept", physical[0].Key)
	assert.Equal(t, "postlaunch", physical[4].Key)

	digital := svc.StagesFor("digital")
	require.Len(t, digital, 5)
	assert.Equal(t, "evergreen", digital[4].Key)

	// 未知类型回退到通用模板
	unknown := svc.StagesFor("something_else")
	require.Len(t, unknown, 3)
	assert.Equal(t, "concept", unknown[0].Key)
}

func TestFirstStageKey(t *testing.T) {
	svc, _ := newWorkflowService(t)

	assert.Equal(t, "concept", svc.FirstStageKey("physical"))
	assert.Equal(t, "concept", svc.FirstStageKey("unknown"))
}

func TestValidStage(t *testing.T) {
	svc, _ := newWorkflowService(t)

	assert.True(t, svc.ValidStage("physical", "prelaunch"))
	assert.False(t, svc.ValidStage("digital", "prelaunch"))
	assert.False(t, svc.ValidStage("physical", "nonsense"))
}

func TestUpdateProductStage(t *testing.T) {
	svc, productRepo := newWorkflowService(t)

	product := &models.Product{
		TenantID:    1,
		Name:        "SolarPack",
		ProductType: "physical",
		LaunchStage: "concept",
	}
	require.NoError(t, productRepo.Create(product))

	require.NoError(t, svc.UpdateProductStage(product.ID, 1, "content"))

	updated, err := productRepo.GetByIDAndTenantID(product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "content", updated.LaunchStage)

	// 阶段不属于该产品类型的模板
	err = svc.UpdateProductStage(product.ID, 1, "evergreen")
	assert.Error(t, err)

	// 跨租户不可见
	err = svc.UpdateProductStage(product.ID, 2, "content")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestKanban(t *testing.T) {
	svc, productRepo := newWorkflowService(t)

	require.NoError(t, productRepo.Create(&models.Product{
		TenantID: 1, Name: "A", ProductType: "physical", LaunchStage: "concept",
	}))
	require.NoError(t, productRepo.Create(&models.Product{
		TenantID: 1, Name: "B", ProductType: "physical", LaunchStage: "launch",
	}))
	require.NoError(t, productRepo.Create(&models.Product{
		TenantID: 1, Name: "C", ProductType: "digital", LaunchStage: "concept",
	}))
	require.NoError(t, productRepo.Create(&models.Product{
		TenantID: 2, Name: "D", ProductType: "physical", LaunchStage: "concept",
	}))

	resp, err := svc.Kanban(1, "physical")
	require.NoError(t, err)
	require.Len(t, resp.Columns, 5)

	// 只含本租户同类型产品，列顺序跟随模板
	assert.Equal(t, "concept", resp.Columns[0].Stage.Key)
	require.Len(t, resp.Columns[0].Products, 1)
	assert.Equal(t, "A", resp.Columns[0].Products[0].Name)

	launchCol := resp.Columns[3]
	assert.Equal(t, "launch", launchCol.Stage.Key)
	require.Len(t, launchCol.Products, 1)
	assert.Equal(t, "B", launchCol.Products[0].Name)

	// 空列返回空切片而非null
	assert.NotNil(t, resp.Columns[1].Products)
	assert.Empty(t, resp.Columns[1].Products)
}
