package mdmodel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gangadhar0424/Warehouse-management-system/internal/app/config"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/entity/etfeature"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/logger"
)

func testLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.NewZapLogger("error")
	require.NoError(t, err)
	return log
}

func artifactPair(model string) config.ArtifactConfig {
	return config.ArtifactConfig{
		ModelPath:   filepath.Join("testdata", model),
		EncoderPath: filepath.Join("testdata", "encoders.json"),
	}
}

func TestNewRegistryAllLoaded(t *testing.T) {
	registry := NewRegistry(context.Background(), config.ModelsConfig{
		Price:    artifactPair("price_model.json"),
		Profit:   artifactPair("profit_model.json"),
		Duration: artifactPair("duration_model.json"),
	}, testLogger(t))

	assert.True(t, registry.Loaded(etfeature.TaskPrice))
	assert.True(t, registry.Loaded(etfeature.TaskProfit))
	assert.True(t, registry.Loaded(etfeature.TaskDuration))

	model, ok := registry.Get(etfeature.TaskPrice)
	require.True(t, ok)
	assert.Equal(t, "test-price-1", model.Version())
}

func TestNewRegistryIndependentFailures(t *testing.T) {
	// 价格模型文件缺失，不影响其余两个任务的加载
	registry := NewRegistry(context.Background(), config.ModelsConfig{
		Price: config.ArtifactConfig{
			ModelPath:   filepath.Join("testdata", "no_such_model.json"),
			EncoderPath: filepath.Join("testdata", "encoders.json"),
		},
		Profit:   artifactPair("profit_model.json"),
		Duration: artifactPair("duration_model.json"),
	}, testLogger(t))

	assert.False(t, registry.Loaded(etfeature.TaskPrice))
	assert.True(t, registry.Loaded(etfeature.TaskProfit))
	assert.True(t, registry.Loaded(etfeature.TaskDuration))

	_, ok := registry.Get(etfeature.TaskPrice)
	assert.False(t, ok)
}

func TestNewRegistryDriftedEncodersFailPair(t *testing.T) {
	// 编码表与服务端不一致：整个制品对作废
	registry := NewRegistry(context.Background(), config.ModelsConfig{
		Price: config.ArtifactConfig{
			ModelPath:   filepath.Join("testdata", "price_model.json"),
			EncoderPath: filepath.Join("testdata", "encoders_drifted.json"),
		},
		Profit:   artifactPair("profit_model.json"),
		Duration: artifactPair("duration_model.json"),
	}, testLogger(t))

	assert.False(t, registry.Loaded(etfeature.TaskPrice))
	assert.True(t, registry.Loaded(etfeature.TaskProfit))
}

func TestNewRegistryWrongFeatureOrder(t *testing.T) {
	// 给 duration 任务配价格模型：特征集不匹配，拒绝加载
	registry := NewRegistry(context.Background(), config.ModelsConfig{
		Duration: artifactPair("price_model.json"),
	}, testLogger(t))

	assert.False(t, registry.Loaded(etfeature.TaskDuration))
}

func TestNewRegistryEmptyConfig(t *testing.T) {
	registry := NewRegistry(context.Background(), config.ModelsConfig{}, testLogger(t))

	assert.False(t, registry.Loaded(etfeature.TaskPrice))
	assert.False(t, registry.Loaded(etfeature.TaskProfit))
	assert.False(t, registry.Loaded(etfeature.TaskDuration))
}
