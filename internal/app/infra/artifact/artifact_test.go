package artifact

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLinearModel(t *testing.T) {
	model, err := LoadModel(filepath.Join("testdata", "linear.json"), []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, "test-1", model.Version())

	// 2*1 + 3*2 + 1
	got, err := model.Predict([]float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 9.0, got, 1e-9)

	// 线性模型不支持概率输出
	_, ok := model.(ProbabilityPredictor)
	assert.False(t, ok)
}

func TestLoadLogisticModel(t *testing.T) {
	model, err := LoadModel(filepath.Join("testdata", "logistic.json"), []string{"a", "b"})
	require.NoError(t, err)

	// sum = 2-1 = 1, p = sigmoid(1) ≈ 0.731 → 类别 1
	got, err := model.Predict([]float64{2, 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	// sum = 1-2 = -1 → 类别 0
	got, err = model.Predict([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	prob, ok := model.(ProbabilityPredictor)
	require.True(t, ok)

	dist, err := prob.PredictProba([]float64{2, 1})
	require.NoError(t, err)
	require.Len(t, dist, 2)
	assert.InDelta(t, 0.7310585786, dist[1], 1e-9)
	assert.InDelta(t, 1.0, dist[0]+dist[1], 1e-9)
}

func TestLoadModelMissingFile(t *testing.T) {
	_, err := LoadModel(filepath.Join("testdata", "no_such_model.json"), []string{"a"})
	assert.Error(t, err)
}

func TestLoadModelFeatureOrderMismatch(t *testing.T) {
	// 特征顺序是绑定契约：顺序不同或数量不同都拒绝加载
	_, err := LoadModel(filepath.Join("testdata", "linear.json"), []string{"b", "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feature order mismatch")

	_, err = LoadModel(filepath.Join("testdata", "linear.json"), []string{"a", "b", "c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feature count mismatch")
}

func TestPredictDimensionMismatch(t *testing.T) {
	model, err := LoadModel(filepath.Join("testdata", "linear.json"), []string{"a", "b"})
	require.NoError(t, err)

	_, err = model.Predict([]float64{1})
	assert.Error(t, err)
}

func TestLoadEncodersAndVerify(t *testing.T) {
	enc, err := LoadEncoders(filepath.Join("testdata", "encoders.json"))
	require.NoError(t, err)

	want := map[string]map[string]int{
		"grain_type":  {"wheat": 0, "rice": 1},
		"sold_status": {"sold": 0, "not_sold": 1},
	}
	assert.NoError(t, enc.Verify(want))

	// 制品可以不带服务端之外的字段表
	assert.NoError(t, enc.Verify(map[string]map[string]int{"quality_grade": {"a": 0}}))
}

func TestVerifyDriftedEncoders(t *testing.T) {
	enc, err := LoadEncoders(filepath.Join("testdata", "encoders_drifted.json"))
	require.NoError(t, err)

	// wheat/rice 编码对调：模型按另一套编码训练，必须拒绝
	err = enc.Verify(map[string]map[string]int{
		"grain_type": {"wheat": 0, "rice": 1},
	})
	assert.Error(t, err)
}
