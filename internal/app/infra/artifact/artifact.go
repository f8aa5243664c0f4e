// Package artifact 负责从外部制品文件加载预测模型。
// 制品是导出成 JSON 的训练产物：模型文件带版本、特征顺序和系数，
// 编码器文件带训练时使用的标签编码表。加载只发生在进程启动时。
package artifact

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// 模型类型
const (
	ModelTypeLinearRegression   = "linear_regression"
	ModelTypeLogisticRegression = "logistic_regression"
)

// Model 已加载的预测模型，对并发读安全（加载后不再变更）
type Model interface {
	// Version 制品版本号
	Version() string
	// Predict 对单个特征向量输出标量预测值
	Predict(features []float64) (float64, error)
}

// ProbabilityPredictor 支持输出类别概率分布的模型（分类器可选能力）
type ProbabilityPredictor interface {
	// PredictProba 输出与 Classes 顺序对齐的概率分布
	PredictProba(features []float64) ([]float64, error)
}

// modelArtifact 模型制品文件结构
type modelArtifact struct {
	Version      string    `json:"version"`
	ModelType    string    `json:"model_type"`
	Features     []string  `json:"features"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Classes      []int     `json:"classes,omitempty"`
}

// LoadModel 从制品文件加载模型。
// wantFeatures 是该任务特征向量的绑定顺序：制品里的特征列表
// 必须逐位一致，否则模型是按别的字段顺序训练的，直接拒绝加载。
func LoadModel(path string, wantFeatures []string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact failed: %w", err)
	}

	var art modelArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("parse model artifact failed: %w", err)
	}

	if len(art.Coefficients) != len(art.Features) {
		return nil, fmt.Errorf("model artifact %s: %d coefficients for %d features", path, len(art.Coefficients), len(art.Features))
	}

	if err := checkFeatureOrder(art.Features, wantFeatures); err != nil {
		return nil, fmt.Errorf("model artifact %s: %w", path, err)
	}

	switch art.ModelType {
	case ModelTypeLinearRegression:
		return &linearModel{art: art}, nil
	case ModelTypeLogisticRegression:
		m := &logisticModel{art: art}
		if len(m.art.Classes) == 0 {
			m.art.Classes = []int{0, 1}
		}
		return m, nil
	default:
		return nil, fmt.Errorf("model artifact %s: unsupported model_type %q", path, art.ModelType)
	}
}

// checkFeatureOrder 校验特征集和顺序完全一致
func checkFeatureOrder(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("feature count mismatch: artifact has %d, serving expects %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("feature order mismatch at position %d: artifact has %q, serving expects %q", i, got[i], want[i])
		}
	}
	return nil
}

// dot 点积，特征维度不匹配时报错
func dot(coefficients, features []float64) (float64, error) {
	if len(features) != len(coefficients) {
		return 0, fmt.Errorf("feature vector length %d does not match model dimension %d", len(features), len(coefficients))
	}
	sum := 0.0
	for i, c := range coefficients {
		sum += c * features[i]
	}
	return sum, nil
}

// linearModel 线性回归模型（价格、仓储时长）
type linearModel struct {
	art modelArtifact
}

func (m *linearModel) Version() string {
	return m.art.Version
}

func (m *linearModel) Predict(features []float64) (float64, error) {
	sum, err := dot(m.art.Coefficients, features)
	if err != nil {
		return 0, err
	}
	return sum + m.art.Intercept, nil
}

// logisticModel 二分类逻辑回归模型（盈亏分类）
type logisticModel struct {
	art modelArtifact
}

func (m *logisticModel) Version() string {
	return m.art.Version
}

// Predict 输出预测类别（0 或 1），阈值 0.5
func (m *logisticModel) Predict(features []float64) (float64, error) {
	p, err := m.probability(features)
	if err != nil {
		return 0, err
	}
	if p >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

// PredictProba 输出与 Classes 顺序对齐的概率分布 [P(0), P(1)]
func (m *logisticModel) PredictProba(features []float64) ([]float64, error) {
	p, err := m.probability(features)
	if err != nil {
		return nil, err
	}
	return []float64{1 - p, p}, nil
}

// probability sigmoid(w·x + b)
func (m *logisticModel) probability(features []float64) (float64, error) {
	sum, err := dot(m.art.Coefficients, features)
	if err != nil {
		return 0, err
	}
	return 1 / (1 + math.Exp(-(sum + m.art.Intercept))), nil
}
