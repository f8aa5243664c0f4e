package mdmodel

import (
	"context"

	"github.com/gangadhar0424/Warehouse-management-system/internal/app/config"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/entity/etfeature"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/entity/etgrain"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/infra/artifact"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/logger"
)

// Registry 模型注册表
// 启动时一次性加载，之后只读：没有重载、没有热替换，
// 多请求并发读取无需加锁。加载失败的任务整个进程生命周期内不可用。
type Registry struct {
	models map[etfeature.Task]artifact.Model
}

// NewRegistry 独立加载三个任务的模型/编码器制品对。
// 单个任务加载失败只影响该任务，不阻断其他任务的加载。
func NewRegistry(ctx context.Context, cfg config.ModelsConfig, log logger.Logger) *Registry {
	r := &Registry{
		models: make(map[etfeature.Task]artifact.Model, 3),
	}

	r.load(ctx, etfeature.TaskPrice, cfg.Price, log)
	r.load(ctx, etfeature.TaskProfit, cfg.Profit, log)
	r.load(ctx, etfeature.TaskDuration, cfg.Duration, log)

	return r
}

// load 加载单个任务的制品对：模型 + 标签编码器
func (r *Registry) load(ctx context.Context, task etfeature.Task, art config.ArtifactConfig, log logger.Logger) {
	order, err := etfeature.FeatureOrder(task)
	if err != nil {
		log.Errorf(ctx, "✗ failed to load %s model: %v", task, err)
		return
	}

	model, err := artifact.LoadModel(art.ModelPath, order)
	if err != nil {
		log.Warnf(ctx, "✗ failed to load %s model: %v", task, err)
		return
	}

	encoders, err := artifact.LoadEncoders(art.EncoderPath)
	if err != nil {
		log.Warnf(ctx, "✗ failed to load %s encoders: %v", task, err)
		return
	}

	// 编码表与内置编码不一致说明模型按别的编码训练，整个制品对作废
	if err := encoders.Verify(etgrain.CategoryTables()); err != nil {
		log.Warnf(ctx, "✗ %s encoders inconsistent with serving tables: %v", task, err)
		return
	}

	r.models[task] = model
	log.Infof(ctx, "✓ %s model loaded, version=%s", task, model.Version())
}

// Get 获取任务对应的模型，未加载时返回 false
func (r *Registry) Get(task etfeature.Task) (artifact.Model, bool) {
	model, ok := r.models[task]
	return model, ok
}

// Loaded 判断任务的模型是否可用
func (r *Registry) Loaded(task etfeature.Task) bool {
	_, ok := r.models[task]
	return ok
}
