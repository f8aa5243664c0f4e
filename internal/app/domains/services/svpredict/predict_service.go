package svpredict

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/atomic"

	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/entity/etfeature"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/entity/etgrain"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/entity/etpredict"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/infra/artifact"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/errorx"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/logger"
)

// defaultProbability 模型不支持概率输出时的兜底概率。
// 启发式占位值，不是校准过的统计量。
const defaultProbability = 0.75

// daysPerMonth 天数折算月数的系数
const daysPerMonth = 30.0

// ModelRegistry 预测服务依赖的模型注册表能力
type ModelRegistry interface {
	Get(task etfeature.Task) (artifact.Model, bool)
	Loaded(task etfeature.Task) bool
}

// PredictService 预测服务，负责预测业务编排：
// 特征组装 → 模型推理 → 结果整形。无请求间共享可变状态，
// 并发调用安全（注册表只读，计数器原子递增）。
type PredictService struct {
	registry ModelRegistry
	log      logger.Logger

	served atomic.Int64 // 成功返回的预测数
	failed atomic.Int64 // 推理阶段失败的预测数
}

// NewPredictService 创建预测服务实例
func NewPredictService(registry ModelRegistry, log logger.Logger) *PredictService {
	return &PredictService{
		registry: registry,
		log:      log,
	}
}

// PredictPrice 预测粮食售价
func (s *PredictService) PredictPrice(ctx context.Context, rec etgrain.Record) (*etpredict.PriceResult, error) {
	model, ok := s.registry.Get(etfeature.TaskPrice)
	if !ok {
		return nil, errorx.ErrModelUnavailable
	}

	predicted, err := model.Predict(etfeature.BuildPrice(rec))
	if err != nil {
		s.failed.Inc()
		return nil, fmt.Errorf("price inference failed: %w", err)
	}

	// 置信档位：非负预测给 high，否则 medium。占位启发式。
	confidence := etpredict.ConfidenceMedium
	if predicted >= 0 {
		confidence = etpredict.ConfidenceHigh
	}

	s.served.Inc()
	return &etpredict.PriceResult{
		PredictedPrice: predicted,
		Confidence:     confidence,
		Unit:           etpredict.UnitPricePerKg,
	}, nil
}

// PredictProfit 预测盈亏分类
func (s *PredictService) PredictProfit(ctx context.Context, rec etgrain.Record) (*etpredict.ProfitResult, error) {
	model, ok := s.registry.Get(etfeature.TaskProfit)
	if !ok {
		return nil, errorx.ErrModelUnavailable
	}

	features := etfeature.BuildProfit(rec)
	class, err := model.Predict(features)
	if err != nil {
		s.failed.Inc()
		return nil, fmt.Errorf("profit inference failed: %w", err)
	}
	isProfitable := class != 0

	// 模型支持概率输出时取预测类别的概率质量，否则用兜底概率
	probability := defaultProbability
	if prob, ok := model.(artifact.ProbabilityPredictor); ok {
		if dist, err := prob.PredictProba(features); err == nil && len(dist) >= 2 {
			if isProfitable {
				probability = dist[1]
			} else {
				probability = dist[0]
			}
		}
	}

	recommendation := etpredict.RecommendationSell
	if isProfitable {
		recommendation = etpredict.RecommendationHold
	}

	s.served.Inc()
	return &etpredict.ProfitResult{
		IsProfitable:   isProfitable,
		Probability:    probability,
		Recommendation: recommendation,
	}, nil
}

// PredictDuration 预测仓储时长
func (s *PredictService) PredictDuration(ctx context.Context, rec etgrain.Record) (*etpredict.DurationResult, error) {
	model, ok := s.registry.Get(etfeature.TaskDuration)
	if !ok {
		return nil, errorx.ErrModelUnavailable
	}

	days, err := model.Predict(etfeature.BuildDuration(rec))
	if err != nil {
		s.failed.Inc()
		return nil, fmt.Errorf("duration inference failed: %w", err)
	}

	s.served.Inc()
	return &etpredict.DurationResult{
		PredictedDays:   days,
		Unit:            etpredict.UnitDays,
		EstimatedMonths: math.Round(days/daysPerMonth*10) / 10,
	}, nil
}

// PredictBatch 批量预测。对每条记录独立跑价格和盈亏两个任务
// （时长不在批量范围内），单条失败不影响其他记录、不打乱顺序：
// 输出与输入同序同长，失败任务落为对应的非 OK 状态。
func (s *PredictService) PredictBatch(ctx context.Context, records []etgrain.BatchRecord) []etpredict.BatchResult {
	results := make([]etpredict.BatchResult, 0, len(records))

	for _, br := range records {
		results = append(results, etpredict.BatchResult{
			CustomerID: br.CustomerID,
			Price:      s.batchPrice(ctx, br.Record),
			Profit:     s.batchProfit(ctx, br.Record),
		})
	}

	return results
}

// batchPrice 批量中单条记录的价格任务，失败转为状态而不上抛
func (s *PredictService) batchPrice(ctx context.Context, rec etgrain.Record) etpredict.PriceOutcome {
	result, err := s.PredictPrice(ctx, rec)
	if err != nil {
		if errors.Is(err, errorx.ErrModelUnavailable) {
			return etpredict.PriceOutcome{Status: etpredict.OutcomeUnavailable}
		}
		s.log.Warnf(ctx, "batch price prediction failed: %v", err)
		return etpredict.PriceOutcome{Status: etpredict.OutcomeFailed, Err: err.Error()}
	}
	return etpredict.PriceOutcome{Status: etpredict.OutcomeOK, Value: result.PredictedPrice}
}

// batchProfit 批量中单条记录的盈亏任务，失败转为状态而不上抛
func (s *PredictService) batchProfit(ctx context.Context, rec etgrain.Record) etpredict.ProfitOutcome {
	result, err := s.PredictProfit(ctx, rec)
	if err != nil {
		if errors.Is(err, errorx.ErrModelUnavailable) {
			return etpredict.ProfitOutcome{Status: etpredict.OutcomeUnavailable}
		}
		s.log.Warnf(ctx, "batch profit prediction failed: %v", err)
		return etpredict.ProfitOutcome{Status: etpredict.OutcomeFailed, Err: err.Error()}
	}
	return etpredict.ProfitOutcome{Status: etpredict.OutcomeOK, Profitable: result.IsProfitable}
}

// Stats 返回累计计数（成功数、失败数），停机时输出
func (s *PredictService) Stats() (served, failed int64) {
	return s.served.Load(), s.failed.Load()
}
