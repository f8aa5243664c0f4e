package etfeature

import (
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/entity/etgrain"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/errorx"
)

// Task 预测任务
type Task string

const (
	TaskPrice    Task = "price"
	TaskProfit   Task = "profit"
	TaskDuration Task = "duration"
)

// 各任务特征向量的字段顺序。顺序和字段集是与已训练模型的绑定契约，
// 必须与训练时完全一致——整个系统最脆弱的耦合点，不得改动。
var (
	PriceFeatureOrder = []string{
		"grain_type_encoded",
		"total_bags",
		"total_weight_kg",
		"storage_duration_days",
		"monthly_rent_per_bag",
		"total_rent_paid",
		"activity_status_encoded",
		"sold_status_encoded",
	}

	// 利润分类不含售出状态
	ProfitFeatureOrder = []string{
		"grain_type_encoded",
		"total_bags",
		"total_weight_kg",
		"storage_duration_days",
		"monthly_rent_per_bag",
		"total_rent_paid",
		"activity_status_encoded",
	}

	// 仓储时长预测不含已仓储天数、已付租金和售出状态
	DurationFeatureOrder = []string{
		"grain_type_encoded",
		"total_bags",
		"total_weight_kg",
		"monthly_rent_per_bag",
		"activity_status_encoded",
	}
)

// FeatureOrder 返回指定任务的特征字段顺序
func FeatureOrder(task Task) ([]string, error) {
	switch task {
	case TaskPrice:
		return PriceFeatureOrder, nil
	case TaskProfit:
		return ProfitFeatureOrder, nil
	case TaskDuration:
		return DurationFeatureOrder, nil
	default:
		return nil, errorx.ErrUnknownTask
	}
}

// Build 按任务组装定长特征向量。输入记录已经过归一化，
// 输出向量保证完整：每个字段都有数值，不存在缺失位。
func Build(task Task, rec etgrain.Record) ([]float64, error) {
	switch task {
	case TaskPrice:
		return BuildPrice(rec), nil
	case TaskProfit:
		return BuildProfit(rec), nil
	case TaskDuration:
		return BuildDuration(rec), nil
	default:
		return nil, errorx.ErrUnknownTask
	}
}

// BuildPrice 组装价格预测特征向量（8 维）
func BuildPrice(rec etgrain.Record) []float64 {
	return []float64{
		float64(etgrain.EncodeGrainType(rec.GrainType)),
		rec.TotalBags,
		rec.TotalWeightKg,
		rec.StorageDurationDays,
		rec.MonthlyRentPerBag,
		rec.TotalRentPaid,
		float64(etgrain.EncodeActivityStatus(rec.ActivityStatus)),
		float64(etgrain.EncodeSoldStatus(rec.SoldStatus)),
	}
}

// BuildProfit 组装利润分类特征向量（7 维）
func BuildProfit(rec etgrain.Record) []float64 {
	return []float64{
		float64(etgrain.EncodeGrainType(rec.GrainType)),
		rec.TotalBags,
		rec.TotalWeightKg,
		rec.StorageDurationDays,
		rec.MonthlyRentPerBag,
		rec.TotalRentPaid,
		float64(etgrain.EncodeActivityStatus(rec.ActivityStatus)),
	}
}

// BuildDuration 组装仓储时长预测特征向量（5 维）
func BuildDuration(rec etgrain.Record) []float64 {
	return []float64{
		float64(etgrain.EncodeGrainType(rec.GrainType)),
		rec.TotalBags,
		rec.TotalWeightKg,
		rec.MonthlyRentPerBag,
		float64(etgrain.EncodeActivityStatus(rec.ActivityStatus)),
	}
}
