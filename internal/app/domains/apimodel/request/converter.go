package request

import (
	"strconv"

	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/entity/etgrain"
)

// ToRecord 将松散类型请求归一化为全默认值的领域记录。
// 补默认值的策略全部集中在这里：数值字段缺失/无法解析取 0
// （每袋月租取 50），分类字段缺失取默认类目。归一化永不失败。
func (r PredictRequest) ToRecord() etgrain.Record {
	rec := etgrain.DefaultRecord()

	rec.GrainType = coerceString(r["grain_type"], rec.GrainType)
	rec.ActivityStatus = coerceString(r["activity_status"], rec.ActivityStatus)
	rec.SoldStatus = coerceString(r["sold_status"], rec.SoldStatus)

	rec.TotalBags = coerceFloat(r["total_bags"], 0)
	rec.TotalWeightKg = coerceFloat(r["total_weight_kg"], 0)
	rec.StorageDurationDays = coerceFloat(r["storage_duration_days"], 0)
	rec.MonthlyRentPerBag = coerceFloat(r["monthly_rent_per_bag"], etgrain.DefaultMonthlyRentPerBag)
	rec.TotalRentPaid = coerceFloat(r["total_rent_paid"], 0)

	return rec
}

// ToBatchRecords 将批量请求归一化为有序记录列表，customerId 原样透传
func (r *BatchPredictRequest) ToBatchRecords() []etgrain.BatchRecord {
	records := make([]etgrain.BatchRecord, 0, len(r.Customers))
	for _, customer := range r.Customers {
		records = append(records, etgrain.BatchRecord{
			CustomerID: customer["customerId"],
			Record:     customer.ToRecord(),
		})
	}
	return records
}

// coerceFloat 数值强制转换：JSON 数字直接取值，数字字符串解析，
// 其余一律取默认值，永不报错
func coerceFloat(v interface{}, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
		return def
	default:
		return def
	}
}

// coerceString 分类字段取值：非字符串一律取默认值
func coerceString(v interface{}, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}
