package etgrain

// 数值字段的默认值。缺失或无法解析的输入一律取默认值，不报错。
const (
	// DefaultMonthlyRentPerBag 每袋月租默认 50（货币单位），
	// 业务上的常见租金档位，训练数据同样以此填充缺失值
	DefaultMonthlyRentPerBag = 50.0
)

// Record 一条仓储客户记录（领域对象）
// 经过输入归一化后所有字段都有值：分类字段保底为默认类目，
// 数值字段保底为 0（每袋月租为 50）。
type Record struct {
	GrainType           string  // 粮食类型
	ActivityStatus      string  // 仓储活动状态
	SoldStatus          string  // 售出状态
	TotalBags           float64 // 总袋数
	TotalWeightKg       float64 // 总重量（kg）
	StorageDurationDays float64 // 已仓储天数
	MonthlyRentPerBag   float64 // 每袋月租
	TotalRentPaid       float64 // 已付租金总额
}

// DefaultRecord 返回全默认值的记录
func DefaultRecord() Record {
	return Record{
		GrainType:         "wheat",
		ActivityStatus:    "active",
		SoldStatus:        "not_sold",
		MonthlyRentPerBag: DefaultMonthlyRentPerBag,
	}
}

// BatchRecord 批量预测的一条输入：客户端提供的不透明标识 + 归一化后的记录。
// 标识原样回传，服务端不解释也不校验。
type BatchRecord struct {
	CustomerID interface{}
	Record     Record
}
