package etgrain

import "strings"

// CategoryCode 分类字段的整数编码，取值与模型训练时的标签编码一致
type CategoryCode int

// 各分类字段的编码表。进程级不可变状态：启动时即存在，任何组件不得修改。
// 编码值与训练数据的标签编码绑定，改动会让已训练模型静默失效。
var (
	grainTypeCodes = map[string]CategoryCode{
		"wheat":   0,
		"rice":    1,
		"maize":   2,
		"barley":  3,
		"soybean": 4,
	}

	activityStatusCodes = map[string]CategoryCode{
		"active":    0,
		"inactive":  1,
		"completed": 2,
	}

	soldStatusCodes = map[string]CategoryCode{
		"sold":     0,
		"not_sold": 1,
	}
)

// 各字段的默认编码。未知输入一律静默回退到默认值而不是报错，
// 保证畸形的客户端输入退化为合理预测而不是拒绝请求。
const (
	DefaultGrainTypeCode      CategoryCode = 0 // wheat
	DefaultActivityStatusCode CategoryCode = 0 // active
	DefaultSoldStatusCode     CategoryCode = 1 // not_sold
)

// EncodeGrainType 编码粮食类型，未知值回退到 wheat
func EncodeGrainType(raw string) CategoryCode {
	if code, ok := grainTypeCodes[strings.ToLower(raw)]; ok {
		return code
	}
	return DefaultGrainTypeCode
}

// EncodeActivityStatus 编码活动状态，未知值回退到 active
func EncodeActivityStatus(raw string) CategoryCode {
	if code, ok := activityStatusCodes[strings.ToLower(raw)]; ok {
		return code
	}
	return DefaultActivityStatusCode
}

// EncodeSoldStatus 编码售出状态，未知值回退到 not_sold
func EncodeSoldStatus(raw string) CategoryCode {
	if code, ok := soldStatusCodes[strings.ToLower(raw)]; ok {
		return code
	}
	return DefaultSoldStatusCode
}

// CategoryTables 导出编码表副本，供模型制品对里的编码器做一致性校验
func CategoryTables() map[string]map[string]int {
	tables := map[string]map[string]int{
		"grain_type":      {},
		"activity_status": {},
		"sold_status":     {},
	}
	for k, v := range grainTypeCodes {
		tables["grain_type"][k] = int(v)
	}
	for k, v := range activityStatusCodes {
		tables["activity_status"][k] = int(v)
	}
	for k, v := range soldStatusCodes {
		tables["sold_status"][k] = int(v)
	}
	return tables
}
