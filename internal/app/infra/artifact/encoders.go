package artifact

import (
	"encoding/json"
	"fmt"
	"os"
)

// Encoders 制品对里的标签编码器：训练时各分类字段的编码表
type Encoders struct {
	Version string                    `json:"version"`
	Tables  map[string]map[string]int `json:"tables"`
}

// LoadEncoders 从制品文件加载标签编码器
func LoadEncoders(path string) (*Encoders, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read encoder artifact failed: %w", err)
	}

	var enc Encoders
	if err := json.Unmarshal(data, &enc); err != nil {
		return nil, fmt.Errorf("parse encoder artifact failed: %w", err)
	}

	return &enc, nil
}

// Verify 校验制品里的编码表与服务端内置编码表一致。
// 不一致说明模型是按另一套标签编码训练的，继续服务会给出静默错误的预测。
func (e *Encoders) Verify(want map[string]map[string]int) error {
	for field, wantTable := range want {
		gotTable, ok := e.Tables[field]
		if !ok {
			// 训练管线只导出该任务用到的编码表，缺表不算不一致
			continue
		}
		for value, wantCode := range wantTable {
			gotCode, ok := gotTable[value]
			if !ok {
				return fmt.Errorf("encoder table %s is missing value %q", field, value)
			}
			if gotCode != wantCode {
				return fmt.Errorf("encoder table %s maps %q to %d, serving expects %d", field, value, gotCode, wantCode)
			}
		}
	}
	return nil
}
