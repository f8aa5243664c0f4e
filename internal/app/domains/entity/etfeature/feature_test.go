package etfeature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/entity/etgrain"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/errorx"
)

func sampleRecord() etgrain.Record {
	return etgrain.Record{
		GrainType:           "rice",
		ActivityStatus:      "inactive",
		SoldStatus:          "sold",
		TotalBags:           100,
		TotalWeightKg:       5000,
		StorageDurationDays: 30,
		MonthlyRentPerBag:   50,
		TotalRentPaid:       1500,
	}
}

func TestBuildPrice(t *testing.T) {
	got := BuildPrice(sampleRecord())

	require.Len(t, got, len(PriceFeatureOrder))
	assert.Equal(t, []float64{1, 100, 5000, 30, 50, 1500, 1, 0}, got)
}

func TestBuildProfit(t *testing.T) {
	got := BuildProfit(sampleRecord())

	// 与价格向量的区别只在去掉末位的售出状态
	require.Len(t, got, len(ProfitFeatureOrder))
	assert.Equal(t, []float64{1, 100, 5000, 30, 50, 1500, 1}, got)
}

func TestBuildDuration(t *testing.T) {
	got := BuildDuration(sampleRecord())

	require.Len(t, got, len(DurationFeatureOrder))
	assert.Equal(t, []float64{1, 100, 5000, 50, 1}, got)
}

func TestBuildDefaultedRecordHasNoGaps(t *testing.T) {
	// 全默认记录也必须产出完整向量：不存在缺失位
	rec := etgrain.DefaultRecord()

	for _, task := range []Task{TaskPrice, TaskProfit, TaskDuration} {
		got, err := Build(task, rec)
		require.NoError(t, err)

		order, err := FeatureOrder(task)
		require.NoError(t, err)
		assert.Len(t, got, len(order))
	}

	price := BuildPrice(rec)
	assert.Equal(t, []float64{0, 0, 0, 0, etgrain.DefaultMonthlyRentPerBag, 0, 0, 1}, price)
}

func TestBuildUnknownTask(t *testing.T) {
	_, err := Build(Task("weather"), etgrain.DefaultRecord())
	assert.ErrorIs(t, err, errorx.ErrUnknownTask)

	_, err = FeatureOrder(Task("weather"))
	assert.ErrorIs(t, err, errorx.ErrUnknownTask)
}

func TestFeatureOrderLengths(t *testing.T) {
	// 字段数是与已训练模型的绑定契约
	assert.Len(t, PriceFeatureOrder, 8)
	assert.Len(t, ProfitFeatureOrder, 7)
	assert.Len(t, DurationFeatureOrder, 5)
}
