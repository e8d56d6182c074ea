package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"olive/entities"
	"olive/pkg/analytics"
)

var june = analytics.DateRange{
	Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC),
}

func sample() Table {
	return FieldSummary([]analytics.FieldMetrics{
		{FieldID: "f1", FieldName: "North, upper", TotalTasks: 4, CompletedTasks: 2, CompletionRate: 50, TotalCost: 300, AverageCostPerTask: 150},
		{FieldID: "f2", FieldName: analytics.UnknownFieldName},
	}, june)
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample(), FormatCSV))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "Field", recs[0][0])
	assert.Equal(t, []string{"North, upper", "4", "2", "50.00", "300.00", "150.00"}, recs[1])
}

func TestXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample(), FormatXLSX))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Field summary", title)
	name, err := f.GetCellValue(sheetName, "A6")
	require.NoError(t, err)
	assert.Equal(t, "North, upper", name)
	tasks, err := f.GetCellValue(sheetName, "B6")
	require.NoError(t, err)
	assert.Equal(t, "4", tasks)
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	tbl := sample()
	for i := 0; i < 80; i++ {
		tbl.Rows = append(tbl.Rows, []any{"Grove", i, 0, 0.0, 0.0, 0.0})
	}
	require.NoError(t, Render(&buf, tbl, FormatPDF))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	var empty bytes.Buffer
	require.NoError(t, Render(&empty, Table{Title: "Empty", Headers: []string{"A"}}, FormatPDF))
	assert.True(t, bytes.HasPrefix(empty.Bytes(), []byte("%PDF-")))
}

func TestParse(t *testing.T) {
	f, ok := ParseFormat("")
	assert.True(t, ok)
	assert.Equal(t, FormatCSV, f)
	_, ok = ParseFormat("docx")
	assert.False(t, ok)

	k, ok := ParseKind("cost-analysis")
	assert.True(t, ok)
	assert.Equal(t, KindCostAnalysis, k)
	_, ok = ParseKind("weather")
	assert.False(t, ok)
}

func TestTaskCompletionAndCostTables(t *testing.T) {
	tc := TaskCompletion(analytics.CompletionRates{
		Daily:   []analytics.CompletionBucket{{Date: "2024-06-03", Total: 2, Completed: 1, Rate: 50}},
		Weekly:  []analytics.CompletionBucket{{Date: "2024-06-02", Total: 2, Completed: 1, Rate: 50}},
		Monthly: []analytics.CompletionBucket{{Date: "2024-06", Total: 2, Completed: 1, Rate: 50}},
	}, june)
	require.Len(t, tc.Rows, 3)
	assert.Equal(t, "weekly", tc.Rows[1][0])

	ca := CostAnalysis(analytics.CostAnalysis{
		TotalCost:      100,
		CostByField:    []analytics.CostByField{{FieldID: "f1", FieldName: "North", Cost: 100}},
		CostByTaskType: []analytics.CostByType{{Type: "Pruning", Cost: 100}},
		CostOverTime:   []analytics.CostPoint{{Date: "2024-06-03", Cost: 100}},
	}, june)
	require.Len(t, ca.Rows, 4)
	assert.Equal(t, []any{"total", "", 100.0}, ca.Rows[3])
}

func TestTasksTableFiltersByCreation(t *testing.T) {
	end := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	cost := 12.5
	tasks := []entities.Task{
		{ID: "a", FieldID: "f1", Title: "Prune", Status: entities.TaskCompleted, ActualEnd: &end, Cost: &cost, CreatedAt: june.Start},
		{ID: "b", FieldID: "gone", Title: "Spray", Status: entities.TaskPending, CreatedAt: june.Start.AddDate(0, 0, 3)},
		{ID: "c", FieldID: "f1", Title: "Old", CreatedAt: june.Start.AddDate(0, -1, 0)},
	}
	tbl := Tasks(tasks, []entities.Field{{ID: "f1", Name: "North"}}, june)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "North", tbl.Rows[0][1])
	assert.Equal(t, "2024-06-10", Text(tbl.Rows[0][6]))
	assert.Equal(t, analytics.UnknownFieldName, tbl.Rows[1][1])
	assert.Equal(t, "", Text(tbl.Rows[1][6]))
}
