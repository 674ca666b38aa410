package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriapp/nutricli/internal/client/models"
)

func meal(id string, created time.Time, cal, prot, carbs, fat float64) models.Meal {
	return models.Meal{
		ID:            id,
		CreatedAt:     models.Timestamp{Time: created},
		TotalCalories: models.FlexFloat(cal),
		TotalProteinG: models.FlexFloat(prot),
		TotalCarbsG:   models.FlexFloat(carbs),
		TotalFatG:     models.FlexFloat(fat),
	}
}

func ids(meals []models.Meal) []string {
	out := make([]string, 0, len(meals))
	for _, m := range meals {
		out = append(out, m.ID)
	}
	return out
}

func TestResolvePresets(t *testing.T) {
	// Tuesday.
	now := time.Date(2024, 1, 2, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		spec RangeSpec
		from time.Time
		to   time.Time
	}{
		{
			name: "today",
			spec: RangeSpec{Preset: PresetToday},
			from: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 1, 2, 23, 59, 59, 0, time.UTC),
		},
		{
			name: "week starts on ISO Monday",
			spec: RangeSpec{Preset: PresetThisWeek},
			from: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 1, 2, 23, 59, 59, 0, time.UTC),
		},
		{
			name: "month starts on the first",
			spec: RangeSpec{Preset: PresetThisMonth},
			from: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 1, 2, 23, 59, 59, 0, time.UTC),
		},
		{
			name: "custom inclusive bounds",
			spec: RangeSpec{Preset: PresetCustom, FromDate: "2024-01-01", ToDate: "2024-01-15"},
			from: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r, err := tc.spec.Resolve(now)
			require.NoError(t, err)
			assert.Equal(t, tc.from, r.From)
			assert.Equal(t, tc.to, r.To)
		})
	}
}

func TestResolveWeekOnSunday(t *testing.T) {
	// Sunday belongs to the week opened by the previous Monday.
	sunday := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)
	r, err := RangeSpec{Preset: PresetThisWeek}.Resolve(sunday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.From)
}

func TestResolveAllAndUnboundedCustom(t *testing.T) {
	now := time.Now()

	r, err := RangeSpec{Preset: PresetAll}.Resolve(now)
	require.NoError(t, err)
	assert.True(t, r.From.IsZero())
	assert.True(t, r.To.IsZero())
	assert.True(t, r.Contains(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))

	r, err = RangeSpec{Preset: PresetCustom, FromDate: "2024-01-01"}.Resolve(now)
	require.NoError(t, err)
	assert.True(t, r.To.IsZero())
	assert.False(t, r.Contains(time.Date(2023, 12, 31, 23, 59, 59, 0, now.Location())))
	assert.True(t, r.Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, now.Location())))
}

func TestResolveUnknownPreset(t *testing.T) {
	_, err := RangeSpec{Preset: "fortnight"}.Resolve(time.Now())
	require.Error(t, err)
}

func TestValidateDate(t *testing.T) {
	require.NoError(t, ValidateDate(""))
	require.NoError(t, ValidateDate("2024-01-31"))
	assert.ErrorIs(t, ValidateDate("2024-1-31"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("31-01-2024"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("2024-13-01"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("yesterday"), ErrInvalidDate)
}

func TestApplyFiltersByRange(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	meals := []models.Meal{
		meal("a", day1, 500, 0, 0, 0),
		meal("b", day2, 700, 0, 0, 0),
	}

	now := time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)
	r, err := RangeSpec{Preset: PresetToday}.Resolve(now)
	require.NoError(t, err)

	got := Apply(meals, r, SortByDate, Descending)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, 700.0, got[0].TotalCalories.Float64())
}

func TestApplyBoundaryInclusive(t *testing.T) {
	r := Range{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC),
	}
	meals := []models.Meal{
		meal("start", r.From, 1, 0, 0, 0),
		meal("end", r.To, 2, 0, 0, 0),
		meal("before", r.From.Add(-time.Second), 3, 0, 0, 0),
		meal("after", r.To.Add(time.Second), 4, 0, 0, 0),
	}

	got := Apply(meals, r, SortByDate, Ascending)
	assert.Equal(t, []string{"start", "end"}, ids(got))
}

func TestApplySortKeys(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	t3 := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	meals := []models.Meal{
		meal("low", t3, 100, 5, 30, 2),
		meal("mid", t1, 400, 25, 10, 9),
		meal("high", t2, 900, 15, 80, 40),
	}

	tests := []struct {
		name     string
		key      SortKey
		dir      SortDir
		expected []string
	}{
		{"calories asc", SortByCalories, Ascending, []string{"low", "mid", "high"}},
		{"calories desc", SortByCalories, Descending, []string{"high", "mid", "low"}},
		{"protein desc", SortByProtein, Descending, []string{"mid", "high", "low"}},
		{"carbs asc", SortByCarbs, Ascending, []string{"mid", "low", "high"}},
		{"fat desc", SortByFat, Descending, []string{"high", "mid", "low"}},
		{"date asc", SortByDate, Ascending, []string{"mid", "high", "low"}},
		{"date desc", SortByDate, Descending, []string{"low", "high", "mid"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(meals, Range{}, tc.key, tc.dir)
			assert.Equal(t, tc.expected, ids(got))
		})
	}
}

func TestApplyTieBreaksByNewestFirst(t *testing.T) {
	older := meal("older", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), 500, 0, 0, 0)
	newer := meal("newer", time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC), 500, 0, 0, 0)

	for _, dir := range []SortDir{Ascending, Descending} {
		got := Apply([]models.Meal{older, newer}, Range{}, SortByCalories, dir)
		assert.Equal(t, []string{"newer", "older"}, ids(got), "dir=%s", dir)
	}
}

func TestApplyIsDeterministicAndPure(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)
	input := []models.Meal{
		meal("b", t2, 200, 0, 0, 0),
		meal("a", t1, 100, 0, 0, 0),
	}
	snapshot := []string{"b", "a"}

	first := Apply(input, Range{}, SortByCalories, Ascending)
	second := Apply(input, Range{}, SortByCalories, Ascending)

	assert.Equal(t, ids(first), ids(second))
	// Source order must survive the transform.
	assert.Equal(t, snapshot, ids(input))
}

func TestApplyEmptyInputs(t *testing.T) {
	assert.Empty(t, Apply(nil, Range{}, SortByDate, Descending))

	outOfRange := []models.Meal{meal("x", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 1, 0, 0, 0)}
	r := Range{From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	assert.Empty(t, Apply(outOfRange, r, SortByDate, Descending))
}
