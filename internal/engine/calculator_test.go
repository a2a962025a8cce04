package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dataprotect/dpdash/internal/client"
	"github.com/dataprotect/dpdash/internal/model"
)

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 0.0, safeDivide(10, 0))
	assert.Equal(t, 2.5, safeDivide(5, 2))
}

func TestClampPercent(t *testing.T) {
	cases := []struct {
		input, want float64
	}{
		{-5, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{120, 100},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, clampPercent(tc.input), "input=%v", tc.input)
	}
}

func TestStoragePercent(t *testing.T) {
	assert.Equal(t, 25.0, StoragePercent(25000, 100000))
	assert.Equal(t, 45.0, StoragePercent(45000, 100000))
	assert.Equal(t, 0.0, StoragePercent(100, 0))
}

func TestCalcObjective(t *testing.T) {
	rto := CalcObjective(0.5, 2)
	assert.True(t, rto.Met)
	assert.Equal(t, 75.0, rto.Headroom)

	rpo := CalcObjective(15, 60)
	assert.True(t, rpo.Met)
	assert.Equal(t, 75.0, rpo.Headroom)

	missed := CalcObjective(3, 2)
	assert.False(t, missed.Met)
	assert.Equal(t, 0.0, missed.Headroom)

	noTarget := CalcObjective(1, 0)
	assert.False(t, noTarget.Met)
	assert.Equal(t, 0.0, noTarget.Headroom)
}

func TestDerive(t *testing.T) {
	m := model.MetricsSnapshot{
		ActiveJobs:        3,
		SuccessRate:       97.345,
		StorageUsedGB:     25000,
		StorageCapacityGB: 100000,
		CostSavings:       5300,
		SLA:               model.DefaultSLA(),
	}
	s := Derive(m)
	assert.Equal(t, 3, s.ActiveJobs)
	assert.Equal(t, 97.345, s.SuccessRate)
	assert.Equal(t, 25.0, s.StoragePercent)
	assert.Equal(t, 25.0, s.StorageUsedTB)
	assert.Equal(t, 5300.0, s.CostSavings)
	assert.Equal(t, 0.5, s.RTO.Actual)
	assert.Equal(t, 2.0, s.RTO.Target)
	assert.Equal(t, 15.0, s.RPO.Actual)
	assert.Equal(t, 60.0, s.RPO.Target)
	assert.Equal(t, 99.99, s.Availability)

	// Pure: same input, same output.
	assert.Equal(t, s, Derive(m))
}

func TestDeriveView_NilUsesDefaults(t *testing.T) {
	s := DeriveView(nil)
	assert.Equal(t, 0, s.ActiveJobs)
	assert.Equal(t, 0.0, s.StoragePercent)
	assert.Equal(t, 0.5, s.RTO.Actual)
	assert.Equal(t, 99.99, s.Availability)
}

func TestNormalizeMetrics_MissingSLA(t *testing.T) {
	m := NormalizeMetrics(&client.MetricsResponse{
		StorageUsedGB:     f64(25000),
		StorageCapacityGB: f64(100000),
	})
	assert.Equal(t, model.DefaultSLA(), m.SLA)
	assert.Equal(t, 25.0, Derive(m).StoragePercent)
}

func TestNormalizeMetrics_PartialSLA(t *testing.T) {
	m := NormalizeMetrics(&client.MetricsResponse{
		SLACompliance: &client.SLACompliance{RTOHours: f64(1.25), AvailabilityPercent: f64(99.5)},
	})
	assert.Equal(t, 1.25, m.SLA.RTOHours)
	assert.Equal(t, model.DefaultRTOTargetHours, m.SLA.RTOTargetHours)
	assert.Equal(t, model.DefaultRPOMinutes, m.SLA.RPOMinutes)
	assert.Equal(t, model.DefaultRPOTargetMinutes, m.SLA.RPOTargetMinutes)
	assert.Equal(t, 99.5, m.SLA.AvailabilityPercent)
}

func TestNormalizeMetrics_Defaults(t *testing.T) {
	assert.Equal(t, model.DefaultMetrics(), NormalizeMetrics(nil))
	assert.Equal(t, model.DefaultMetrics(), NormalizeMetrics(&client.MetricsResponse{}))

	m := NormalizeMetrics(&client.MetricsResponse{StorageCapacityGB: f64(0)})
	assert.Equal(t, model.DefaultStorageCapacityGB, m.StorageCapacityGB)
}

func TestNormalizeJobs(t *testing.T) {
	entries := []client.JobEntry{
		{JobID: "a", Status: "completed", ProgressPercent: f64(100)},
		{JobID: "b", Status: "running", ProgressPercent: f64(142)},
		{JobID: "c", Status: "failed"},
		{JobID: "d", Status: "pending"},
	}

	jobs := NormalizeJobs(entries, 3)
	assert.Len(t, jobs, 3)
	assert.Equal(t, "a", jobs[0].ID)
	assert.Equal(t, model.JobRunning, jobs[1].Status)
	assert.Equal(t, 100.0, jobs[1].ProgressPercent)
	assert.Equal(t, 0.0, jobs[2].ProgressPercent)

	all := NormalizeJobs(entries, 0)
	assert.Len(t, all, 4)
	assert.Equal(t, model.JobUnknown, all[3].Status)

	assert.Empty(t, NormalizeJobs(nil, 5))
}

func TestNormalizeTrends(t *testing.T) {
	got := NormalizeTrends([]client.TrendEntry{
		{Date: "2025-01-01", StorageGB: f64(40000)},
		{Date: "2025-01-02"},
	})
	assert.Equal(t, []model.TrendPoint{
		{Date: "2025-01-01", StorageGB: 40000},
		{Date: "2025-01-02", StorageGB: 0},
	}, got)
}
