package engine

import (
	"github.com/dataprotect/dpdash/internal/client"
	"github.com/dataprotect/dpdash/internal/model"
)

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// NormalizeMetrics converts the wire payload into a MetricsSnapshot.
// Missing fields take their documented defaults; a non-positive capacity
// falls back to the default so percentages stay finite.
func NormalizeMetrics(r *client.MetricsResponse) model.MetricsSnapshot {
	m := model.DefaultMetrics()
	if r == nil {
		return m
	}
	if r.ActiveJobs != nil {
		m.ActiveJobs = *r.ActiveJobs
	}
	m.SuccessRate = floatOr(r.SuccessRate, 0)
	m.StorageUsedGB = floatOr(r.StorageUsedGB, 0)
	if capGB := floatOr(r.StorageCapacityGB, 0); capGB > 0 {
		m.StorageCapacityGB = capGB
	}
	m.CostSavings = floatOr(r.CostSavings, 0)

	if sla := r.SLACompliance; sla != nil {
		m.SLA = model.SLACompliance{
			RTOHours:            floatOr(sla.RTOHours, model.DefaultRTOHours),
			RTOTargetHours:      floatOr(sla.RTOTarget, model.DefaultRTOTargetHours),
			RPOMinutes:          floatOr(sla.RPOMinutes, model.DefaultRPOMinutes),
			RPOTargetMinutes:    floatOr(sla.RPOTarget, model.DefaultRPOTargetMinutes),
			AvailabilityPercent: floatOr(sla.AvailabilityPercent, model.DefaultAvailabilityPercent),
		}
	}
	return m
}

// NormalizeJobs converts wire jobs, preserving backend order (most recent
// first) and capping the result at limit.
func NormalizeJobs(entries []client.JobEntry, limit int) []model.JobSummary {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	out := make([]model.JobSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, model.JobSummary{
			ID:              e.JobID,
			InstanceName:    e.InstanceName,
			StartTime:       e.StartTime.T,
			Status:          model.ParseJobStatus(e.Status),
			ProgressPercent: clampPercent(floatOr(e.ProgressPercent, 0)),
		})
	}
	return out
}

// NormalizeTrends converts the wire series; missing volumes become zero.
func NormalizeTrends(entries []client.TrendEntry) []model.TrendPoint {
	out := make([]model.TrendPoint, 0, len(entries))
	for _, e := range entries {
		out = append(out, model.TrendPoint{
			Date:      e.Date,
			StorageGB: floatOr(e.StorageGB, 0),
		})
	}
	return out
}
