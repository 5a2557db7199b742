package services

import (
	"github.com/yigit/studentforce/internal/app/reports"
	"github.com/yigit/studentforce/internal/app/store"
)

// ReportOptions sets the list lengths of dashboard and report views
type ReportOptions = reports.Options

// ReportService computes aggregate views over the current snapshot
type ReportService struct {
	store *store.Store
	opts  reports.Options
}

// NewReportService creates a new report service instance
func NewReportService(s *store.Store, opts ReportOptions) *ReportService {
	return &ReportService{store: s, opts: opts}
}

// Dashboard returns the dashboard view
func (s *ReportService) Dashboard() reports.Dashboard {
	return reports.BuildDashboard(s.store.Snapshot(), s.opts)
}

// Report returns the breakdown for semester; "" or "All" means every semester
func (s *ReportService) Report(semester string) reports.Report {
	return reports.BuildReport(s.store.Snapshot(), semester, s.opts)
}

// Semesters lists the values accepted by Report
func (s *ReportService) Semesters() []string {
	return reports.Semesters(s.store.Snapshot())
}
