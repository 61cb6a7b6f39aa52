package handler

import (
	"net/http"

	"github.com/intep/price-monitor/internal/api/handler/router"
	"github.com/intep/price-monitor/internal/config"
	"github.com/intep/price-monitor/internal/scheduler"
	"github.com/intep/price-monitor/internal/usecases/monitoring"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(reportConfig config.Report) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardHandler(reportConfig),
		},
	}
}

func Monitor(service monitoring.ReportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/summaries",
			Method:  http.MethodGet,
			Handler: SummariesHandler(service),
		},
		{
			Path:    "/v1/revenue/annual",
			Method:  http.MethodGet,
			Handler: AnnualRevenueHandler(service),
		},
	}
}

func Snapshots(snapshots monitoring.SnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/snapshots/:run",
			Method:  http.MethodGet,
			Handler: SnapshotRunHandler(snapshots),
		},
	}
}

func Refresh(refreshService *scheduler.ReportRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/report/refresh",
			Method:  http.MethodPost,
			Handler: RunRefreshHandler(refreshService),
		},
		{
			Path:    "/v1/report/status",
			Method:  http.MethodGet,
			Handler: RefreshStatusHandler(refreshService),
		},
	}
}
