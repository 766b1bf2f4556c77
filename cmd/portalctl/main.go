package main

import (
	"fmt"
	"os"

	"github.com/hrsuite/portal-go/internal/api"
	"github.com/hrsuite/portal-go/internal/config"
	"github.com/hrsuite/portal-go/internal/pkg/prefs"
	"github.com/hrsuite/portal-go/internal/pkg/progress"
	"github.com/hrsuite/portal-go/internal/pkg/report"
	financesvc "github.com/hrsuite/portal-go/internal/service/finance"
	leavesvc "github.com/hrsuite/portal-go/internal/service/leave"
	profilesvc "github.com/hrsuite/portal-go/internal/service/profile"
	settingssvc "github.com/hrsuite/portal-go/internal/service/settings"
	timelogsvc "github.com/hrsuite/portal-go/internal/service/timelog"
)

// app wires the client and services once; commands reach into it from RunE.
type app struct {
	timelogs *timelogsvc.Service
	finance  *financesvc.Service
	leave    *leavesvc.Service
	settings *settingssvc.Service
	profile  *profilesvc.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client, err := api.NewClient(cfg.Portal, cfg.Auth)
	if err != nil {
		return nil, err
	}

	reports, err := report.NewWriter(cfg.App.ReportDir)
	if err != nil {
		return nil, err
	}

	tracker := progress.NewTracker(progress.NewConsoleNotifier())
	store := prefs.NewStore(cfg.App.PrefsPath)

	return &app{
		timelogs: timelogsvc.NewService(client, tracker),
		finance:  financesvc.NewService(client, tracker, reports),
		leave:    leavesvc.NewService(client, store),
		settings: settingssvc.NewService(client),
		profile:  profilesvc.NewService(client),
	}, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
