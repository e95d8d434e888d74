package usecase

import (
	"context"
	"time"

	"github.com/malphitee/ec2-network-monitor/internal/domain/entity"
	"github.com/malphitee/ec2-network-monitor/internal/domain/repository"
	"github.com/malphitee/ec2-network-monitor/internal/shared/types"
)

// ReportUseCase produces the month-to-date traffic report and pushes it to
// the configured notification channels.
type ReportUseCase struct {
	awsRepo  repository.AWSRepository
	cfg      *types.Config
	console  types.ConsoleInterface
	gotify   repository.Notifier
	telegram repository.Notifier
}

// NewReportUseCase creates a new report use case. gotify and telegram may be
// nil when the corresponding credentials are not configured; a selected but
// unconfigured channel is logged and skipped at dispatch time.
func NewReportUseCase(
	awsRepo repository.AWSRepository,
	cfg *types.Config,
	console types.ConsoleInterface,
	gotify repository.Notifier,
	telegram repository.Notifier,
) *ReportUseCase {
	return &ReportUseCase{
		awsRepo:  awsRepo,
		cfg:      cfg,
		console:  console,
		gotify:   gotify,
		telegram: telegram,
	}
}

// Result carries both renderings of one report run.
type Result struct {
	Report   entity.TrafficReport
	Plain    string
	Markdown string
}

// Run builds the report for the current month. When notify is true the
// plain-text table is pushed to the selected channels; push failures are
// logged and never fail the run.
func (uc *ReportUseCase) Run(ctx context.Context, notify bool) (*Result, error) {
	// Connectivity and credential check before any metric query. The
	// describe result is discarded, only the state is worth logging.
	state, err := uc.awsRepo.CheckInstance(ctx, uc.cfg.InstanceID)
	if err != nil {
		return nil, err
	}
	uc.console.LogInfo("instance %s is %s", uc.cfg.InstanceID, state)

	accountID, err := uc.awsRepo.GetAccountID(ctx)
	if err != nil {
		uc.console.LogWarning("could not resolve account ID: %s", err)
	}

	start, end := MonthRange(time.Now())
	points, err := uc.awsRepo.GetNetworkTraffic(ctx, uc.cfg.InstanceID, start, end)
	if err != nil {
		return nil, err
	}

	rows := BuildTableData(points)
	result := &Result{
		Report: entity.TrafficReport{
			InstanceID:  uc.cfg.InstanceID,
			AccountID:   accountID,
			Rows:        rows,
			PeriodStart: start,
			PeriodEnd:   end,
		},
		Plain:    BuildPlainTable(rows),
		Markdown: BuildMarkdownTable(rows),
	}

	if notify {
		uc.dispatch(ctx, result.Plain)
	}
	return result, nil
}

// dispatch pushes the plain-text report to every selected channel. Channels
// are independent: one failing push never blocks the other and never
// surfaces to the caller.
func (uc *ReportUseCase) dispatch(ctx context.Context, message string) {
	if uc.cfg.WantsGotify() {
		uc.push(ctx, uc.gotify, "gotify", "GOTIFY_URL/GOTIFY_TOKEN", message)
	}
	if uc.cfg.WantsTelegram() {
		uc.push(ctx, uc.telegram, "telegram", "TG_BOT_TOKEN/TG_CHAT_ID", message)
	}
}

func (uc *ReportUseCase) push(ctx context.Context, n repository.Notifier, name, credHint, message string) {
	if n == nil {
		uc.console.LogWarning("%s push selected but %s not configured, skipping", name, credHint)
		return
	}
	if err := n.Send(ctx, message); err != nil {
		uc.console.LogError("%s push failed: %s", n.Name(), err)
		return
	}
	uc.console.LogSuccess("report pushed to %s", n.Name())
}

// MonthRange returns the first instant of the month containing now and the
// last second of its final day, both in UTC.
func MonthRange(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}
