package service_test

import (
	"context"
	"strings"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/renalecon/transplant-planner/internal/projection"
	"github.com/renalecon/transplant-planner/internal/service"
	"github.com/renalecon/transplant-planner/internal/store"
)

var _ = Describe("projection service", func() {
	var (
		s          store.Store
		sessionSrv *service.SessionService
		srv        *service.ProjectionService
		ctx        context.Context
	)

	BeforeEach(func() {
		s = newTestStore()
		sessionSrv = service.NewSessionService(s)
		srv = service.NewProjectionService(s, sessionSrv)
		ctx = context.Background()
	})

	AfterEach(func() {
		_ = s.Close()
	})

	It("computes the full projection for a session", func() {
		session, err := sessionSrv.CreateSession(ctx, "projection", nil)
		Expect(err).To(BeNil())

		result, err := srv.Compute(ctx, session.ID)
		Expect(err).To(BeNil())
		Expect(result.Series.Years).To(HaveLen(10))
		Expect(result.Input.AddTxB).To(BeNumerically("~", 120.06, 1e-9))
		Expect(result.BreakEvenYear).To(Equal(2.0))
		Expect(result.AnnualBurden).To(Equal(325_000_000.0))
	})

	It("reflects parameter updates in the next run", func() {
		session, err := sessionSrv.CreateSession(ctx, "projection-update", nil)
		Expect(err).To(BeNil())

		_, err = sessionSrv.UpdateParameters(ctx, session.ID, map[string]float64{
			projection.KeyHorizonYears: 5,
		})
		Expect(err).To(BeNil())

		result, err := srv.Compute(ctx, session.ID)
		Expect(err).To(BeNil())
		Expect(result.Series.Years).To(HaveLen(5))
	})

	It("returns not found for an absent session", func() {
		_, err := srv.Compute(ctx, uuid.New())
		Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
	})

	It("derives the five modality costs", func() {
		session, err := sessionSrv.CreateSession(ctx, "modalities", nil)
		Expect(err).To(BeNil())

		costs, err := srv.ModalityCosts(ctx, session.ID)
		Expect(err).To(BeNil())
		Expect(costs).To(HaveLen(5))
		Expect(costs[0].AnnualCost).To(Equal(50_000.0))
		Expect(costs[3].AnnualCost).To(Equal(60_000.0))
	})
})

var _ = Describe("sensitivity service", func() {
	var (
		s          store.Store
		sessionSrv *service.SessionService
		srv        *service.SensitivityService
		ctx        context.Context
	)

	BeforeEach(func() {
		s = newTestStore()
		sessionSrv = service.NewSessionService(s)
		srv = service.NewSensitivityService(s, sessionSrv, projection.DefaultCostDeltas())
		ctx = context.Background()
	})

	AfterEach(func() {
		_ = s.Close()
	})

	It("runs three passes with perturbed costs", func() {
		session, err := sessionSrv.CreateSession(ctx, "sensitivity", nil)
		Expect(err).To(BeNil())

		outcome, err := srv.Analyze(ctx, session.ID)
		Expect(err).To(BeNil())
		Expect(outcome.Low.Input.DialysisCost).To(Equal(35_000.0))
		Expect(outcome.Base.Input.DialysisCost).To(Equal(50_000.0))
		Expect(outcome.High.Input.DialysisCost).To(Equal(65_000.0))
	})

	It("clamps perturbed costs into the declared bounds", func() {
		session, err := sessionSrv.CreateSession(ctx, "sensitivity-clamped", map[string]float64{
			projection.KeyDialysisCost: 79_000,
		})
		Expect(err).To(BeNil())

		outcome, err := srv.Analyze(ctx, session.ID)
		Expect(err).To(BeNil())
		Expect(outcome.High.Input.DialysisCost).To(Equal(80_000.0))
		Expect(outcome.Low.Input.DialysisCost).To(Equal(64_000.0))
	})
})

var _ = Describe("summary service", func() {
	var (
		s          store.Store
		sessionSrv *service.SessionService
		srv        *service.SummaryService
		ctx        context.Context
	)

	BeforeEach(func() {
		s = newTestStore()
		sessionSrv = service.NewSessionService(s)
		srv = service.NewSummaryService(s, sessionSrv, projection.DefaultCostDeltas())
		ctx = context.Background()
	})

	AfterEach(func() {
		_ = s.Close()
	})

	It("produces the dashboard digest with ranges", func() {
		session, err := sessionSrv.CreateSession(ctx, "summary", nil)
		Expect(err).To(BeNil())

		summary, err := srv.Summarize(ctx, session.ID)
		Expect(err).To(BeNil())

		Expect(summary.HorizonYears).To(Equal(10))
		Expect(summary.AdditionalTransplantsB).To(BeNumerically("~", 120.06, 1e-9))
		Expect(summary.BreakEvenYear.Base).To(Equal(2.0))
		Expect(summary.BreakEvenYear.Low).To(BeNumerically("<=", summary.BreakEvenYear.High))

		// 5.8M at 200 pmp incident rate, 10% avoided under PIRP.
		Expect(summary.IncidentCasesPerYear).To(Equal(1160))
		Expect(summary.AvoidedCasesPerYear).To(Equal(116))

		Expect(summary.BAUBurdenOverHorizon).To(Equal(3_250_000_000.0))
		Expect(summary.BurdenWithPIRP).To(Equal(summary.BAUBurdenOverHorizon - summary.PIRPSavingsOverHorizon))
		Expect(summary.BurdenWithAll).To(Equal(summary.BAUBurdenOverHorizon - summary.TotalSavingsOverHorizon))

		// 3*50k - (60k + 2*12k) per patient over three years.
		Expect(summary.PerPatientSavings3yr.Base).To(Equal(66_000.0))
	})
})

var _ = Describe("report service", func() {
	var (
		s          store.Store
		sessionSrv *service.SessionService
		srv        *service.ReportService
		ctx        context.Context
	)

	BeforeEach(func() {
		s = newTestStore()
		sessionSrv = service.NewSessionService(s)
		srv = service.NewReportService(s, sessionSrv, service.NewProjectionService(s, sessionSrv))
		ctx = context.Background()
	})

	AfterEach(func() {
		_ = s.Close()
	})

	It("renders the csv report", func() {
		session, err := sessionSrv.CreateSession(ctx, "report", nil)
		Expect(err).To(BeNil())

		out, err := srv.Render(ctx, session.ID, "csv")
		Expect(err).To(BeNil())
		Expect(out).To(ContainSubstring("KIDNEY TRANSPLANT EXPANSION"))
		Expect(out).To(ContainSubstring("YEARLY PROJECTION"))

		// Header, parameter echo, headline block and ten projection rows.
		lines := strings.Split(strings.TrimSpace(out), "\n")
		Expect(len(lines)).To(BeNumerically(">", 30))
	})

	It("rejects unsupported formats", func() {
		session, err := sessionSrv.CreateSession(ctx, "report-bad", nil)
		Expect(err).To(BeNil())

		_, err = srv.Render(ctx, session.ID, "pdf")
		Expect(err).To(BeAssignableToTypeOf(&service.ErrUnsupportedFormat{}))
	})
})
