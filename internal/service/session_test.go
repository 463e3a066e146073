package service_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/renalecon/transplant-planner/internal/projection"
	"github.com/renalecon/transplant-planner/internal/service"
	"github.com/renalecon/transplant-planner/internal/store"
)

var _ = Describe("session service", func() {
	var (
		s   store.Store
		srv *service.SessionService
		ctx context.Context
	)

	BeforeEach(func() {
		s = newTestStore()
		srv = service.NewSessionService(s)
		ctx = context.Background()
	})

	AfterEach(func() {
		_ = s.Close()
	})

	Context("create", func() {
		It("seeds the session with default values", func() {
			session, err := srv.CreateSession(ctx, "base-case", nil)
			Expect(err).To(BeNil())
			Expect(session.Parameters.Data).To(HaveLen(len(projection.Keys)))
			Expect(session.Parameters.Data[projection.KeyPopulationMillions]).To(Equal(5.8))
		})

		It("applies clamped overrides", func() {
			session, err := srv.CreateSession(ctx, "clamped", map[string]float64{
				projection.KeyDialysisCost: 500_000, // above max 80000
			})
			Expect(err).To(BeNil())
			Expect(session.Parameters.Data[projection.KeyDialysisCost]).To(Equal(80_000.0))
		})

		It("rejects unknown parameter names", func() {
			_, err := srv.CreateSession(ctx, "bad", map[string]float64{"not_a_param": 1})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrInvalidParameter{}))
		})

		It("rejects duplicate session names", func() {
			_, err := srv.CreateSession(ctx, "dup", nil)
			Expect(err).To(BeNil())

			_, err = srv.CreateSession(ctx, "dup", nil)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrSessionAlreadyExists{}))
		})
	})

	Context("get", func() {
		It("returns not found for an absent session", func() {
			_, err := srv.GetSession(ctx, uuid.New())
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})
	})

	Context("update parameters", func() {
		It("merges and clamps incoming values", func() {
			session, err := srv.CreateSession(ctx, "update", nil)
			Expect(err).To(BeNil())

			updated, err := srv.UpdateParameters(ctx, session.ID, map[string]float64{
				projection.KeyDialysisCost:       62_000,
				projection.KeyPrevalentDialysis:  100, // below min 2000
				projection.KeyScenarioBTargetPMP: 40,
			})
			Expect(err).To(BeNil())
			Expect(updated.Parameters.Data[projection.KeyDialysisCost]).To(Equal(62_000.0))
			Expect(updated.Parameters.Data[projection.KeyPrevalentDialysis]).To(Equal(2_000.0))
			Expect(updated.Parameters.Data[projection.KeyScenarioBTargetPMP]).To(Equal(40.0))
			// Untouched parameters keep their values.
			Expect(updated.Parameters.Data[projection.KeyPopulationMillions]).To(Equal(5.8))
		})

		It("rejects unknown parameter names", func() {
			session, err := srv.CreateSession(ctx, "update-bad", nil)
			Expect(err).To(BeNil())

			_, err = srv.UpdateParameters(ctx, session.ID, map[string]float64{"bogus": 1})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrInvalidParameter{}))
		})
	})

	Context("reset", func() {
		It("restores the default values", func() {
			session, err := srv.CreateSession(ctx, "reset", map[string]float64{
				projection.KeyDialysisCost: 70_000,
			})
			Expect(err).To(BeNil())

			restored, err := srv.ResetParameters(ctx, session.ID)
			Expect(err).To(BeNil())
			Expect(restored.Parameters.Data[projection.KeyDialysisCost]).To(Equal(50_000.0))
		})
	})

	Context("delete", func() {
		It("removes the session", func() {
			session, err := srv.CreateSession(ctx, "delete", nil)
			Expect(err).To(BeNil())

			Expect(srv.DeleteSession(ctx, session.ID)).To(Succeed())

			_, err = srv.GetSession(ctx, session.ID)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})
	})

	Context("parameter set", func() {
		It("materializes bounds from the default ranges", func() {
			session, err := srv.CreateSession(ctx, "set", map[string]float64{
				projection.KeyDialysisCost: 62_000,
			})
			Expect(err).To(BeNil())

			set := service.ParameterSet(session)
			Expect(set[projection.KeyDialysisCost].Value).To(Equal(62_000.0))
			Expect(set[projection.KeyDialysisCost].Min).To(Equal(30_000.0))
			Expect(set[projection.KeyDialysisCost].Max).To(Equal(80_000.0))

			values, err := set.Snapshot()
			Expect(err).To(BeNil())
			Expect(values).To(HaveLen(len(projection.Keys)))
		})
	})
})
