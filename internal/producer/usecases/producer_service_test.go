package usecases_test

import (
	"context"
	"errors"
	"time"

	producerDomain "greenhouse-server/internal/producer/domain"
	producerUsecases "greenhouse-server/internal/producer/usecases"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
	mockproducer "greenhouse-server/test/unit/doubles/producer/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ProducerService", func() {
	var (
		ctrl           *gomock.Controller
		mockRepository *mockproducer.MockProducerRepository
		service        producerUsecases.ProducerService

		producer producerDomain.Producer
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = mockproducer.NewMockProducerRepository(ctrl)
		service = producerUsecases.NewProducerService(mockRepository)

		var err error
		producer, err = producerDomain.NewProducerBuilder().
			WithName("Maria Silva").
			WithEmail("maria@example.com").
			WithPhone("+55 11 99999-0000").
			WithFarmName("Sitio Boa Vista").
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("CreateProducer", func() {
		When("no producer exists with the email", func() {
			It("creates the producer", func() {
				mockRepository.EXPECT().
					GetByEmail(gomock.Any(), producer.Email).
					Return(producerDomain.Producer{}, producerUsecases.ErrProducerNotFound)
				mockRepository.EXPECT().
					Create(gomock.Any(), producer).
					Return(nil)

				err := service.CreateProducer(context.Background(), producer)
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the email is already registered", func() {
			It("returns a duplicated error", func() {
				existing, _ := producerDomain.NewProducerBuilder().
					WithName("Other").
					WithEmail(producer.Email).
					Build()
				mockRepository.EXPECT().
					GetByEmail(gomock.Any(), producer.Email).
					Return(existing, nil)

				err := service.CreateProducer(context.Background(), producer)
				Expect(err).To(MatchError(producerUsecases.ErrProducerDuplicated))
			})
		})
	})

	Context("GetProducer", func() {
		It("returns the producer", func() {
			mockRepository.EXPECT().
				GetByID(gomock.Any(), producer.ID).
				Return(producer, nil)

			found, err := service.GetProducer(context.Background(), producer.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Name).To(Equal("Maria Silva"))
		})

		It("maps missing producers to a not found error", func() {
			mockRepository.EXPECT().
				GetByID(gomock.Any(), shareddomain.ID("missing")).
				Return(producerDomain.Producer{}, producerUsecases.ErrProducerNotFound)

			_, err := service.GetProducer(context.Background(), shareddomain.ID("missing"))
			Expect(err).To(MatchError(producerUsecases.ErrProducerNotFound))
		})
	})

	Context("UpdateProducer", func() {
		It("applies partial info onto the stored producer", func() {
			mockRepository.EXPECT().
				GetByID(gomock.Any(), producer.ID).
				Return(producer, nil)

			var updated producerDomain.Producer
			mockRepository.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p producerDomain.Producer) error {
					updated = p
					return nil
				})

			err := service.UpdateProducer(context.Background(), producerDomain.Producer{
				ID:   producer.ID,
				Name: "Maria S. Oliveira",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Maria S. Oliveira"))
			Expect(updated.Email).To(Equal("maria@example.com"))
		})

		It("rejects updates on soft deleted producers", func() {
			producer.SoftDelete()
			mockRepository.EXPECT().
				GetByID(gomock.Any(), producer.ID).
				Return(producer, nil)

			err := service.UpdateProducer(context.Background(), producerDomain.Producer{ID: producer.ID, Name: "X"})
			Expect(err).To(MatchError(producerUsecases.ErrProducerSoftDeleted))
		})

		It("rejects an email already used by another producer", func() {
			other, _ := producerDomain.NewProducerBuilder().
				WithName("Other").
				WithEmail("taken@example.com").
				Build()

			mockRepository.EXPECT().
				GetByID(gomock.Any(), producer.ID).
				Return(producer, nil)
			mockRepository.EXPECT().
				GetByEmail(gomock.Any(), "taken@example.com").
				Return(other, nil)

			err := service.UpdateProducer(context.Background(), producerDomain.Producer{
				ID:    producer.ID,
				Email: "taken@example.com",
			})
			Expect(err).To(MatchError(producerUsecases.ErrProducerDuplicated))
		})
	})

	Context("SoftDeleteProducer", func() {
		It("marks the producer deleted and inactive", func() {
			mockRepository.EXPECT().
				GetByID(gomock.Any(), producer.ID).
				Return(producer, nil)

			var updated producerDomain.Producer
			mockRepository.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p producerDomain.Producer) error {
					updated = p
					return nil
				})

			err := service.SoftDeleteProducer(context.Background(), producer.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.DeletedAt).NotTo(BeNil())
			Expect(updated.IsActive).To(BeFalse())
		})

		It("rejects double deletion", func() {
			now := time.Now()
			producer.DeletedAt = &now
			mockRepository.EXPECT().
				GetByID(gomock.Any(), producer.ID).
				Return(producer, nil)

			err := service.SoftDeleteProducer(context.Background(), producer.ID)
			Expect(err).To(MatchError(producerUsecases.ErrProducerSoftDeleted))
		})
	})

	Context("ActivateProducer and DeactivateProducer", func() {
		It("toggles the active flag", func() {
			producer.IsActive = false
			mockRepository.EXPECT().
				GetByID(gomock.Any(), producer.ID).
				Return(producer, nil)

			var updated producerDomain.Producer
			mockRepository.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p producerDomain.Producer) error {
					updated = p
					return nil
				})

			err := service.ActivateProducer(context.Background(), producer.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.IsActive).To(BeTrue())
		})

		It("propagates repository failures", func() {
			mockRepository.EXPECT().
				GetByID(gomock.Any(), producer.ID).
				Return(producerDomain.Producer{}, errors.New("connection refused"))

			err := service.DeactivateProducer(context.Background(), producer.ID)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("ListProducers", func() {
		It("forwards pagination to the repository", func() {
			pagination := producerUsecases.Pagination{Limit: 10, Offset: 20}
			mockRepository.EXPECT().
				FindAll(gomock.Any(), false, pagination).
				Return([]producerDomain.Producer{producer}, 31, nil)

			producers, total, err := service.ListProducers(context.Background(), false, pagination)
			Expect(err).NotTo(HaveOccurred())
			Expect(producers).To(HaveLen(1))
			Expect(total).To(Equal(31))
		})
	})
})
