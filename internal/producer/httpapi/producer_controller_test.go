package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	producerDomain "greenhouse-server/internal/producer/domain"
	producer_httpapi "greenhouse-server/internal/producer/httpapi"
	producer_httpapi_internal "greenhouse-server/internal/producer/httpapi/internal"
	producer_usecases "greenhouse-server/internal/producer/usecases"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
	mockusecases "greenhouse-server/test/unit/doubles/producer/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ProducerController", func() {
	var controller *producer_httpapi.ProducerController
	var mockService *mockusecases.MockProducerService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var request *http.Request
	var router *http.ServeMux

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockProducerService(ctrl)
		controller = producer_httpapi.NewProducerController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listProducers", func() {
		It("should return a paginated envelope with default parameters", func() {
			producer, _ := producerDomain.NewProducerBuilder().
				WithName("Maria Silva").
				WithEmail("maria@example.com").
				Build()

			expectedPagination := producer_usecases.Pagination{Limit: 10, Offset: 0}
			mockService.EXPECT().
				ListProducers(gomock.Any(), false, expectedPagination).
				Return([]producerDomain.Producer{producer}, 1, nil)

			request = httptest.NewRequest("GET", "/v1/producers", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response struct {
				Data       []producer_httpapi_internal.ProducerResponse `json:"data"`
				Pagination struct {
					Page  int `json:"page"`
					Limit int `json:"limit"`
					Total int `json:"total"`
				} `json:"pagination"`
			}
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.Data).To(HaveLen(1))
			Expect(response.Pagination.Total).To(Equal(1))
			Expect(response.Pagination.Limit).To(Equal(10))
		})

		It("should translate page and limit into an offset", func() {
			expectedPagination := producer_usecases.Pagination{Limit: 5, Offset: 10}
			mockService.EXPECT().
				ListProducers(gomock.Any(), false, expectedPagination).
				Return([]producerDomain.Producer{}, 0, nil)

			request = httptest.NewRequest("GET", "/v1/producers?page=3&limit=5", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("getProducer", func() {
		It("should return not found for a missing producer", func() {
			mockService.EXPECT().
				GetProducer(gomock.Any(), shareddomain.ID("missing")).
				Return(producerDomain.Producer{}, producer_usecases.ErrProducerNotFound)

			request = httptest.NewRequest("GET", "/v1/producers/missing", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("createProducer", func() {
		It("should create a producer and return it", func() {
			body, _ := json.Marshal(producer_httpapi_internal.ProducerCreateRequest{
				Name:     "Maria Silva",
				Email:    "maria@example.com",
				Phone:    "+55 11 99999-0000",
				FarmName: "Sitio Boa Vista",
			})

			mockService.EXPECT().
				CreateProducer(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, producer producerDomain.Producer) error {
					Expect(producer.Name).To(Equal("Maria Silva"))
					Expect(producer.IsActive).To(BeTrue())
					return nil
				})

			request = httptest.NewRequest("POST", "/v1/producers", bytes.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusCreated))

			var response producer_httpapi_internal.ProducerResponse
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.Email).To(Equal("maria@example.com"))
			Expect(response.ID).NotTo(BeEmpty())
		})

		It("should reject a missing name or email", func() {
			body, _ := json.Marshal(producer_httpapi_internal.ProducerCreateRequest{Name: "Only Name"})

			request = httptest.NewRequest("POST", "/v1/producers", bytes.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should map duplicates to conflict", func() {
			body, _ := json.Marshal(producer_httpapi_internal.ProducerCreateRequest{
				Name:  "Maria Silva",
				Email: "maria@example.com",
			})

			mockService.EXPECT().
				CreateProducer(gomock.Any(), gomock.Any()).
				Return(producer_usecases.ErrProducerDuplicated)

			request = httptest.NewRequest("POST", "/v1/producers", bytes.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("activateProducer", func() {
		It("should activate the producer", func() {
			mockService.EXPECT().
				ActivateProducer(gomock.Any(), shareddomain.ID("producer-1")).
				Return(nil)

			request = httptest.NewRequest("POST", "/v1/producers/producer-1/activate", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("should map soft deleted producers to conflict", func() {
			mockService.EXPECT().
				DeactivateProducer(gomock.Any(), shareddomain.ID("producer-1")).
				Return(producer_usecases.ErrProducerSoftDeleted)

			request = httptest.NewRequest("POST", "/v1/producers/producer-1/deactivate", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("deleteProducer", func() {
		It("should soft delete and return no content", func() {
			mockService.EXPECT().
				SoftDeleteProducer(gomock.Any(), shareddomain.ID("producer-1")).
				Return(nil)

			request = httptest.NewRequest("DELETE", "/v1/producers/producer-1", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})
})
