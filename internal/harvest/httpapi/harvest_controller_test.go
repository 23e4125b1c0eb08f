package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	harvestDomain "greenhouse-server/internal/harvest/domain"
	harvest_httpapi "greenhouse-server/internal/harvest/httpapi"
	harvest_httpapi_internal "greenhouse-server/internal/harvest/httpapi/internal"
	harvest_usecases "greenhouse-server/internal/harvest/usecases"
	producer_usecases "greenhouse-server/internal/producer/usecases"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
	mockusecases "greenhouse-server/test/unit/doubles/harvest/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("HarvestController", func() {
	var controller *harvest_httpapi.HarvestController
	var mockService *mockusecases.MockHarvestService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var request *http.Request
	var router *http.ServeMux

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockHarvestService(ctrl)
		controller = harvest_httpapi.NewHarvestController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	newHarvest := func() harvestDomain.Harvest {
		harvest, err := harvestDomain.NewHarvestBuilder().
			WithGreenhouseID("greenhouse-1").
			WithProducerID("producer-1").
			WithCrop("tomato").
			WithQuantityKg(150).
			WithUnitPrice(4.2).
			Build()
		Expect(err).ToNot(HaveOccurred())
		return harvest
	}

	Context("listHarvests", func() {
		It("should forward filters from the query string", func() {
			mockService.EXPECT().
				ListHarvests(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, filters harvest_usecases.Filters, _ harvest_usecases.Pagination) ([]harvestDomain.Harvest, int, error) {
					Expect(filters.ProducerID).To(Equal(shareddomain.ID("producer-1")))
					Expect(filters.From).NotTo(BeNil())
					Expect(filters.From.Year()).To(Equal(2026))
					return []harvestDomain.Harvest{newHarvest()}, 1, nil
				})

			request = httptest.NewRequest("GET", "/v1/harvests?producer_id=producer-1&from=2026-08-01", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response struct {
				Data []harvest_httpapi_internal.HarvestResponse `json:"data"`
			}
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.Data).To(HaveLen(1))
			Expect(response.Data[0].TotalValue).To(BeNumerically("~", 630, 0.001))
		})

		It("should reject an invalid time filter", func() {
			request = httptest.NewRequest("GET", "/v1/harvests?from=yesterday", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("logHarvest", func() {
		It("should log a harvest and return it", func() {
			harvestedAt := time.Date(2026, 8, 20, 7, 30, 0, 0, time.UTC)
			body, _ := json.Marshal(harvest_httpapi_internal.HarvestCreateRequest{
				GreenhouseID: "greenhouse-1",
				Crop:         "tomato",
				QuantityKg:   150,
				UnitPrice:    4.2,
				HarvestedAt:  &harvestedAt,
			})

			mockService.EXPECT().
				LogHarvest(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, harvest harvestDomain.Harvest) (harvestDomain.Harvest, error) {
					Expect(harvest.GreenhouseID).To(Equal(shareddomain.ID("greenhouse-1")))
					Expect(harvest.HarvestedAt).To(BeTemporally("==", harvestedAt))
					harvest.ProducerID = "producer-1"
					return harvest, nil
				})

			request = httptest.NewRequest("POST", "/v1/harvests", bytes.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusCreated))

			var response harvest_httpapi_internal.HarvestResponse
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.ProducerID).To(Equal("producer-1"))
			Expect(response.TotalValue).To(BeNumerically("~", 630, 0.001))
		})

		It("should reject a non positive quantity", func() {
			body, _ := json.Marshal(harvest_httpapi_internal.HarvestCreateRequest{
				GreenhouseID: "greenhouse-1",
				QuantityKg:   0,
			})

			request = httptest.NewRequest("POST", "/v1/harvests", bytes.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should map an unknown greenhouse to not found", func() {
			body, _ := json.Marshal(harvest_httpapi_internal.HarvestCreateRequest{
				GreenhouseID: "missing",
				QuantityKg:   10,
				UnitPrice:    1,
			})

			mockService.EXPECT().
				LogHarvest(gomock.Any(), gomock.Any()).
				Return(harvestDomain.Harvest{}, producer_usecases.ErrGreenhouseNotFound)

			request = httptest.NewRequest("POST", "/v1/harvests", bytes.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("should map a deleted greenhouse to conflict", func() {
			body, _ := json.Marshal(harvest_httpapi_internal.HarvestCreateRequest{
				GreenhouseID: "greenhouse-1",
				QuantityKg:   10,
				UnitPrice:    1,
			})

			mockService.EXPECT().
				LogHarvest(gomock.Any(), gomock.Any()).
				Return(harvestDomain.Harvest{}, producer_usecases.ErrGreenhouseSoftDeleted)

			request = httptest.NewRequest("POST", "/v1/harvests", bytes.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("updateHarvest", func() {
		It("should apply the partial update and return the reloaded harvest", func() {
			quantity := 200.0
			body, _ := json.Marshal(harvest_httpapi_internal.HarvestUpdateRequest{QuantityKg: &quantity})

			mockService.EXPECT().
				UpdateHarvest(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, harvest harvestDomain.Harvest) error {
					Expect(harvest.QuantityKg).To(Equal(200.0))
					Expect(harvest.Crop).To(BeEmpty())
					return nil
				})

			reloaded := newHarvest()
			quantityPtr := &quantity
			reloaded.UpdateInfo("", quantityPtr, nil, nil)
			mockService.EXPECT().
				GetHarvest(gomock.Any(), shareddomain.ID("harvest-1")).
				Return(reloaded, nil)

			request = httptest.NewRequest("PUT", "/v1/harvests/harvest-1", bytes.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response harvest_httpapi_internal.HarvestResponse
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.QuantityKg).To(Equal(200.0))
		})

		It("should map unknown harvests to not found", func() {
			body, _ := json.Marshal(harvest_httpapi_internal.HarvestUpdateRequest{})

			mockService.EXPECT().
				UpdateHarvest(gomock.Any(), gomock.Any()).
				Return(harvest_usecases.ErrHarvestNotFound)

			request = httptest.NewRequest("PUT", "/v1/harvests/missing", bytes.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("deleteHarvest", func() {
		It("should delete and return no content", func() {
			mockService.EXPECT().
				DeleteHarvest(gomock.Any(), shareddomain.ID("harvest-1")).
				Return(nil)

			request = httptest.NewRequest("DELETE", "/v1/harvests/harvest-1", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})
})
