package httpapi_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	checklistDomain "greenhouse-server/internal/checklist/domain"
	checklist_httpapi "greenhouse-server/internal/checklist/httpapi"
	checklist_httpapi_internal "greenhouse-server/internal/checklist/httpapi/internal"
	checklist_usecases "greenhouse-server/internal/checklist/usecases"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
	mockusecases "greenhouse-server/test/unit/doubles/checklist/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ChecklistController", func() {
	var controller *checklist_httpapi.ChecklistController
	var mockService *mockusecases.MockChecklistService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var request *http.Request
	var router *http.ServeMux

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockChecklistService(ctrl)
		controller = checklist_httpapi.NewChecklistController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listTemplates", func() {
		BeforeEach(func() {
			request = httptest.NewRequest("GET", "/v1/checklists/templates", nil)
		})

		It("should return every template with its sections", func() {
			mockService.EXPECT().
				ListTemplates(gomock.Any()).
				Return(checklistDomain.Templates())

			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response checklist_httpapi_internal.TemplateListResponse
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.Data).To(HaveLen(2))
			Expect(response.Data[0].ID).To(Equal("pre-planting"))
			Expect(response.Data[0].Sections).NotTo(BeEmpty())
		})
	})

	Context("getChecklist", func() {
		BeforeEach(func() {
			request = httptest.NewRequest("GET", "/v1/greenhouses/greenhouse-1/checklists/pre-planting", nil)
		})

		When("the checklist resolves", func() {
			It("should return the merged checklist", func() {
				merged := checklistDomain.Merge(checklistDomain.PrePlantingTemplate(), nil, checklistDomain.MergePolicyDrop)
				mockService.EXPECT().
					GetChecklist(gomock.Any(), shareddomain.ID("greenhouse-1"), checklistDomain.TemplatePrePlantingID).
					Return(merged, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response checklist_httpapi_internal.MergedChecklistResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.TemplateID).To(Equal("pre-planting"))
				Expect(response.Sections).NotTo(BeEmpty())
			})
		})

		When("the template is unknown", func() {
			It("should return not found", func() {
				request = httptest.NewRequest("GET", "/v1/greenhouses/greenhouse-1/checklists/no-such-template", nil)
				mockService.EXPECT().
					GetChecklist(gomock.Any(), shareddomain.ID("greenhouse-1"), shareddomain.Name("no-such-template")).
					Return(checklistDomain.MergedChecklist{}, checklistDomain.ErrTemplateNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the service fails", func() {
			It("should return internal server error", func() {
				mockService.EXPECT().
					GetChecklist(gomock.Any(), shareddomain.ID("greenhouse-1"), checklistDomain.TemplatePrePlantingID).
					Return(checklistDomain.MergedChecklist{}, errors.New("connection refused"))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Context("submitItem", func() {
		var body []byte

		BeforeEach(func() {
			body, _ = json.Marshal(checklist_httpapi_internal.SubmitItemRequest{
				Values: checklistDomain.ValueStore{
					"ph-level": checklistDomain.NumberValue(6.5),
				},
			})
			request = httptest.NewRequest("PUT",
				"/v1/greenhouses/greenhouse-1/checklists/pre-planting/items/soil-analysis", bytes.NewReader(body))
		})

		When("the submission succeeds", func() {
			It("should return the advisory warnings", func() {
				mockService.EXPECT().
					SubmitItem(gomock.Any(), shareddomain.ID("greenhouse-1"), checklistDomain.TemplatePrePlantingID,
						shareddomain.Name("soil-analysis"), gomock.Any()).
					DoAndReturn(func(_ any, _ shareddomain.ID, _, _ shareddomain.Name, values checklistDomain.ValueStore) ([]checklistDomain.ValidationWarning, error) {
						Expect(values["ph-level"]).To(Equal(checklistDomain.NumberValue(6.5)))
						return []checklistDomain.ValidationWarning{
							{FieldID: "ph-level", Message: "value 6.5 is below minimum 7"},
						}, nil
					})

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response checklist_httpapi_internal.SubmitItemResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Warnings).To(HaveLen(1))
				Expect(response.Warnings[0].FieldID).To(Equal("ph-level"))
			})
		})

		When("the body is not valid JSON", func() {
			It("should return bad request", func() {
				request = httptest.NewRequest("PUT",
					"/v1/greenhouses/greenhouse-1/checklists/pre-planting/items/soil-analysis",
					bytes.NewReader([]byte("{broken")))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the item is unknown", func() {
			It("should return not found", func() {
				mockService.EXPECT().
					SubmitItem(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, checklistDomain.ErrItemNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("updateItemField", func() {
		var body []byte

		BeforeEach(func() {
			photo := "https://cdn.example.com/aphids.jpg"
			body, _ = json.Marshal(checklist_httpapi_internal.PartialFieldUpdateRequest{Photo: &photo})
			request = httptest.NewRequest("PATCH",
				"/v1/greenhouses/greenhouse-1/checklists/greenhouse/items/pest-monitoring/fields/aphids",
				bytes.NewReader(body))
		})

		When("the update succeeds", func() {
			It("should return no content", func() {
				mockService.EXPECT().
					UpdateItemField(gomock.Any(), shareddomain.ID("greenhouse-1"), checklistDomain.TemplateGreenhouseID,
						shareddomain.Name("pest-monitoring"), shareddomain.Name("aphids"), gomock.Any()).
					DoAndReturn(func(_ any, _ shareddomain.ID, _, _, _ shareddomain.Name, update checklistDomain.PartialFieldUpdate) error {
						Expect(update.Photo).NotTo(BeNil())
						Expect(*update.Photo).To(Equal("https://cdn.example.com/aphids.jpg"))
						Expect(update.Selected).To(BeNil())
						return nil
					})

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))
			})
		})

		When("the field does not support partial updates", func() {
			It("should return bad request", func() {
				mockService.EXPECT().
					UpdateItemField(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(checklist_usecases.ErrFieldNotPartial)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the field is unknown", func() {
			It("should return not found", func() {
				mockService.EXPECT().
					UpdateItemField(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(checklistDomain.ErrFieldNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
