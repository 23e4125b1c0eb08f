package usecases_test

import (
	"context"
	"errors"

	checklistDomain "greenhouse-server/internal/checklist/domain"
	checklistUsecases "greenhouse-server/internal/checklist/usecases"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
	mockchecklist "greenhouse-server/test/unit/doubles/checklist/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ChecklistService", func() {
	var (
		ctrl           *gomock.Controller
		mockRepository *mockchecklist.MockChecklistRecordRepository
		service        checklistUsecases.ChecklistService

		greenhouseID shareddomain.ID
		templateID   shareddomain.Name
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = mockchecklist.NewMockChecklistRecordRepository(ctrl)
		service = checklistUsecases.NewChecklistService(mockRepository, checklistDomain.MergePolicyDrop)

		greenhouseID = shareddomain.ID("greenhouse-1")
		templateID = checklistDomain.TemplatePrePlantingID
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("ListTemplates", func() {
		It("returns the static templates", func() {
			templates := service.ListTemplates(context.Background())
			Expect(templates).To(HaveLen(2))
			Expect(templates[0].ID).To(Equal(checklistDomain.TemplatePrePlantingID))
			Expect(templates[1].ID).To(Equal(checklistDomain.TemplateGreenhouseID))
		})
	})

	Context("GetChecklist", func() {
		When("the template does not exist", func() {
			It("returns a template not found error", func() {
				_, err := service.GetChecklist(context.Background(), greenhouseID, "no-such-template")
				Expect(err).To(MatchError(checklistDomain.ErrTemplateNotFound))
			})
		})

		When("no record was persisted yet", func() {
			It("returns the template shape with defaults", func() {
				mockRepository.EXPECT().
					GetByGreenhouseAndTemplate(gomock.Any(), greenhouseID, templateID).
					Return(checklistDomain.ChecklistRecord{}, checklistUsecases.ErrChecklistRecordNotFound)

				merged, err := service.GetChecklist(context.Background(), greenhouseID, templateID)
				Expect(err).NotTo(HaveOccurred())
				Expect(merged.TemplateID).To(Equal(string(templateID)))

				item, found := merged.ItemByID("soil-analysis")
				Expect(found).To(BeTrue())
				Expect(item.Completed).To(BeFalse())
			})
		})

		When("a record exists", func() {
			It("merges the persisted state into the template", func() {
				record, err := checklistDomain.NewChecklistRecordBuilder().
					WithGreenhouseID(greenhouseID).
					WithTemplateID(templateID).
					WithItems([]checklistDomain.ItemState{
						{ID: "soil-analysis", Completed: true, Data: checklistDomain.ValueStore{
							"ph-level": checklistDomain.NumberValue(6.2),
						}},
					}).
					Build()
				Expect(err).NotTo(HaveOccurred())

				mockRepository.EXPECT().
					GetByGreenhouseAndTemplate(gomock.Any(), greenhouseID, templateID).
					Return(record, nil)

				merged, err := service.GetChecklist(context.Background(), greenhouseID, templateID)
				Expect(err).NotTo(HaveOccurred())

				item, found := merged.ItemByID("soil-analysis")
				Expect(found).To(BeTrue())
				Expect(item.Completed).To(BeTrue())
				Expect(item.Data["ph-level"]).To(Equal(checklistDomain.NumberValue(6.2)))
			})
		})

		When("the repository fails", func() {
			It("propagates the error", func() {
				mockRepository.EXPECT().
					GetByGreenhouseAndTemplate(gomock.Any(), greenhouseID, templateID).
					Return(checklistDomain.ChecklistRecord{}, errors.New("connection refused"))

				_, err := service.GetChecklist(context.Background(), greenhouseID, templateID)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Context("SubmitItem", func() {
		When("submitting a first item for a greenhouse", func() {
			It("creates a record with the item completed", func() {
				mockRepository.EXPECT().
					GetByGreenhouseAndTemplate(gomock.Any(), greenhouseID, templateID).
					Return(checklistDomain.ChecklistRecord{}, checklistUsecases.ErrChecklistRecordNotFound)

				var created checklistDomain.ChecklistRecord
				mockRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, record checklistDomain.ChecklistRecord) error {
						created = record
						return nil
					})

				values := checklistDomain.ValueStore{
					"analysis-date": checklistDomain.StringValue("2025-03-01"),
					"ph-level":      checklistDomain.NumberValue(6.8),
				}
				warnings, err := service.SubmitItem(context.Background(), greenhouseID, templateID, "soil-analysis", values)
				Expect(err).NotTo(HaveOccurred())
				Expect(warnings).To(BeEmpty())

				state, found := created.ItemByID("soil-analysis")
				Expect(found).To(BeTrue())
				Expect(state.Completed).To(BeTrue())
				Expect(state.Data["ph-level"]).To(Equal(checklistDomain.NumberValue(6.8)))
			})
		})

		When("submitting the same item twice", func() {
			It("keeps only the second submission's state", func() {
				record, err := checklistDomain.NewChecklistRecordBuilder().
					WithGreenhouseID(greenhouseID).
					WithTemplateID(templateID).
					WithItems([]checklistDomain.ItemState{
						{ID: "soil-analysis", Completed: true, Data: checklistDomain.ValueStore{
							"analysis-date": checklistDomain.StringValue("2025-03-01"),
							"ph-level":      checklistDomain.NumberValue(6.8),
						}},
					}).
					Build()
				Expect(err).NotTo(HaveOccurred())

				mockRepository.EXPECT().
					GetByGreenhouseAndTemplate(gomock.Any(), greenhouseID, templateID).
					Return(record, nil)

				var updated checklistDomain.ChecklistRecord
				mockRepository.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r checklistDomain.ChecklistRecord) error {
						updated = r
						return nil
					})

				second := checklistDomain.ValueStore{
					"ph-level": checklistDomain.NumberValue(7.1),
				}
				_, err = service.SubmitItem(context.Background(), greenhouseID, templateID, "soil-analysis", second)
				Expect(err).NotTo(HaveOccurred())

				state, _ := updated.ItemByID("soil-analysis")
				Expect(state.Data["ph-level"]).To(Equal(checklistDomain.NumberValue(7.1)))
				Expect(state.Data).NotTo(HaveKey("analysis-date"))
			})
		})

		When("the submitted values hide a dependent field", func() {
			It("never persists the hidden field", func() {
				mockRepository.EXPECT().
					GetByGreenhouseAndTemplate(gomock.Any(), greenhouseID, templateID).
					Return(checklistDomain.ChecklistRecord{}, checklistUsecases.ErrChecklistRecordNotFound)

				var created checklistDomain.ChecklistRecord
				mockRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, record checklistDomain.ChecklistRecord) error {
						created = record
						return nil
					})

				values := checklistDomain.ValueStore{
					"correction-needed":  checklistDomain.StringValue("no"),
					"correction-product": checklistDomain.StringValue("lime"),
				}
				_, err := service.SubmitItem(context.Background(), greenhouseID, templateID, "soil-correction", values)
				Expect(err).NotTo(HaveOccurred())

				state, _ := created.ItemByID("soil-correction")
				Expect(state.Data).NotTo(HaveKey("correction-product"))
			})
		})

		When("a value violates an advisory constraint", func() {
			It("returns warnings but still persists", func() {
				mockRepository.EXPECT().
					GetByGreenhouseAndTemplate(gomock.Any(), greenhouseID, templateID).
					Return(checklistDomain.ChecklistRecord{}, checklistUsecases.ErrChecklistRecordNotFound)
				mockRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)

				values := checklistDomain.ValueStore{
					"ph-level": checklistDomain.NumberValue(20),
				}
				warnings, err := service.SubmitItem(context.Background(), greenhouseID, templateID, "soil-analysis", values)
				Expect(err).NotTo(HaveOccurred())
				Expect(warnings).To(HaveLen(1))
			})
		})

		When("the item does not exist in the template", func() {
			It("returns an item not found error", func() {
				_, err := service.SubmitItem(context.Background(), greenhouseID, templateID, "no-such-item", checklistDomain.ValueStore{})
				Expect(err).To(MatchError(checklistDomain.ErrItemNotFound))
			})
		})
	})

	Context("UpdateItemField", func() {
		var photoURL string

		BeforeEach(func() {
			templateID = checklistDomain.TemplateGreenhouseID
			photoURL = "https://cdn.example.com/aphids.jpg"
		})

		It("merges the photo into the existing composite value", func() {
			record, err := checklistDomain.NewChecklistRecordBuilder().
				WithGreenhouseID(greenhouseID).
				WithTemplateID(templateID).
				WithItems([]checklistDomain.ItemState{
					{ID: "pest-monitoring", Completed: true, Data: checklistDomain.ValueStore{
						"aphids": checklistDomain.PestControlValue(true, ""),
					}},
				}).
				Build()
			Expect(err).NotTo(HaveOccurred())

			mockRepository.EXPECT().
				GetByGreenhouseAndTemplate(gomock.Any(), greenhouseID, templateID).
				Return(record, nil)

			var updated checklistDomain.ChecklistRecord
			mockRepository.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, r checklistDomain.ChecklistRecord) error {
					updated = r
					return nil
				})

			err = service.UpdateItemField(context.Background(), greenhouseID, templateID, "pest-monitoring", "aphids",
				checklistDomain.PartialFieldUpdate{Photo: &photoURL})
			Expect(err).NotTo(HaveOccurred())

			state, _ := updated.ItemByID("pest-monitoring")
			Expect(state.Data["aphids"]).To(Equal(checklistDomain.PestControlValue(true, photoURL)))
			Expect(state.Completed).To(BeTrue())
		})

		It("creates the record when none exists yet", func() {
			mockRepository.EXPECT().
				GetByGreenhouseAndTemplate(gomock.Any(), greenhouseID, templateID).
				Return(checklistDomain.ChecklistRecord{}, checklistUsecases.ErrChecklistRecordNotFound)

			var created checklistDomain.ChecklistRecord
			mockRepository.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, r checklistDomain.ChecklistRecord) error {
					created = r
					return nil
				})

			err := service.UpdateItemField(context.Background(), greenhouseID, templateID, "pest-monitoring", "aphids",
				checklistDomain.PartialFieldUpdate{Photo: &photoURL})
			Expect(err).NotTo(HaveOccurred())

			state, found := created.ItemByID("pest-monitoring")
			Expect(found).To(BeTrue())
			Expect(state.Completed).To(BeFalse())
			Expect(state.Data["aphids"]).To(Equal(checklistDomain.PestControlValue(false, photoURL)))
		})

		It("rejects fields that are not composite", func() {
			err := service.UpdateItemField(context.Background(), greenhouseID, templateID, "climate-check", "temperature",
				checklistDomain.PartialFieldUpdate{Photo: &photoURL})
			Expect(err).To(MatchError(checklistUsecases.ErrFieldNotPartial))
		})

		It("rejects unknown fields", func() {
			err := service.UpdateItemField(context.Background(), greenhouseID, templateID, "pest-monitoring", "no-such-field",
				checklistDomain.PartialFieldUpdate{Photo: &photoURL})
			Expect(err).To(MatchError(checklistDomain.ErrFieldNotFound))
		})
	})
})
