package avro_test

import (
	"time"

	"greenhouse-server/internal/shared_kernel/avro"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AvroCodec", func() {
	var (
		baseTime time.Time
	)

	BeforeEach(func() {
		baseTime = time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	})

	Describe("encoding and decoding a producer", func() {
		It("round-trips all fields", func() {
			codec := avro.NewAvroCodec(&avro.AvroProducer{})
			deletedAt := baseTime.Add(48 * time.Hour)
			original := &avro.AvroProducer{
				ID:        "producer-1",
				Version:   3,
				Name:      "Maria Souza",
				Email:     "maria@example.com",
				Phone:     "+55 11 99999-0000",
				FarmName:  "Sitio Boa Vista",
				CreatedAt: baseTime,
				UpdatedAt: baseTime,
				DeletedAt: &deletedAt,
			}

			data, err := codec.Encode(original)
			Expect(err).ToNot(HaveOccurred())

			decoded, err := codec.Decode(data)
			Expect(err).ToNot(HaveOccurred())

			result, ok := decoded.(*avro.AvroProducer)
			Expect(ok).To(BeTrue())
			Expect(result.ID).To(Equal("producer-1"))
			Expect(result.Version).To(Equal(3))
			Expect(result.Name).To(Equal("Maria Souza"))
			Expect(result.FarmName).To(Equal("Sitio Boa Vista"))
			Expect(result.CreatedAt.UnixMilli()).To(Equal(baseTime.UnixMilli()))
			Expect(result.DeletedAt).ToNot(BeNil())
			Expect(result.DeletedAt.UnixMilli()).To(Equal(deletedAt.UnixMilli()))
		})
	})

	Describe("encoding and decoding a harvest", func() {
		It("preserves quantities and prices", func() {
			codec := avro.NewAvroCodec(&avro.AvroHarvest{})
			original := &avro.AvroHarvest{
				ID:           "harvest-9",
				Version:      1,
				GreenhouseID: "greenhouse-2",
				Crop:         "tomato",
				QuantityKg:   153.5,
				UnitPrice:    4.2,
				TotalValue:   644.7,
				HarvestedAt:  baseTime,
				CreatedAt:    baseTime,
				UpdatedAt:    baseTime,
			}

			data, err := codec.Encode(original)
			Expect(err).ToNot(HaveOccurred())

			decoded, err := codec.Decode(data)
			Expect(err).ToNot(HaveOccurred())

			result, ok := decoded.(*avro.AvroHarvest)
			Expect(ok).To(BeTrue())
			Expect(result.QuantityKg).To(Equal(153.5))
			Expect(result.UnitPrice).To(Equal(4.2))
			Expect(result.TotalValue).To(Equal(644.7))
			Expect(result.HarvestedAt.UnixMilli()).To(Equal(baseTime.UnixMilli()))
		})
	})

	Describe("encoding and decoding a checklist record", func() {
		It("carries the serialized item data untouched", func() {
			codec := avro.NewAvroCodec(&avro.AvroChecklistRecord{})
			original := &avro.AvroChecklistRecord{
				ID:             "record-7",
				Version:        2,
				GreenhouseID:   "greenhouse-2",
				TemplateID:     "pre-planting",
				Data:           `{"soil-analysis":{"completed":true}}`,
				ItemCount:      12,
				CompletedCount: 5,
				CreatedAt:      baseTime,
				UpdatedAt:      baseTime,
			}

			data, err := codec.Encode(original)
			Expect(err).ToNot(HaveOccurred())

			decoded, err := codec.Decode(data)
			Expect(err).ToNot(HaveOccurred())

			result, ok := decoded.(*avro.AvroChecklistRecord)
			Expect(ok).To(BeTrue())
			Expect(result.Data).To(Equal(`{"soil-analysis":{"completed":true}}`))
			Expect(result.ItemCount).To(Equal(12))
			Expect(result.CompletedCount).To(Equal(5))
		})
	})

	Describe("encoding an unsupported type", func() {
		It("returns an error", func() {
			codec := avro.NewAvroCodec(&avro.AvroProducer{})
			_, err := codec.Encode("not a message")
			Expect(err).To(HaveOccurred())
		})
	})
})
