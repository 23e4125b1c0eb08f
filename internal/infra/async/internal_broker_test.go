package async_test

import (
	"context"

	"greenhouse-server/internal/infra/async"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LocalBroker", func() {
	var broker *async.LocalBroker

	BeforeEach(func() {
		broker = async.NewLocalBroker()
	})

	AfterEach(func() {
		broker.Stop()
	})

	Context("Publish", func() {
		When("nobody subscribed to the topic", func() {
			It("should return ErrTopicNotFound", func() {
				err := broker.Publish(context.Background(), "harvests", async.BrokerMessage{Event: "harvest_logged"})
				Expect(err).To(MatchError(async.ErrTopicNotFound))
			})
		})

		When("a subscription exists", func() {
			It("should deliver the message to the subscriber", func() {
				subscription, err := broker.Subscribe("harvests")
				Expect(err).NotTo(HaveOccurred())

				err = broker.Publish(context.Background(), "harvests", async.BrokerMessage{Event: "harvest_logged", Value: "tomatoes"})
				Expect(err).NotTo(HaveOccurred())

				var received async.BrokerMessage
				Eventually(subscription.Receiver).Should(Receive(&received))
				Expect(received.Event).To(Equal("harvest_logged"))
				Expect(received.Value).To(Equal("tomatoes"))
			})
		})

		When("multiple subscriptions exist", func() {
			It("should fan the message out to every subscriber", func() {
				first, _ := broker.Subscribe("harvests")
				second, _ := broker.Subscribe("harvests")

				err := broker.Publish(context.Background(), "harvests", async.BrokerMessage{Event: "harvest_logged"})
				Expect(err).NotTo(HaveOccurred())

				Eventually(first.Receiver).Should(Receive())
				Eventually(second.Receiver).Should(Receive())
			})
		})
	})

	Context("Unsubscribe", func() {
		When("the topic was never subscribed", func() {
			It("should return ErrTopicNotFound", func() {
				err := broker.Unsubscribe("unknown", async.Subscription{ID: "nope"})
				Expect(err).To(MatchError(async.ErrTopicNotFound))
			})
		})

		When("the subscription is unknown", func() {
			It("should return ErrSubscriptorNotFound", func() {
				_, err := broker.Subscribe("harvests")
				Expect(err).NotTo(HaveOccurred())

				err = broker.Unsubscribe("harvests", async.Subscription{ID: "nope"})
				Expect(err).To(MatchError(async.ErrSubscriptorNotFound))
			})
		})

		When("the subscription exists", func() {
			It("should close the receiver channel", func() {
				subscription, err := broker.Subscribe("harvests")
				Expect(err).NotTo(HaveOccurred())

				err = broker.Unsubscribe("harvests", subscription)
				Expect(err).NotTo(HaveOccurred())

				Eventually(subscription.Receiver).Should(BeClosed())
			})
		})
	})
})
