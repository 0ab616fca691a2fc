package chat_test

import (
	"github.com/killallgit/storychat/pkg/chat"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Messages", func() {
	Describe("NewUserMessage", func() {
		It("should trim content and mark the sender", func() {
			msg := chat.NewUserMessage("  Hello World  ")

			Expect(msg.Text).To(Equal("Hello World"))
			Expect(msg.IsUser).To(BeTrue())
			Expect(msg.HasImage()).To(BeFalse())
		})

		It("should assign distinct ids", func() {
			Expect(chat.NewUserMessage("a").ID).ToNot(Equal(chat.NewUserMessage("a").ID))
		})
	})

	Describe("NewReplyMessage", func() {
		It("should carry the image url", func() {
			msg := chat.NewReplyMessage(chat.Reply{Text: "story", ImageURL: "http://x/img.png"})

			Expect(msg.IsUser).To(BeFalse())
			Expect(msg.HasImage()).To(BeTrue())
		})
	})

	Describe("NewFallbackMessage", func() {
		It("should use the fixed fallback text", func() {
			msg := chat.NewFallbackMessage()

			Expect(msg.Text).To(Equal(chat.FallbackText))
			Expect(msg.IsUser).To(BeFalse())
			Expect(msg.HasImage()).To(BeFalse())
			Expect(msg.IsEmpty()).To(BeFalse())
		})
	})
})
