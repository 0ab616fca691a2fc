package stub

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Image store", func() {
	var s *Server

	BeforeEach(func() {
		s = NewServer()
		s.limit = 3
	})

	It("should evict the oldest images past the limit", func() {
		for i := 0; i < 5; i++ {
			s.remember(fmt.Sprintf("img-%d", i), stories[0])
		}

		Expect(s.images).To(HaveLen(3))
		Expect(s.order).To(Equal([]string{"img-2", "img-3", "img-4"}))
		Expect(s.images).ToNot(HaveKey("img-0"))
		Expect(s.images).ToNot(HaveKey("img-1"))
	})

	It("should stop serving evicted images", func() {
		var urls []string
		for i := 0; i < 4; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "Tell me a story"}`))
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(s.order).ToNot(BeEmpty())
			urls = append(urls, "/images/"+s.order[len(s.order)-1]+".png")
		}

		get := func(path string) int {
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			return rec.Code
		}
		Expect(get(urls[0])).To(Equal(http.StatusNotFound))
		Expect(get(urls[3])).To(Equal(http.StatusOK))
	})
})
