package tracing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CountTracer", func() {
	var t *CountTracer

	BeforeEach(func() {
		t = NewCountTracer(nil)
	})

	It("should count events in total", func() {
		t.Collect(Event{ID: "1", Level: "INFO"})
		t.Collect(Event{ID: "2", Level: "INFO"})
		t.Collect(Event{ID: "3", Level: "ERROR"})

		Expect(t.TotalCount()).To(Equal(uint64(3)))
	})

	It("should count events per level", func() {
		t.Collect(Event{ID: "1", Level: "INFO"})
		t.Collect(Event{ID: "2", Level: "INFO"})
		t.Collect(Event{ID: "3", Level: "ERROR"})

		Expect(t.LevelCount("INFO")).To(Equal(uint64(2)))
		Expect(t.LevelCount("ERROR")).To(Equal(uint64(1)))
		Expect(t.LevelCount("DEBUG")).To(Equal(uint64(0)))
	})

	It("should record level names in order of first appearance", func() {
		t.Collect(Event{ID: "1", Level: "WARNING"})
		t.Collect(Event{ID: "2", Level: "INFO"})
		t.Collect(Event{ID: "3", Level: "WARNING"})

		Expect(t.LevelNames()).To(Equal([]string{"WARNING", "INFO"}))
	})

	It("should respect the filter", func() {
		t = NewCountTracer(func(e Event) bool {
			return e.Level == "ERROR"
		})

		t.Collect(Event{ID: "1", Level: "INFO"})
		t.Collect(Event{ID: "2", Level: "ERROR"})

		Expect(t.TotalCount()).To(Equal(uint64(1)))
		Expect(t.LevelNames()).To(Equal([]string{"ERROR"}))
	})
})
