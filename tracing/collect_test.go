package tracing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/tracekit/tracekit/trace"
)

var _ = Describe("Collect", func() {
	var (
		mockCtrl *gomock.Controller
		tracer1  *MockTracer
		tracer2  *MockTracer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		tracer1 = NewMockTracer(mockCtrl)
		tracer2 = NewMockTracer(mockCtrl)
	})

	AfterEach(func() {
		Stop()
		mockCtrl.Finish()
	})

	It("should deliver decoded events to the tracer", func() {
		var collected Event
		tracer1.EXPECT().
			Collect(gomock.Any()).
			Do(func(e Event) { collected = e })

		Collect(tracer1)
		trace.Emit(uint32(trace.LevelInfo), []byte("hello"))

		Expect(collected.EventID).To(Equal(uint32(trace.LevelInfo)))
		Expect(collected.Level).To(Equal("INFO"))
		Expect(collected.Message).To(Equal("hello"))
		Expect(collected.ID).NotTo(BeEmpty())
		Expect(collected.Time).To(BeNumerically(">", 0))
	})

	It("should copy the payload before the borrow ends", func() {
		var collected Event
		tracer1.EXPECT().
			Collect(gomock.Any()).
			Do(func(e Event) { collected = e })

		Collect(tracer1)

		payload := []byte("original")
		trace.Emit(0, payload)
		payload[0] = 'X'

		Expect(collected.Message).To(Equal("original"))
	})

	It("should deliver each event to every tracer", func() {
		tracer1.EXPECT().Collect(gomock.Any()).Times(2)
		tracer2.EXPECT().Collect(gomock.Any()).Times(2)

		Collect(tracer1, tracer2)
		trace.Emit(1, nil)
		trace.Emit(2, []byte("b"))
	})

	It("should stop delivering after Stop", func() {
		tracer1.EXPECT().Collect(gomock.Any()).Times(1)

		Collect(tracer1)
		trace.Emit(1, nil)

		Stop()
		trace.Emit(1, nil)
	})

	It("should panic if the same tracer is attached twice", func() {
		Expect(func() {
			Collect(tracer1, tracer1)
		}).To(Panic())
	})

	It("should panic if no tracer is given", func() {
		Expect(func() {
			Collect()
		}).To(Panic())
	})
})
