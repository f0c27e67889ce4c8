package field_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/ballfield/internal/field"
)

var _ = Describe("Pointer interaction", func() {
	var (
		f      *field.Field
		bodies []field.Body
	)

	BeforeEach(func() {
		p := field.DefaultParams()
		p.Count = 4
		p.Wander = 0
		var err error
		f, err = field.New(p, 2024)
		Expect(err).NotTo(HaveOccurred())
		f.Resize(1600, 1200)
		bodies = f.Bodies()
		Expect(bodies).To(HaveLen(4))
	})

	Describe("Press", func() {
		It("starts dragging the body under the pointer", func() {
			target := bodies[2].Pos
			Expect(f.Press(target.X, target.Y)).To(BeTrue())

			idx, ok := f.Dragged()
			Expect(ok).To(BeTrue())
			hit := f.Bodies()[idx]
			Expect(hit.Dragging()).To(BeTrue())
			Expect(hit.Contains(target)).To(BeTrue())
		})

		It("is a no-op for the simulation when nothing is hit", func() {
			Expect(f.Press(-500, -500)).To(BeFalse())
			_, ok := f.Dragged()
			Expect(ok).To(BeFalse())
			Expect(f.Pointer().Down).To(BeTrue())
			for _, b := range f.Bodies() {
				Expect(b.Dragging()).To(BeFalse())
			}
		})

		It("picks the first body in creation order when hit-tests overlap", func() {
			p := field.DefaultParams()
			p.Count = 40
			crowded, err := field.New(p, 5)
			Expect(err).NotTo(HaveOccurred())
			crowded.Resize(300, 300)

			all := crowded.Bodies()
			var at r2.Vec
			first, found := -1, false
			for i := range all {
				for j := i + 1; j < len(all) && !found; j++ {
					mid := r2.Scale(0.5, r2.Add(all[i].Pos, all[j].Pos))
					if all[i].Contains(mid) && all[j].Contains(mid) {
						at, found = mid, true
					}
				}
				if found {
					break
				}
			}
			Expect(found).To(BeTrue(), "seeded crowd should contain an overlapping pair")
			for i := range all {
				if all[i].Contains(at) {
					first = i
					break
				}
			}

			Expect(crowded.Press(at.X, at.Y)).To(BeTrue())
			idx, _ := crowded.Dragged()
			Expect(idx).To(Equal(first))

			dragging := 0
			for _, b := range crowded.Bodies() {
				if b.Dragging() {
					dragging++
				}
			}
			Expect(dragging).To(Equal(1))
		})
	})

	Describe("Drag and throw", func() {
		var (
			solo *field.Field
			dir  float64
		)

		BeforeEach(func() {
			p := field.DefaultParams()
			p.Count = 1
			p.Wander = 0
			var err error
			solo, err = field.New(p, 11)
			Expect(err).NotTo(HaveOccurred())
			solo.Resize(1600, 1200)

			target := solo.Bodies()[0].Pos
			dir = 1
			if target.X > 800 {
				dir = -1
			}
			Expect(solo.Press(target.X, target.Y)).To(BeTrue())
			solo.Step()
		})

		It("snaps the body to the pointer and derives the throw velocity", func() {
			start := solo.Pointer().Pos
			solo.Move(start.X+3, start.Y+4)
			solo.Step()

			b := solo.Bodies()[0]
			Expect(b.Pos).To(Equal(r2.Vec{X: start.X + 3, Y: start.Y + 4}))
			Expect(b.Vel.X).To(BeNumerically("~", 4.5, 1e-9))
			Expect(b.Vel.Y).To(BeNumerically("~", 6.0, 1e-9))
		})

		It("keeps the throw velocity after release", func() {
			start := solo.Pointer().Pos
			solo.Move(start.X+2*dir, start.Y)
			solo.Step()
			solo.Release()

			_, ok := solo.Dragged()
			Expect(ok).To(BeFalse())
			thrown := solo.Bodies()[0]
			Expect(thrown.Dragging()).To(BeFalse())
			Expect(thrown.Vel.X).To(BeNumerically("~", 3.0*dir, 1e-9))

			solo.Step()
			after := solo.Bodies()[0]
			Expect(after.Vel.X * dir).To(BeNumerically(">", 0))
			Expect((after.Pos.X - thrown.Pos.X) * dir).To(BeNumerically(">", 0))
		})

		It("leaves the dragged body still when the pointer rests", func() {
			solo.Step()
			Expect(solo.Bodies()[0].Vel).To(Equal(r2.Vec{}))
		})

		It("never produces non-finite state", func() {
			for i := 0; i < 200; i++ {
				angle := float64(i) / 10
				solo.Move(800+300*math.Cos(angle), 600+300*math.Sin(angle))
				solo.Step()
			}
			Expect(solo.Valid()).To(BeTrue())
		})
	})

	Describe("Release without a drag", func() {
		It("only lifts the pointer", func() {
			f.Press(-500, -500)
			f.Release()
			Expect(f.Pointer().Down).To(BeFalse())
			_, ok := f.Dragged()
			Expect(ok).To(BeFalse())
		})
	})
})
