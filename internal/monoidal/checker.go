package monoidal

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tensorloom/internal/graded"
)

// Suite is the collection of graded objects a verification run quantifies
// over. W is the fourth object the pentagon needs and defaults to X; the
// endomorphism families FX/FY/FZ exercise functoriality and naturality and
// default to identities when nil.
type Suite[I comparable, Ob, Mor any] struct {
	X, Y, Z graded.Obj[I, Ob]
	W       graded.Obj[I, Ob]

	FX, FY, FZ graded.Hom[I, Mor]
}

// Checker verifies the coherence obligations of a Structure at a sample of
// indexes. Obligations are independent of one another, so they run on a
// bounded worker pool; the engine underneath stays pure and every obligation
// is re-derived from scratch.
type Checker[I comparable, Ob, Mor any] struct {
	s    *Structure[I, Ob, Mor]
	log  *zap.Logger
	jobs int
}

// NewChecker builds a checker. A nil logger disables logging; jobs <= 0
// means one worker per available CPU.
func NewChecker[I comparable, Ob, Mor any](s *Structure[I, Ob, Mor], log *zap.Logger, jobs int) *Checker[I, Ob, Mor] {
	if s == nil {
		panic("monoidal: nil structure")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return &Checker[I, Ob, Mor]{s: s, log: log, jobs: jobs}
}

type obligationJob[I comparable] struct {
	law   Law
	index I
	check func() bool
}

// Verify checks every applicable law at every sampled index and returns the
// per-obligation report. The only error condition is context cancellation;
// a failed law is a report entry, not an error.
func (c *Checker[I, Ob, Mor]) Verify(ctx context.Context, su Suite[I, Ob, Mor], sample []I) (*Report[I], error) {
	runID := uuid.NewString()
	log := c.log.With(zap.String("run_id", runID))

	su = c.withDefaults(su)
	var jobs []obligationJob[I]
	for _, k := range sample {
		jobs = append(jobs, c.obligationsAt(su, k)...)
	}
	log.Info("verification started",
		zap.Int("obligations", len(jobs)),
		zap.Int("indexes", len(sample)),
		zap.Int("workers", c.jobs))

	results := make([]Obligation[I], len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.jobs)
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok := j.check()
			results[i] = Obligation[I]{Law: j.law, Index: j.index, OK: ok}
			if ok {
				log.Debug("obligation discharged",
					zap.String("law", string(j.law)), zap.Any("index", j.index))
			} else {
				log.Warn("obligation failed",
					zap.String("law", string(j.law)), zap.Any("index", j.index))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report[I]{RunID: runID, Obligations: results}
	log.Info("verification finished", zap.Bool("ok", report.OK()))
	return report, nil
}

func (c *Checker[I, Ob, Mor]) withDefaults(su Suite[I, Ob, Mor]) Suite[I, Ob, Mor] {
	cc := c.s.tb.Category()
	if su.W == nil {
		su.W = su.X
	}
	if su.FX == nil {
		su.FX = graded.Identity[I](cc, su.X)
	}
	if su.FY == nil {
		su.FY = graded.Identity[I](cc, su.Y)
	}
	if su.FZ == nil {
		su.FZ = graded.Identity[I](cc, su.Z)
	}
	return su
}

// obligationsAt instantiates every law at one target index. Each check
// reduces a morphism equality to per-injection equalities via the relevant
// witness's Ext, then the base category's facts close the components.
func (c *Checker[I, Ob, Mor]) obligationsAt(su Suite[I, Ob, Mor], k I) []obligationJob[I] {
	tb := c.s.tb
	cc := tb.Category()

	idX := graded.Identity[I](cc, su.X)
	idY := graded.Identity[I](cc, su.Y)

	pxy := tb.Product(su.X, su.Y)
	pyz := tb.Product(su.Y, su.Z)

	jobs := []obligationJob[I]{
		{LawTensorIdentity, k, func() bool {
			w := pxy.Witness(k)
			lhs := tb.Hom(pxy, pxy, idX, idY)(k)
			return w.Ext(lhs, cc.Identity(w.Ob()))
		}},
		{LawTensorCompose, k, func() bool {
			h := tb.Hom(pxy, pxy, su.FX, su.FY)
			lhs := cc.Compose(h(k), h(k))
			rhs := tb.Hom(pxy, pxy,
				graded.Compose[I](cc, su.FX, su.FX),
				graded.Compose[I](cc, su.FY, su.FY))(k)
			return pxy.Witness(k).Ext(lhs, rhs)
		}},
		{LawInterchange, k, func() bool {
			lhs := cc.Compose(
				tb.Hom(pxy, pxy, su.FX, idY)(k),
				tb.Hom(pxy, pxy, idX, su.FY)(k))
			rhs := tb.Hom(pxy, pxy, su.FX, su.FY)(k)
			return pxy.Witness(k).Ext(lhs, rhs)
		}},
		{LawAssociatorLeft, k, func() bool {
			a := tb.Associator(su.X, su.Y, su.Z)
			left := tb.TripleLeft(su.X, su.Y, su.Z, k)
			return left.Ext(cc.Compose(a.Hom(k), a.Inv(k)), cc.Identity(left.Ob()))
		}},
		{LawAssociatorRight, k, func() bool {
			a := tb.Associator(su.X, su.Y, su.Z)
			right := tb.TripleRight(su.X, su.Y, su.Z, k)
			return right.Ext(cc.Compose(a.Inv(k), a.Hom(k)), cc.Identity(right.Ob()))
		}},
		{LawAssociatorNat, k, func() bool {
			a := tb.Associator(su.X, su.Y, su.Z)
			pxyz := tb.Product(pxy.Obj(), su.Z)
			pxyzR := tb.Product(su.X, pyz.Obj())
			lhs := cc.Compose(
				tb.Hom(pxyz, pxyz, tb.Hom(pxy, pxy, su.FX, su.FY), su.FZ)(k),
				a.Hom(k))
			rhs := cc.Compose(
				a.Hom(k),
				tb.Hom(pxyzR, pxyzR, su.FX, tb.Hom(pyz, pyz, su.FY, su.FZ))(k))
			return tb.TripleLeft(su.X, su.Y, su.Z, k).Ext(lhs, rhs)
		}},
		{LawPentagon, k, c.pentagonAt(su, k)},
	}

	if c.s.HasUnits() {
		jobs = append(jobs,
			obligationJob[I]{LawLeftUnitor, k, func() bool {
				u := c.s.UnitObj()
				lam := c.s.LeftUnitor(su.X)
				w := tb.Product(u, su.X).Witness(k)
				return w.Ext(cc.Compose(lam.Hom(k), lam.Inv(k)), cc.Identity(w.Ob())) &&
					cc.Equal(cc.Compose(lam.Inv(k), lam.Hom(k)), cc.Identity(su.X(k)))
			}},
			obligationJob[I]{LawRightUnitor, k, func() bool {
				u := c.s.UnitObj()
				rho := c.s.RightUnitor(su.X)
				w := tb.Product(su.X, u).Witness(k)
				return w.Ext(cc.Compose(rho.Hom(k), rho.Inv(k)), cc.Identity(w.Ob())) &&
					cc.Equal(cc.Compose(rho.Inv(k), rho.Hom(k)), cc.Identity(su.X(k)))
			}},
			obligationJob[I]{LawTriangle, k, func() bool {
				u := c.s.UnitObj()
				a := tb.Associator(su.X, u, su.Y)
				puy := tb.Product(u, su.Y)
				pxu := tb.Product(su.X, u)
				lhs := cc.Compose(
					a.Hom(k),
					tb.Hom(tb.Product(su.X, puy.Obj()), pxy, idX, c.s.LeftUnitor(su.Y).Hom)(k))
				rhs := tb.Hom(tb.Product(pxu.Obj(), su.Y), pxy, c.s.RightUnitor(su.X).Hom, idY)(k)
				return tb.TripleLeft(su.X, u, su.Y, k).Ext(lhs, rhs)
			}},
		)
	}
	return jobs
}

// pentagonAt checks that the two five-step reassociations of
// (((X⊗Y)⊗Z)⊗W) agree, by extensionality over the 4-ary fiber.
func (c *Checker[I, Ob, Mor]) pentagonAt(su Suite[I, Ob, Mor], k I) func() bool {
	return func() bool {
		tb := c.s.tb
		cc := tb.Category()
		a, b, d, e := su.X, su.Y, su.Z, su.W

		idA := graded.Identity[I](cc, a)
		idE := graded.Identity[I](cc, e)

		pab := tb.Product(a, b)
		pbd := tb.Product(b, d)
		pde := tb.Product(d, e)
		pabD := tb.Product(pab.Obj(), d)  // (a⊗b)⊗d
		paBD := tb.Product(a, pbd.Obj())  // a⊗(b⊗d)
		pbdE := tb.Product(pbd.Obj(), e)  // (b⊗d)⊗e
		pbDE := tb.Product(b, pde.Obj())  // b⊗(d⊗e)

		step1 := tb.Hom(
			tb.Product(pabD.Obj(), e), tb.Product(paBD.Obj(), e),
			tb.Associator(a, b, d).Hom, idE)
		step2 := tb.Associator(a, pbd.Obj(), e).Hom
		step3 := tb.Hom(
			tb.Product(a, pbdE.Obj()), tb.Product(a, pbDE.Obj()),
			idA, tb.Associator(b, d, e).Hom)
		lhs := cc.Compose(step1(k), cc.Compose(step2(k), step3(k)))

		short1 := tb.Associator(pab.Obj(), d, e).Hom
		short2 := tb.Associator(a, b, pde.Obj()).Hom
		rhs := cc.Compose(short1(k), short2(k))

		return tb.QuadLeft(a, b, d, e, k).Ext(lhs, rhs)
	}
}
