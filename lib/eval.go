package lib

import (
	"sync"
	"sync/atomic"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

// EvalTask is one (count, threshold, method) cell of the result tensor.
// Tasks are independent: each reads shared inputs and writes its own cache
// file, so they can run in any order or concurrently.
type EvalTask struct {
	MethodIdx int
	CountIdx  int
	ThrIdx    int
}

// ResultTensor holds one recall scalar per (count, threshold, method).
type ResultTensor struct {
	Counts     []int
	Thresholds []float64
	Methods    []string
	R          [][][]float64
}

func NewResultTensor(counts []int, thrs []float64, methods []string) *ResultTensor {
	r := make([][][]float64, len(counts))
	for ci := range r {
		r[ci] = make([][]float64, len(thrs))
		for ti := range r[ci] {
			r[ci][ti] = make([]float64, len(methods))
		}
	}
	return &ResultTensor{
		Counts:     counts,
		Thresholds: thrs,
		Methods:    methods,
		R:          r,
	}
}

// CountCurve returns recall over the count axis for one (threshold, method).
func (rt *ResultTensor) CountCurve(ti, mi int) []float64 {
	curve := make([]float64, len(rt.Counts))
	for ci := range rt.Counts {
		curve[ci] = rt.R[ci][ti][mi]
	}
	return curve
}

// ThresholdCurve returns recall over the threshold axis for one (count, method).
func (rt *ResultTensor) ThresholdCurve(ci, mi int) []float64 {
	curve := make([]float64, len(rt.Thresholds))
	for ti := range rt.Thresholds {
		curve[ti] = rt.R[ci][ti][mi]
	}
	return curve
}

// EnumerateTasks builds the full cross-product, every combination exactly once.
func EnumerateTasks(cfg EvalConfig) []EvalTask {
	var tasks []EvalTask
	for ci := range cfg.Counts {
		for ti := range cfg.Thresholds {
			for mi := range cfg.Names {
				tasks = append(tasks, EvalTask{
					MethodIdx: mi,
					CountIdx:  ci,
					ThrIdx:    ti,
				})
			}
		}
	}
	return tasks
}

// Evaluator resolves tasks to recall scalars through the file cache.
type Evaluator struct {
	Cfg     EvalConfig
	Dataset *Dataset
	Matcher Matcher

	// cache hit/miss counters, updated atomically by workers
	Hits   int64
	Misses int64

	mu        sync.Mutex
	proposals map[string]*ProposalSet
}

func NewEvaluator(cfg EvalConfig, ds *Dataset) *Evaluator {
	return &Evaluator{
		Cfg:       cfg,
		Dataset:   ds,
		Matcher:   GreedyMatcher{},
		proposals: make(map[string]*ProposalSet),
	}
}

// numImages is the image count used for every task: the dataset size capped
// by the configured maximum.
func (e *Evaluator) numImages() int {
	n := len(e.Dataset.Images)
	if e.Cfg.MaxImages > 0 {
		n = MinInt(n, e.Cfg.MaxImages)
	}
	return n
}

// getProposals loads a method's proposal file on first use and shares it
// across workers afterwards.
func (e *Evaluator) getProposals(method string) (*ProposalSet, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ps, ok := e.proposals[method]; ok {
		return ps, nil
	}
	ps, err := LoadProposals(e.Cfg.ResDir, method, e.Dataset.Split)
	if err != nil {
		return nil, err
	}
	e.proposals[method] = ps
	return ps, nil
}

// EvalTask resolves one task: a cache hit returns the stored scalar
// unchanged; a miss truncates proposals to the first k per image, matches
// them against ground truth, reduces the detection-rate curve to its
// maximum, and writes it back.
func (e *Evaluator) EvalTask(task EvalTask) (float64, error) {
	method := e.Cfg.Names[task.MethodIdx]
	k := e.Cfg.Counts[task.CountIdx]
	thr := e.Cfg.Thresholds[task.ThrIdx]
	n := e.numImages()

	fname := CachePath(e.Cfg.ResDir, method, e.Dataset.Split, n, k, thr)
	if r, ok := ReadCachedRecall(fname); ok {
		atomic.AddInt64(&e.Hits, 1)
		return r, nil
	}
	atomic.AddInt64(&e.Misses, 1)

	ps, err := e.getProposals(method)
	if err != nil {
		return 0, err
	}
	gts := e.Dataset.Truncate(n)
	dets := ps.TopK(n, k)

	var allGts []MatchedGt
	var allDets []MatchedDet
	for i := range gts {
		var boxes []Box
		if i < len(dets) {
			boxes = dets[i]
		}
		mgts, mdets := e.Matcher.MatchBoxes(gts[i], boxes, thr)
		allGts = append(allGts, mgts...)
		allDets = append(allDets, mdets...)
	}
	curve := e.Matcher.DetectionRateCurve(allGts, allDets)
	var r float64
	if len(curve) > 0 {
		r = FloatsMax(curve)
	}
	if err := WriteCachedRecall(fname, r); err != nil {
		return 0, err
	}
	return r, nil
}

// Run evaluates the full cross-product on a fixed-size worker pool and
// returns the populated tensor. Any task failure aborts the run; no
// partial tensor is returned.
func (e *Evaluator) Run() (*ResultTensor, error) {
	tasks := EnumerateTasks(e.Cfg)
	tensor := NewResultTensor(e.Cfg.Counts, e.Cfg.Thresholds, e.Cfg.Names)

	bar := progressbar.NewOptions(len(tasks),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][EB][reset] Evaluate Boxes"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	ch := make(chan EvalTask, len(tasks))
	for _, task := range tasks {
		ch <- task
	}
	close(ch)

	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error
	for w := 0; w < e.Cfg.Threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range ch {
				r, err := e.EvalTask(task)
				if err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errMu.Unlock()
					continue
				}
				tensor.R[task.CountIdx][task.ThrIdx][task.MethodIdx] = r
				bar.Add(1)
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return tensor, nil
}
