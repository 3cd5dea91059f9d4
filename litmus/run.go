package litmus

import (
	"github.com/iw2rmb/cursorfit/internal/debuglog"
)

// Result is the outcome of one case. Index is 1-based.
type Result struct {
	Index    int
	Input    string
	Got      string
	Expected string
	Pass     bool
	Err      error
}

type Report struct {
	Suite   string
	Kind    Kind
	Results []Result
}

// Passed counts passing results.
func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Pass {
			n++
		}
	}
	return n
}

// Failures returns the 1-based indices of failing results.
func (r Report) Failures() []int {
	var out []int
	for _, res := range r.Results {
		if !res.Pass {
			out = append(out, res.Index)
		}
	}
	return out
}

func (r Report) OK() bool {
	return len(r.Failures()) == 0
}

// Run draws every case of s and compares it with the expectation.
func Run(s Suite) Report {
	opt := s.Options.withDefaults()
	log := debuglog.WithFields(debuglog.Fields{"suite": s.Name, "kind": s.Kind})

	rep := Report{Suite: s.Name, Kind: s.Kind, Results: make([]Result, 0, len(s.Cases))}
	for i, c := range s.Cases {
		got, err := Draw(s.Kind, c.Input, opt)
		res := Result{
			Index:    i + 1,
			Input:    c.Input,
			Got:      got,
			Expected: c.Expected,
			Err:      err,
		}
		res.Pass = err == nil && (c.Expected == "" || got == c.Expected)
		if !res.Pass {
			log.Warnf("case %d failed: input %q got %q want %q err %v", res.Index, c.Input, got, c.Expected, err)
		}
		rep.Results = append(rep.Results, res)
	}

	log.Infof("%d/%d cases passed", rep.Passed(), len(rep.Results))
	return rep
}
