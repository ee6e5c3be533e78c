package handlers

import (
	"fmt"
	"io"

	"github.com/evilsocket/galu/matrix"
	"github.com/evilsocket/galu/storage"
	"github.com/evilsocket/galu/transform"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"
)

const inverseCacheSize = 64

// Step is a single named transformation of the pipeline.
type Step struct {
	Name   string
	Matrix matrix.Matrix4
}

// Session holds the transformation pipeline being built by the user, in the
// order the transformations are applied.
type Session struct {
	ID       string
	Out      io.Writer
	steps    []Step
	inverses *lru.Cache
	log      *logrus.Entry
}

func NewSession(out io.Writer) *Session {
	id := storage.NewID()
	inverses, _ := lru.New(inverseCacheSize)
	return &Session{
		ID:       id,
		Out:      out,
		steps:    make([]Step, 0),
		inverses: inverses,
		log:      logrus.WithField("session", id),
	}
}

func (s *Session) Push(name string, m matrix.Matrix4) {
	s.steps = append(s.steps, Step{Name: name, Matrix: m})
	s.log.WithFields(logrus.Fields{
		"step":  name,
		"index": len(s.steps) - 1,
		"det":   m.Determinant(),
	}).Debug("pushed transformation")
}

// Pop removes the last step, if any.
func (s *Session) Pop() (Step, bool) {
	n := len(s.steps)
	if n == 0 {
		return Step{}, false
	}
	last := s.steps[n-1]
	s.steps = s.steps[:n-1]
	s.log.WithFields(logrus.Fields{
		"step": last.Name,
		"left": n - 1,
	}).Debug("popped transformation")
	return last, true
}

func (s *Session) Reset() {
	s.log.WithField("steps", len(s.steps)).Debug("pipeline reset")
	s.steps = s.steps[:0]
}

func (s *Session) Steps() []Step {
	return s.steps
}

func (s *Session) Size() int {
	return len(s.steps)
}

// Combined returns the single matrix applying every step in order.
func (s *Session) Combined() matrix.Matrix4 {
	ms := make([]matrix.Matrix4, len(s.steps))
	for i, step := range s.steps {
		ms[i] = step.Matrix
	}
	return transform.Combine4(ms...)
}

// Inverse returns the inverse of the combined matrix. Results are cached by
// the bit patterns of the combined matrix.
func (s *Session) Inverse() (matrix.Matrix4, error) {
	m := s.Combined()
	key := m.Bits()
	if cached, found := s.inverses.Get(key); found {
		s.log.WithField("hash", m.Hash()).Debug("inverse cache hit")
		return cached.(matrix.Matrix4), nil
	}

	inv, err := m.Inverse()
	if err != nil {
		return matrix.Matrix4{}, err
	}
	s.inverses.Add(key, inv)
	return inv, nil
}

// Save writes the pipeline to fileName.
func (s *Session) Save(fileName string) error {
	p := storage.Pipeline{
		ID:      s.ID,
		Entries: make([]storage.Entry, len(s.steps)),
	}
	for i, step := range s.steps {
		elems := step.Matrix.RowMajor()
		p.Entries[i] = storage.Entry{
			Name:     step.Name,
			Elements: elems[:],
		}
	}

	if err := storage.Flush(&p, fileName); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"file":  fileName,
		"steps": len(p.Entries),
	}).Debug("pipeline saved")
	return nil
}

// Load replaces the pipeline with the one stored in fileName. The current
// pipeline is left untouched if the file can't be loaded.
func (s *Session) Load(fileName string) error {
	var p storage.Pipeline
	if err := storage.Load(fileName, &p); err != nil {
		return err
	}

	steps := make([]Step, len(p.Entries))
	for i, e := range p.Entries {
		m, err := matrix.LoadMatrix4(e.Elements, matrix.RowMajor)
		if err != nil {
			return fmt.Errorf("step %d (%s) of %s: %v", i, e.Name, fileName, err)
		}
		steps[i] = Step{Name: e.Name, Matrix: m}
	}

	s.steps = steps
	s.log.WithFields(logrus.Fields{
		"file":  fileName,
		"from":  p.ID,
		"steps": len(steps),
	}).Debug("pipeline loaded")
	return nil
}
