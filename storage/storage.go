package storage

import (
	"github.com/satori/go.uuid"
)

// Entry is a named 4x4 transformation, elements in row-major order.
type Entry struct {
	Name     string    `yaml:"name"`
	Elements []float32 `yaml:"elements"`
}

// Pipeline is the on disk representation of an ordered list of
// transformations, the first one being applied first.
type Pipeline struct {
	ID      string  `yaml:"id"`
	Entries []Entry `yaml:"entries"`
}

func NewID() string {
	return uuid.Must(uuid.NewV4()).String()
}
