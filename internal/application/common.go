package application

import "github.com/iwat/randseq/internal/domain"

// SequenceGenerator interface for abstracting bit sequence generation
type SequenceGenerator interface {
	Generate(length int) domain.BitSequence
}

// FileWriter interface for abstracting file operations
type FileWriter interface {
	WriteFile(filename string, data []byte, perm int) error
}

// FileReader interface for abstracting file operations
type FileReader interface {
	ReadFile(filename string) ([]byte, error)
}
