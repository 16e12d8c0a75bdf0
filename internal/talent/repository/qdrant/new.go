package qdrant

import (
	"internship-assistant/internal/talent/repository"
	pkgLog "internship-assistant/pkg/log"
	pkgQdrant "internship-assistant/pkg/qdrant"
	"internship-assistant/pkg/voyage"
)

const (
	// DefaultVectorSize matches voyage-3.
	DefaultVectorSize = 1024
	upsertBatchSize   = 64
	distanceCosine    = "Cosine"
)

// Options names the collections and their vector size.
type Options struct {
	SeekerCollection string
	PostCollection   string
	VectorSize       int
}

type implRepository struct {
	client   *pkgQdrant.Client
	embedder voyage.IVoyage
	opt      Options
	l        pkgLog.Logger
}

var _ repository.Index = (*implRepository)(nil)

// New creates a Qdrant-backed semantic index.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, opt Options, l pkgLog.Logger) repository.Index {
	if opt.VectorSize <= 0 {
		opt.VectorSize = DefaultVectorSize
	}
	return &implRepository{
		client:   client,
		embedder: embedder,
		opt:      opt,
		l:        l,
	}
}
