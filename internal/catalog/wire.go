package catalog

import "go.uber.org/zap"

func NewModule(logger *zap.Logger) (*Controller, Repository) {
	repo := NewStaticRepository()
	return NewController(repo, logger), repo
}
