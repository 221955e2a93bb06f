package repository

import (
	"context"

	"admissions-chat-be/internal/repository/unitofwork"
	"admissions-chat-be/pkg/rag"
)

// PassageIndexAdapter exposes the pgvector-backed passage table through the
// retriever's read-side interface.
type PassageIndexAdapter struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPassageIndex(uowFactory unitofwork.RepositoryFactory) *PassageIndexAdapter {
	return &PassageIndexAdapter{uowFactory: uowFactory}
}

func (a *PassageIndexAdapter) SearchNearest(ctx context.Context, vector []float32, limit int) ([]rag.ScoredPassage, error) {
	uow := a.uowFactory.NewUnitOfWork(ctx)

	scored, err := uow.PassageRepository().SearchNearest(ctx, vector, limit)
	if err != nil {
		return nil, err
	}

	passages := make([]rag.ScoredPassage, 0, len(scored))
	for _, s := range scored {
		passages = append(passages, rag.ScoredPassage{
			Text:     s.Passage.Content,
			Source:   s.Passage.Source,
			Distance: s.Distance,
		})
	}

	return passages, nil
}
