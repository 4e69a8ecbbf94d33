package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/TemirB/settlement-analytics/internal/domain"
)

// AddTag appends tag to address's set and returns the stored row. The order
// snapshot is not touched. A tag_added event is published afterwards;
// publishing problems are only logged.
func (s *Service) AddTag(ctx context.Context, address, tag string) (domain.UserTags, error) {
	tctx, cancel := s.tagContext(ctx)
	row, err := s.tags.AddTag(tctx, address, tag)
	cancel()
	if err != nil {
		s.logger.Error("Error adding tag",
			zap.String("address", address),
			zap.String("tag", tag),
			zap.Error(err),
		)
		return domain.UserTags{}, err
	}

	s.logger.Info("Tag added",
		zap.String("address", address),
		zap.String("tag", tag),
		zap.Strings("tags", row.Tags),
	)

	if s.publisher != nil {
		if err := s.publisher.TagAdded(ctx, row, tag); err != nil {
			s.logger.Warn("Error publishing tag event",
				zap.String("address", address),
				zap.Error(err),
			)
		}
	}
	return row, nil
}
