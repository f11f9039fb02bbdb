package usecase

import (
	"context"

	"clinic-queue/internal/converter"
	"clinic-queue/internal/delivery/dto"
	"clinic-queue/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// listAll loads every entity of a kind and converts it. On failure the
// items are empty, never nil.
func listAll[T any, D any](ctx context.Context, db *gorm.DB, log *logrus.Logger, repo repository.Repository[T], conv converter.Converter[T, D], kind string) ([]D, dto.BaseResponse) {
	log.Infof("RQST: Get all %s", kind)

	items, err := repo.GetAll(db.WithContext(ctx))
	if err != nil {
		log.WithError(err).Errorf("RQST: failed: unable to load %s", kind)
		return []D{}, dto.InternalError()
	}

	return converter.ToResponses(conv, items), dto.OK()
}
