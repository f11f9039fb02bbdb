package usecase

import (
	"context"
	"strings"

	"clinic-queue/internal/delivery/dto"
	"clinic-queue/internal/domain/entity"
	"clinic-queue/internal/domain/repository"
	"clinic-queue/internal/service"
	"clinic-queue/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// deleter runs the delete protocol shared by every entity kind: lookup,
// optional dependency validation, removal.
type deleter[T any, P entity.Pointer[T]] struct {
	kind      string
	db        *gorm.DB
	log       *logrus.Logger
	repo      repository.Repository[T]
	validator validation.Validator[T]
	audit     service.AuditService
	convert   func(*T) interface{}
}

func (d *deleter[T, P]) run(ctx context.Context, id uuid.UUID) *dto.BaseResponse {
	d.log.Infof("RQST: Delete %s ID %s", strings.ToLower(d.kind), id)

	resp, err := d.execute(ctx, id)
	if err != nil {
		d.log.WithError(err).Errorf("ERR: Delete %s ID %s failed", strings.ToLower(d.kind), id)
		return respond(dto.InternalError())
	}
	return resp
}

func (d *deleter[T, P]) execute(ctx context.Context, id uuid.UUID) (*dto.BaseResponse, error) {
	tx := d.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	item, err := d.repo.GetOne(tx, func(item *T) bool { return P(item).GetID() == id })
	if err != nil {
		return nil, err
	}
	if item == nil {
		d.log.Warnf("RQST: %s ID %s not found", d.kind, id)
		return respond(dto.NotFound(d.kind + " not found")), nil
	}

	blocked := respond(dto.Conflict(d.kind + " cannot be deleted due to dependencies"))
	if d.validator != nil {
		ok, err := d.validator.Validate(ctx, item)
		if err != nil {
			return nil, err
		}
		if !ok {
			d.log.Warnf("RQST: Validation failed for %s ID %s", strings.ToLower(d.kind), id)
			return blocked, nil
		}
	}

	oldValue := d.convert(item)
	if err := d.repo.Remove(tx, item); err != nil {
		if isForeignKeyError(err) {
			d.log.Warnf("RQST: %s ID %s is still referenced: %v", d.kind, id, err)
			return blocked, nil
		}
		return nil, err
	}

	if d.audit != nil {
		recordAudit(tx, d.log, func() error {
			return d.audit.LogDelete(ctx, tx, strings.ToLower(d.kind), id.String(), oldValue)
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	d.log.Infof("RQST: %s ID %s deleted", d.kind, id)
	return respond(dto.OK()), nil
}
