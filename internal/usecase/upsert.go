package usecase

import (
	"context"
	"slices"
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

// upsertStep carries the kind-specific parts of one add-or-update request.
type upsertStep[T any] struct {
	id      *uuid.UUID
	subject string

	// isDuplicate matches an existing entity carrying the requested natural
	// key. Kinds without a natural key leave it nil.
	isDuplicate      func(*T) bool
	duplicateMessage string

	// resolve looks up the referenced entities. A non-empty missing message
	// aborts the request with NotFound before anything is mutated.
	resolve func(tx *gorm.DB) (missing string, err error)

	// apply copies the request onto the entity, replacing its references.
	apply func(*T)
}

// upserter runs the add-or-update protocol shared by every entity kind
// inside one transaction.
type upserter[T any, P entity.Pointer[T]] struct {
	kind      string
	db        *gorm.DB
	log       *logrus.Logger
	repo      repository.Repository[T]
	validator validation.Validator[T]
	audit     service.AuditService
	convert   func(*T) interface{}
}

func (u *upserter[T, P]) run(ctx context.Context, step upsertStep[T]) *dto.BaseResponse {
	adding := step.id == nil
	op := operation(adding)
	u.log.Infof("RQST: %s %s", op, step.subject)

	resp, err := u.execute(ctx, step, adding)
	if err != nil {
		u.log.WithError(err).Errorf("RQST: failed: unexpected error during %s for %s", op, step.subject)
		return respond(dto.InternalError())
	}
	return resp
}

func (u *upserter[T, P]) execute(ctx context.Context, step upsertStep[T], adding bool) (*dto.BaseResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	// The duplicate check sees the entities as they were before this request.
	all, err := u.repo.GetAll(tx)
	if err != nil {
		return nil, err
	}

	var target *T
	if adding {
		if step.isDuplicate != nil && slices.ContainsFunc(all, step.isDuplicate) {
			u.log.Warnf("RQST: failed: %s", step.duplicateMessage)
			return respond(dto.Conflict(step.duplicateMessage)), nil
		}
		target = new(T)
	} else {
		i := slices.IndexFunc(all, func(item *T) bool { return P(item).GetID() == *step.id })
		if i < 0 {
			u.log.Warnf("RQST: failed: %s ID %s not found", u.kind, *step.id)
			return respond(dto.NotFound(u.kind + " not found.")), nil
		}
		target = all[i]
	}

	if step.resolve != nil {
		missing, err := step.resolve(tx)
		if err != nil {
			return nil, err
		}
		if missing != "" {
			u.log.Warnf("RQST: failed: %s", missing)
			return respond(dto.NotFound(missing)), nil
		}
	}

	var oldValue interface{}
	if !adding {
		oldValue = u.convert(target)
	}

	old := *target
	step.apply(target)

	if u.validator != nil {
		ok, err := u.validator.Validate(ctx, target)
		if err != nil || !ok {
			*target = old
		}
		if err != nil {
			return nil, err
		}
		if !ok {
			u.log.Warnf("RQST: failed: validation failed for %s", step.subject)
			return respond(dto.ValidationFailed(u.kind + " validation failed")), nil
		}
	}

	if err := u.repo.AddOrUpdate(tx, target); err != nil {
		if isDuplicateKeyError(err) {
			message := step.duplicateMessage
			if message == "" {
				message = u.kind + " already exists."
			}
			u.log.Warnf("RQST: failed: %s: %v", message, err)
			return respond(dto.Conflict(message)), nil
		}
		return nil, err
	}

	u.writeAudit(ctx, tx, adding, target, oldValue)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return respond(dto.OK()), nil
}

func (u *upserter[T, P]) writeAudit(ctx context.Context, tx *gorm.DB, adding bool, target *T, oldValue interface{}) {
	if u.audit == nil {
		return
	}

	name := strings.ToLower(u.kind)
	id := P(target).GetID().String()
	recordAudit(tx, u.log, func() error {
		if adding {
			return u.audit.LogCreate(ctx, tx, name, id, u.convert(target))
		}
		return u.audit.LogUpdate(ctx, tx, name, id, oldValue, u.convert(target))
	})
}

// recordAudit runs write under a savepoint so that a failed audit insert
// leaves the surrounding transaction usable.
func recordAudit(tx *gorm.DB, log *logrus.Logger, write func() error) {
	if err := tx.SavePoint("audit").Error; err != nil {
		log.Warnf("Failed to create audit log: %+v", err)
		return
	}
	if err := write(); err != nil {
		log.Warnf("Failed to create audit log: %+v", err)
		tx.RollbackTo("audit")
	}
}

func respond(resp dto.BaseResponse) *dto.BaseResponse {
	return &resp
}
