package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"olive/entities"
	"olive/pkg/apperr"
	"olive/pkg/task/repository"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func withEvidence(db *gorm.DB) *gorm.DB {
	return db.Preload("Evidence", func(tx *gorm.DB) *gorm.DB { return tx.Order("timestamp ASC") })
}

func (r *taskRepo) List(ctx context.Context, q repository.TaskQuery) ([]entities.Task, error) {
	var out []entities.Task
	db := withEvidence(r.db.WithContext(ctx))
	if q.FieldID != "" {
		db = db.Where("field_id = ?", q.FieldID)
	}
	if q.AssignedTo != "" {
		db = db.Where("assigned_to = ?", q.AssignedTo)
	}
	if err := db.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) FindByID(ctx context.Context, id string) (*entities.Task, error) {
	var t entities.Task
	if err := withEvidence(r.db.WithContext(ctx)).Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("task", id)
		}
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) Create(ctx context.Context, t *entities.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// Update rewrites the task row. Evidence is append-only and never touched here.
func (r *taskRepo) Update(ctx context.Context, t *entities.Task) error {
	res := r.db.WithContext(ctx).Model(&entities.Task{}).Where("id = ?", t.ID).
		Select("*").Omit(clause.Associations, "created_at", "field_id").Updates(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("task", t.ID)
	}
	return nil
}

func (r *taskRepo) AppendEvidence(ctx context.Context, taskID string, ev *entities.Evidence) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.Task{}).Where("id = ?", taskID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return apperr.NotFound("task", taskID)
		}
		ev.TaskID = taskID
		return tx.Create(ev).Error
	})
}
