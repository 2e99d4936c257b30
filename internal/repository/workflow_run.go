package repository

import (
	"github.com/contoso/sre-demo-agent/internal/models"
	"github.com/contoso/sre-demo-agent/internal/utils"
	"gorm.io/gorm"
)

type WorkflowRunRepository struct {
	db *gorm.DB
}

// NewWorkflowRunRepository returns pointer to repo along with the db
func NewWorkflowRunRepository(db *gorm.DB) *WorkflowRunRepository {
	return &WorkflowRunRepository{db}
}

func (r *WorkflowRunRepository) CreateRun(run *models.WorkflowRun) (*models.WorkflowRun, error) {
	if err := r.db.Create(run).Error; err != nil {
		return nil, err
	}

	return run, nil
}

func (r *WorkflowRunRepository) ReadRun(uid string) (*models.WorkflowRun, error) {
	run := &models.WorkflowRun{}

	if err := r.db.Where("unique_id = ?", uid).First(run).Error; err != nil {
		return nil, err
	}

	return run, nil
}

func (r *WorkflowRunRepository) UpdateRun(run *models.WorkflowRun) (*models.WorkflowRun, error) {
	if err := r.db.Save(run).Error; err != nil {
		return nil, err
	}

	return run, nil
}

func (r *WorkflowRunRepository) ListRuns(filter *utils.ListWorkflowRunsFilter, opts ...utils.QueryOption) ([]*models.WorkflowRun, error) {
	runs := make([]*models.WorkflowRun, 0)

	db := r.db.Scopes(utils.Paginate(opts))

	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}

	if err := db.Find(&runs).Error; err != nil {
		return nil, err
	}

	return runs, nil
}
