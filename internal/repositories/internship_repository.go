package repositories

import (
	"errors"
	"fmt"
	"strings"

	"interntrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInternshipNotFound = errors.New("internship not found")

// InternshipFilter narrows a listing within the owner's partition.
type InternshipFilter struct {
	Status   models.ApplicationStatus
	Priority models.Priority
	Search   string
	SortBy   string // date, company, status or "" for newest-first
}

// InternshipRepository owns all access to internship records. Every query is
// predicated on the owner id, so a record belonging to another user behaves
// exactly like a missing one.
type InternshipRepository interface {
	Create(internship *models.Internship) error
	FindAllByUser(userID string, filter InternshipFilter) ([]models.Internship, error)
	FindByIDAndUser(userID, id string) (*models.Internship, error)
	Update(userID, id string, updates map[string]interface{}) (*models.Internship, error)
	Delete(userID, id string) error
	CountByStatus(userID string) (map[models.ApplicationStatus]int64, error)
}

type InternshipRepositoryImpl struct {
	db *gorm.DB
}

func NewInternshipRepository(db *gorm.DB) InternshipRepository {
	return &InternshipRepositoryImpl{db: db}
}

func (r *InternshipRepositoryImpl) Create(internship *models.Internship) error {
	return r.db.Create(internship).Error
}

func (r *InternshipRepositoryImpl) FindAllByUser(userID string, filter InternshipFilter) ([]models.Internship, error) {
	var internships []models.Internship
	query := r.db.Model(&models.Internship{}).Where("user_id = ?", userID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Search != "" {
		// Case-insensitive substring match over company OR position,
		// portable across postgres, mysql and sqlite.
		search := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(company_name) LIKE ? OR LOWER(position) LIKE ?", search, search)
	}

	switch filter.SortBy {
	case "date":
		query = query.Order("application_date DESC")
	case "company":
		query = query.Order("company_name ASC")
	case "status":
		query = query.Order(statusOrderExpr() + " ASC")
	default:
		query = query.Order("created_at DESC")
	}

	err := query.Find(&internships).Error
	return internships, err
}

func (r *InternshipRepositoryImpl) FindByIDAndUser(userID, id string) (*models.Internship, error) {
	var internship models.Internship
	err := r.db.First(&internship, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	return &internship, nil
}

func (r *InternshipRepositoryImpl) Update(userID, id string, updates map[string]interface{}) (*models.Internship, error) {
	// Resolve within the owner's partition first so an unowned id fails the
	// same way as a nonexistent one.
	internship, err := r.FindByIDAndUser(userID, id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := r.db.Model(internship).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return r.FindByIDAndUser(userID, id)
}

func (r *InternshipRepositoryImpl) Delete(userID, id string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Internship{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInternshipNotFound
	}
	return nil
}

// CountByStatus runs a single grouped count over the owner's records.
// Missing buckets are filled in by the service, not here.
func (r *InternshipRepositoryImpl) CountByStatus(userID string) (map[models.ApplicationStatus]int64, error) {
	type statusCount struct {
		Status models.ApplicationStatus
		Count  int64
	}

	var rows []statusCount
	err := r.db.Model(&models.Internship{}).
		Select("status, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ApplicationStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// statusOrderExpr builds a CASE expression that sorts statuses in pipeline
// order rather than alphabetically. Inputs come from the fixed enum slice,
// never from the request.
func statusOrderExpr() string {
	var b strings.Builder
	b.WriteString("CASE status")
	for i, s := range models.ApplicationStatuses {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", s, i)
	}
	b.WriteString(" END")
	return b.String()
}
