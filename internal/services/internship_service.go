package services

import (
	"time"

	"interntrack_backend/internal/models"
	"interntrack_backend/internal/repositories"
	"interntrack_backend/internal/services/dto"
	"interntrack_backend/pkg/apperrors"
)

type InternshipService interface {
	Create(userID string, req *dto.CreateInternshipRequest) (*models.Internship, error)
	List(userID string, query *dto.ListInternshipsQuery) ([]models.Internship, error)
	Get(userID, id string) (*models.Internship, error)
	Update(userID, id string, req *dto.UpdateInternshipRequest) (*models.Internship, error)
	Delete(userID, id string) error
	Statistics(userID string) (*dto.StatisticsResponse, error)
}

type InternshipServiceImpl struct {
	internshipRepo repositories.InternshipRepository
}

func NewInternshipService(internshipRepo repositories.InternshipRepository) InternshipService {
	return &InternshipServiceImpl{
		internshipRepo: internshipRepo,
	}
}

// Create inserts a record under the authenticated owner. Enum fields fall
// back to their defaults and the application date to now when omitted.
func (s *InternshipServiceImpl) Create(userID string, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	internship := &models.Internship{
		UserID:          userID,
		CompanyName:     req.CompanyName,
		Position:        req.Position,
		Location:        req.Location,
		ApplicationType: models.TypeOnline,
		Status:          models.StatusWishlist,
		Priority:        models.PriorityMedium,
		ApplicationDate: time.Now(),
		Deadline:        req.Deadline,
		Salary:          req.Salary,
		Duration:        req.Duration,
		JobDescription:  req.JobDescription,
		Notes:           req.Notes,
		WebsiteURL:      req.WebsiteURL,
	}

	if req.ApplicationType != "" {
		internship.ApplicationType = models.ApplicationType(req.ApplicationType)
	}
	if req.Status != "" {
		internship.Status = models.ApplicationStatus(req.Status)
	}
	if req.Priority != "" {
		internship.Priority = models.Priority(req.Priority)
	}
	if req.ApplicationDate != nil {
		internship.ApplicationDate = *req.ApplicationDate
	}

	if err := s.internshipRepo.Create(internship); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return internship, nil
}

func (s *InternshipServiceImpl) List(userID string, query *dto.ListInternshipsQuery) ([]models.Internship, error) {
	filter := repositories.InternshipFilter{
		Status:   models.ApplicationStatus(query.Status),
		Priority: models.Priority(query.Priority),
		Search:   query.Search,
		SortBy:   query.SortBy,
	}

	internships, err := s.internshipRepo.FindAllByUser(userID, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return internships, nil
}

func (s *InternshipServiceImpl) Get(userID, id string) (*models.Internship, error) {
	internship, err := s.internshipRepo.FindByIDAndUser(userID, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.NotFoundError(err, "Internship not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return internship, nil
}

// Update applies the typed patch within the caller's partition. Field rules
// were already re-validated at the boundary; here the patch is translated
// to columns.
func (s *InternshipServiceImpl) Update(userID, id string, req *dto.UpdateInternshipRequest) (*models.Internship, error) {
	updates := map[string]interface{}{}

	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.ApplicationType != nil {
		updates["application_type"] = *req.ApplicationType
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.ApplicationDate != nil {
		updates["application_date"] = *req.ApplicationDate
	}
	if req.Deadline != nil {
		updates["deadline"] = *req.Deadline
	}
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.JobDescription != nil {
		updates["job_description"] = *req.JobDescription
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.WebsiteURL != nil {
		updates["website_url"] = *req.WebsiteURL
	}

	internship, err := s.internshipRepo.Update(userID, id, updates)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.NotFoundError(err, "Internship not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return internship, nil
}

func (s *InternshipServiceImpl) Delete(userID, id string) error {
	if err := s.internshipRepo.Delete(userID, id); err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return apperrors.NotFoundError(err, "Internship not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Statistics folds the grouped count into a map with every status present,
// zero buckets included. Total is the sum of the buckets, never a second
// query, so total == sum(byStatus) holds identically.
func (s *InternshipServiceImpl) Statistics(userID string) (*dto.StatisticsResponse, error) {
	counts, err := s.internshipRepo.CountByStatus(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.StatisticsResponse{
		ByStatus: make(map[string]int64, len(models.ApplicationStatuses)),
	}
	for _, status := range models.ApplicationStatuses {
		count := counts[status]
		stats.ByStatus[string(status)] = count
		stats.Total += count
	}
	return stats, nil
}
