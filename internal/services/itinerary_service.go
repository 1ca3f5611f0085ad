package services

import (
	"fmt"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/itinerary"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// ItineraryService synchronizes a package's day rows with its days field and
// persists the result.
type ItineraryService struct {
	Repo      repositories.ItineraryRepository
	RequestID string

	// test seams, default to Repo when nil
	LoadDays func(packageID int64) ([]models.ItineraryDay, error)
	SaveDays func(packageID int64, days []models.ItineraryDay, deleted []int64) error
	Fetcher  itinerary.TemplateFetcher
}

// SyncDays adjusts the stored day rows to target and writes them back. Rows
// past the target are dropped from the end, missing rows appended blank, and
// day numbers reassigned in visible order. A target of zero or below is a
// validation error at this layer since nothing user-visible filtered it.
func (s ItineraryService) SyncDays(packageID int64, target int) ([]models.ItineraryDay, error) {
	if target <= 0 {
		return nil, domain.ValidationError{Msg: "days must be a positive number"}
	}

	existing, err := s.loadDays(packageID)
	if err != nil {
		return nil, err
	}

	fs := itinerary.Formset{}
	for _, d := range existing {
		fs.Rows = append(fs.Rows, itinerary.Row{
			ID:             d.ID,
			DayNumber:      d.DayNumber,
			Title:          d.Title,
			Description:    d.Description,
			MasterTemplate: d.MasterTemplate,
			Persisted:      true,
		})
	}
	fs.Adjust(target)

	days, deleted := s.rowsToModels(packageID, existing, fs)
	if err := s.saveDays(packageID, days, deleted); err != nil {
		return nil, err
	}
	utils.LogEvent(s.RequestID, "itinerary", "sync_days",
		fmt.Sprintf("package_id=%d target=%d deleted=%d", packageID, target, len(deleted)))
	return days, nil
}

// ApplyTemplate autofills one stored day row from a master template and
// persists it.
func (s ItineraryService) ApplyTemplate(packageID, dayID, templateID int64) ([]models.ItineraryDay, error) {
	existing, err := s.loadDays(packageID)
	if err != nil {
		return nil, err
	}

	fs := itinerary.Formset{}
	index := -1
	for i, d := range existing {
		fs.Rows = append(fs.Rows, itinerary.Row{
			ID:             d.ID,
			DayNumber:      d.DayNumber,
			Title:          d.Title,
			Description:    d.Description,
			MasterTemplate: d.MasterTemplate,
			Persisted:      true,
		})
		if d.ID == dayID {
			index = i
		}
	}
	if index < 0 {
		return nil, domain.NotFoundError{Resource: "itinerary day"}
	}
	if err := fs.ApplyTemplate(index, templateID, s.fetcher()); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.InternalError{Msg: "failed to apply template", Err: err}
	}

	days, deleted := s.rowsToModels(packageID, existing, fs)
	if err := s.saveDays(packageID, days, deleted); err != nil {
		return nil, err
	}
	utils.LogEvent(s.RequestID, "itinerary", "apply_template",
		fmt.Sprintf("package_id=%d day_id=%d template_id=%d", packageID, dayID, templateID))
	return days, nil
}

// rowsToModels splits the formset into surviving day models and ids flagged
// for deletion. Images on existing rows are carried over untouched.
func (s ItineraryService) rowsToModels(packageID int64, existing []models.ItineraryDay, fs itinerary.Formset) ([]models.ItineraryDay, []int64) {
	images := map[int64]string{}
	for _, d := range existing {
		images[d.ID] = d.Image
	}

	days := []models.ItineraryDay{}
	deleted := []int64{}
	for _, r := range fs.Rows {
		if r.Deleted {
			if r.ID != 0 {
				deleted = append(deleted, r.ID)
			}
			continue
		}
		days = append(days, models.ItineraryDay{
			ID:             r.ID,
			PackageID:      packageID,
			MasterTemplate: r.MasterTemplate,
			DayNumber:      r.DayNumber,
			Title:          r.Title,
			Description:    r.Description,
			Image:          images[r.ID],
		})
	}
	return days, deleted
}

func (s ItineraryService) loadDays(packageID int64) ([]models.ItineraryDay, error) {
	if s.LoadDays != nil {
		return s.LoadDays(packageID)
	}
	return s.Repo.ListDays(packageID)
}

func (s ItineraryService) saveDays(packageID int64, days []models.ItineraryDay, deleted []int64) error {
	if s.SaveDays != nil {
		return s.SaveDays(packageID, days, deleted)
	}
	return s.Repo.ReplaceDays(packageID, days, deleted)
}

func (s ItineraryService) fetcher() itinerary.TemplateFetcher {
	if s.Fetcher != nil {
		return s.Fetcher
	}
	return s.Repo
}
