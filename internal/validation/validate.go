package validation

import (
	"fmt"
	"strings"
	"time"

	"museum-api/internal/domain/catalog"

	"gorm.io/gorm"
)

const (
	MaxTitleLength = 100
	MaxNameLength  = 100
	MinYear        = 1000
)

// Errors collects every violation found for one candidate record.
// Writes go through only when the set is empty.
type Errors []string

func (e Errors) OK() bool {
	return len(e) == 0
}

// Message renders the accumulated violations the way the API reports
// them: a single body listing every problem, not just the first.
func (e Errors) Message() string {
	return "ERROR:\n" + strings.Join(e, "\n")
}

func ValidateArtist(a *catalog.Artist) Errors {
	var errs Errors
	if strings.TrimSpace(a.FirstName) == "" {
		errs = append(errs, "First name is required")
	}
	if strings.TrimSpace(a.LastName) == "" {
		errs = append(errs, "Last name is required")
	}
	if len(a.FirstName) > MaxNameLength {
		errs = append(errs, fmt.Sprintf("First name must be at most %d characters", MaxNameLength))
	}
	if len(a.LastName) > MaxNameLength {
		errs = append(errs, fmt.Sprintf("Last name must be at most %d characters", MaxNameLength))
	}
	if !a.BirthDate.IsZero() && a.BirthDate.After(time.Now()) {
		errs = append(errs, "Birth date must be in the past")
	}
	return errs
}

func ValidatePainting(db *gorm.DB, p *catalog.Painting) Errors {
	var errs Errors
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, "Title is required")
	}
	if len(p.Title) > MaxTitleLength {
		errs = append(errs, fmt.Sprintf("Title must be at most %d characters", MaxTitleLength))
	}
	if p.CreationYear < MinYear || p.CreationYear > time.Now().Year() {
		errs = append(errs, fmt.Sprintf("Creation year must be between %d and %d", MinYear, time.Now().Year()))
	}
	if p.Height <= 0 {
		errs = append(errs, "Height must be strictly positive")
	}
	if p.ArtistID == nil {
		errs = append(errs, "Artist is required")
	} else {
		var count int64
		db.Model(&catalog.Artist{}).Where("id = ?", *p.ArtistID).Count(&count)
		if count == 0 {
			errs = append(errs, fmt.Sprintf("Artist %d does not exist", *p.ArtistID))
		}
	}
	return errs
}

func ValidateMuseum(m *catalog.Museum) Errors {
	var errs Errors
	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, "Name is required")
	}
	if len(m.Name) > MaxNameLength {
		errs = append(errs, fmt.Sprintf("Name must be at most %d characters", MaxNameLength))
	}
	if strings.TrimSpace(m.Address) == "" {
		errs = append(errs, "Address is required")
	}
	if !m.FoundationDate.IsZero() && m.FoundationDate.After(time.Now()) {
		errs = append(errs, "Foundation date must be in the past")
	}
	if m.Website != "" && !strings.HasPrefix(m.Website, "http://") && !strings.HasPrefix(m.Website, "https://") {
		errs = append(errs, "Website must start with http:// or https://")
	}
	return errs
}

func ValidateExhibition(db *gorm.DB, e *catalog.Exhibition) Errors {
	var errs Errors
	var count int64
	db.Model(&catalog.Artist{}).Where("id = ?", e.ArtistID).Count(&count)
	if count == 0 {
		errs = append(errs, fmt.Sprintf("Artist %d does not exist", e.ArtistID))
	}
	db.Model(&catalog.Museum{}).Where("id = ?", e.MuseumID).Count(&count)
	if count == 0 {
		errs = append(errs, fmt.Sprintf("Museum %d does not exist", e.MuseumID))
	}
	if !e.StartDate.IsZero() && !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
		errs = append(errs, "End date must not be before start date")
	}
	return errs
}
