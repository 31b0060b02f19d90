package artists

import (
	"time"

	"museum-api/internal/domain/catalog"

	"gorm.io/gorm"
)

// artistAverageRow is the scan target for the grouped aggregation
// reports. Artists without paintings drop out through the inner join.
type artistAverageRow struct {
	ID         uint
	FirstName  string
	LastName   string
	BirthDate  time.Time
	BirthPlace string
	Education  string
	Movement   string
	Average    float64
}

func (r artistAverageRow) toDTO() ArtistDTO {
	return ArtistDTO{
		ID:         r.ID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		BirthDate:  r.BirthDate,
		BirthPlace: r.BirthPlace,
		Education:  r.Education,
		Movement:   r.Movement,
	}
}

func averageByColumn(db *gorm.DB, column string) ([]artistAverageRow, error) {
	var rows []artistAverageRow
	err := db.Model(&catalog.Artist{}).
		Select("artists.id, artists.first_name, artists.last_name, artists.birth_date, artists.birth_place, artists.education, artists.movement, AVG(paintings."+column+") AS average").
		Joins("INNER JOIN paintings ON paintings.artist_id = artists.id").
		Group("artists.id").
		Order("average").
		Scan(&rows).Error
	return rows, err
}
