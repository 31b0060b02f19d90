// Package seed backs the admin bulk-seed endpoints with fake but
// plausible records. Seeded user names get a counter suffix and rely on
// the unique index, instead of regenerating until a free name shows up.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"museum-api/internal/domain/catalog"
	"museum-api/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seededPassword = "password1"

var firstNames = []string{
	"Ada", "Claude", "Diego", "Frida", "Georgia", "Henri", "Joan",
	"Leonora", "Marc", "Paul", "Rene", "Salvador", "Tamara", "Vincent",
}

var lastNames = []string{
	"Carrington", "Chagall", "Dali", "Kahlo", "Klimt", "Magritte",
	"Matisse", "Miro", "Monet", "O'Keeffe", "Rivera", "Van Gogh",
}

var cities = []string{
	"Amsterdam", "Barcelona", "Florence", "Madrid", "Mexico City",
	"Paris", "Saint Petersburg", "Vienna", "Zurich",
}

var universities = []string{
	"Harvard University", "Stanford University", "University of California",
	"University of Pennsylvania", "Yale University", "Columbia University",
	"Princeton University",
}

var movements = []string{
	"Abstract Expressionism", "Baroque", "Cubism", "Dada", "Fauvism",
	"Impressionism", "Minimalism", "Pop Art", "Renaissance",
	"Romanticism", "Surrealism",
}

var descriptiveWords = []string{
	"Majestic", "Ephemeral", "Whimsical", "Serene", "Mystical",
	"Vibrant", "Elegant", "Bold", "Surreal", "Dreamy",
}

var subjects = []string{
	"Landscape", "Portrait", "Still Life", "Abstract", "Cityscape",
	"Wildlife", "Floral", "Historical", "Mythological", "Religious",
	"Marine",
}

var mediums = []string{
	"Oil", "Acrylic", "Watercolor", "Pastel", "Charcoal", "Digital",
}

var architects = []string{
	"Frank Gehry", "Zaha Hadid", "Renzo Piano", "I. M. Pei",
	"Oscar Niemeyer", "Santiago Calatrava",
}

func pick(items []string) string {
	return items[rand.Intn(len(items))]
}

func pastDate(maxYearsAgo int) time.Time {
	days := rand.Intn(maxYearsAgo * 365)
	return time.Now().AddDate(0, 0, -days)
}

func randomID(ids []uint) *uint {
	if len(ids) == 0 {
		return nil
	}
	id := ids[rand.Intn(len(ids))]
	return &id
}

func userIDs(db *gorm.DB) ([]uint, error) {
	var ids []uint
	err := db.Model(&users.User{}).Pluck("id", &ids).Error
	return ids, err
}

// Users inserts n users with profiles. All share one bcrypt hash;
// hashing per record would dominate the seed time for nothing.
func Users(db *gorm.DB, n int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seededPassword), bcrypt.MinCost)
	if err != nil {
		return err
	}

	suffix := time.Now().UnixNano()
	for i := 0; i < n; i++ {
		user := users.User{
			Name:        fmt.Sprintf("%s_%s_%d_%d", pick(firstNames), pick(lastNames), suffix, i),
			Password:    string(hash),
			AccessLevel: users.AccessRegular,
			Profile: &users.UserProfile{
				Bio:            fmt.Sprintf("%s painter from %s", pick(movements), pick(cities)),
				Location:       pick(cities),
				Gender:         users.Gender(rand.Intn(4)),
				MaritalStatus:  users.MaritalStatus(rand.Intn(5)),
				PagePreference: 5,
			},
		}
		birthday := pastDate(60)
		user.Profile.Birthday = &birthday

		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}

func Artists(db *gorm.DB, n int) error {
	owners, err := userIDs(db)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		artist := catalog.Artist{
			FirstName:  pick(firstNames),
			LastName:   pick(lastNames),
			BirthDate:  pastDate(80),
			BirthPlace: pick(cities),
			Education:  pick(universities),
			Movement:   pick(movements),
			UserID:     randomID(owners),
		}
		if err := db.Create(&artist).Error; err != nil {
			return err
		}
	}
	return nil
}

func Paintings(db *gorm.DB, n int) error {
	var artistIDs []uint
	if err := db.Model(&catalog.Artist{}).Pluck("id", &artistIDs).Error; err != nil {
		return err
	}
	if len(artistIDs) == 0 {
		return fmt.Errorf("cannot seed paintings without artists")
	}

	owners, err := userIDs(db)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		painting := catalog.Painting{
			Title:        fmt.Sprintf("%s %s No. %d", pick(descriptiveWords), pick(subjects), i+1),
			CreationYear: 1800 + rand.Intn(224),
			Height:       0.5 + rand.Float64()*4.5,
			Subject:      pick(subjects),
			Medium:       pick(mediums),
			ArtistID:     randomID(artistIDs),
			UserID:       randomID(owners),
		}
		if err := db.Create(&painting).Error; err != nil {
			return err
		}
	}
	return nil
}

func Museums(db *gorm.DB, n int) error {
	owners, err := userIDs(db)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		city := pick(cities)
		museum := catalog.Museum{
			Name:           fmt.Sprintf("%s Museum of %s Art", city, pick(movements)),
			Address:        fmt.Sprintf("%d %s Street, %s", 1+rand.Intn(200), pick(lastNames), city),
			FoundationDate: pastDate(150),
			Architect:      pick(architects),
			Website:        fmt.Sprintf("https://museum-%d.example.org", i+1),
			UserID:         randomID(owners),
		}
		if err := db.Create(&museum).Error; err != nil {
			return err
		}
	}
	return nil
}

// Exhibitions pairs random artists with random museums. Collisions on
// the composite key are skipped through ON CONFLICT DO NOTHING, so the
// count is an upper bound.
func Exhibitions(db *gorm.DB, n int) error {
	var artistIDs, museumIDs []uint
	if err := db.Model(&catalog.Artist{}).Pluck("id", &artistIDs).Error; err != nil {
		return err
	}
	if err := db.Model(&catalog.Museum{}).Pluck("id", &museumIDs).Error; err != nil {
		return err
	}
	if len(artistIDs) == 0 || len(museumIDs) == 0 {
		return fmt.Errorf("cannot seed exhibitions without artists and museums")
	}

	owners, err := userIDs(db)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		start := pastDate(5)
		exhibition := catalog.Exhibition{
			ArtistID:  *randomID(artistIDs),
			MuseumID:  *randomID(museumIDs),
			StartDate: start,
			EndDate:   start.AddDate(0, 1+rand.Intn(6), 0),
			UserID:    randomID(owners),
		}
		err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&exhibition).Error
		if err != nil {
			return err
		}
	}
	return nil
}
