package infrastructure

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"opportunity-finder/domain"
)

// visitorCounter is a single-row table backing the visitor count when
// MySQL is configured.
type visitorCounter struct {
	ID    uint  `gorm:"primaryKey"`
	Count int64 `gorm:"not null"`
}

func (visitorCounter) TableName() string { return "visitor_counters" }

// MySQLStore implements domain.Storage on top of gorm. Listings are
// returned in creation order so both backends behave the same.
type MySQLStore struct {
	db *gorm.DB
}

func NewMySQLStore(dsn string) *MySQLStore {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto migrate schema
	if err := db.AutoMigrate(&domain.Opportunity{}, &visitorCounter{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Make sure the counter row exists
	if err := db.FirstOrCreate(&visitorCounter{ID: 1}, visitorCounter{ID: 1}).Error; err != nil {
		log.Fatalf("failed to init visitor counter: %v", err)
	}

	fmt.Println("✅ Connected to MySQL and migrated schema")
	return &MySQLStore{db: db}
}

func (s *MySQLStore) GetAllOpportunities() ([]domain.Opportunity, error) {
	var opps []domain.Opportunity
	if err := s.db.Order("created_at").Find(&opps).Error; err != nil {
		return nil, err
	}
	return opps, nil
}

func (s *MySQLStore) GetOpportunityByID(id string) (*domain.Opportunity, error) {
	var opp domain.Opportunity
	err := s.db.First(&opp, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &opp, nil
}

func (s *MySQLStore) CreateOpportunity(insert domain.InsertOpportunity) (*domain.Opportunity, error) {
	opp := domain.Opportunity{
		ID:              uuid.NewString(),
		Title:           insert.Title,
		Organization:    insert.Organization,
		Description:     insert.Description,
		Location:        insert.Location,
		Country:         insert.Country,
		Deadline:        insert.Deadline,
		ReopenDate:      insert.ReopenDate,
		DeadlineStatus:  insert.DeadlineStatus,
		Competitiveness: insert.Competitiveness,
		Funding:         insert.Funding,
		Language:        insert.Language,
		Duration:        insert.Duration,
		AgeRange:        insert.AgeRange,
		CareerArea:      insert.CareerArea,
		URL:             insert.URL,
	}
	if err := s.db.Create(&opp).Error; err != nil {
		return nil, err
	}
	return &opp, nil
}

func (s *MySQLStore) UpdateOpportunity(id string, updates domain.UpdateOpportunity) (*domain.Opportunity, error) {
	var opp domain.Opportunity
	err := s.db.First(&opp, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	updates.ApplyTo(&opp)
	if err := s.db.Save(&opp).Error; err != nil {
		return nil, err
	}
	return &opp, nil
}

func (s *MySQLStore) DeleteOpportunity(id string) (bool, error) {
	res := s.db.Delete(&domain.Opportunity{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *MySQLStore) GetVisitorCount() (int64, error) {
	var counter visitorCounter
	if err := s.db.First(&counter, 1).Error; err != nil {
		return 0, err
	}
	return counter.Count, nil
}

func (s *MySQLStore) IncrementVisitorCount() (int64, error) {
	var count int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("UPDATE visitor_counters SET count = count + 1 WHERE id = 1").Error; err != nil {
			return err
		}
		var counter visitorCounter
		if err := tx.First(&counter, 1).Error; err != nil {
			return err
		}
		count = counter.Count
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
