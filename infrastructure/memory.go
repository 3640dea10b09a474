package infrastructure

import (
	"sync"

	"github.com/google/uuid"

	"opportunity-finder/domain"
)

// MemoryStore keeps every listing in process memory. It is the default
// backend: a map keyed by id plus an insertion-order slice so listings
// come back in the order they were created. All state is guarded by a
// single mutex and everything handed out is a copy.
type MemoryStore struct {
	mu            sync.Mutex
	opportunities map[string]domain.Opportunity
	order         []string
	visitorCount  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		opportunities: make(map[string]domain.Opportunity),
	}
}

func (s *MemoryStore) GetAllOpportunities() ([]domain.Opportunity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Opportunity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.opportunities[id].Clone())
	}
	return out, nil
}

func (s *MemoryStore) GetOpportunityByID(id string) (*domain.Opportunity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opp, ok := s.opportunities[id]
	if !ok {
		return nil, nil
	}
	clone := opp.Clone()
	return &clone, nil
}

func (s *MemoryStore) CreateOpportunity(insert domain.InsertOpportunity) (*domain.Opportunity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opp := domain.Opportunity{
		ID:              uuid.NewString(),
		Title:           insert.Title,
		Organization:    insert.Organization,
		Description:     insert.Description,
		Location:        insert.Location,
		Country:         insert.Country,
		Deadline:        insert.Deadline,
		DeadlineStatus:  insert.DeadlineStatus,
		Competitiveness: insert.Competitiveness,
		Funding:         insert.Funding,
		Language:        append(domain.StringList(nil), insert.Language...),
		Duration:        insert.Duration,
		AgeRange:        insert.AgeRange,
		CareerArea:      append(domain.StringList(nil), insert.CareerArea...),
		URL:             insert.URL,
	}
	if insert.ReopenDate != nil {
		v := *insert.ReopenDate
		opp.ReopenDate = &v
	}

	s.opportunities[opp.ID] = opp
	s.order = append(s.order, opp.ID)

	clone := opp.Clone()
	return &clone, nil
}

func (s *MemoryStore) UpdateOpportunity(id string, updates domain.UpdateOpportunity) (*domain.Opportunity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opp, ok := s.opportunities[id]
	if !ok {
		return nil, nil
	}
	updates.ApplyTo(&opp)
	s.opportunities[id] = opp

	clone := opp.Clone()
	return &clone, nil
}

func (s *MemoryStore) DeleteOpportunity(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.opportunities[id]; !ok {
		return false, nil
	}
	delete(s.opportunities, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (s *MemoryStore) GetVisitorCount() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visitorCount, nil
}

func (s *MemoryStore) IncrementVisitorCount() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visitorCount++
	return s.visitorCount, nil
}
