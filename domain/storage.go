package domain

// Storage is the persistence boundary for listings and the visitor
// counter. Implementations return copies; callers never share mutable
// state with the store. Unknown ids come back as nil/false, never as
// an error — the error return is reserved for backing-store failures.
type Storage interface {
	GetAllOpportunities() ([]Opportunity, error)
	GetOpportunityByID(id string) (*Opportunity, error)
	CreateOpportunity(insert InsertOpportunity) (*Opportunity, error)
	UpdateOpportunity(id string, updates UpdateOpportunity) (*Opportunity, error)
	DeleteOpportunity(id string) (bool, error)
	GetVisitorCount() (int64, error)
	IncrementVisitorCount() (int64, error)
}
