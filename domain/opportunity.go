package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a []string column as JSON text so the same entity
// works for both the in-memory store and MySQL.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// Opportunity is a single program listing (internship, volunteer
// program, scholarship, ...). Enum-like fields (deadlineStatus,
// competitiveness, funding) are stored as free text; unknown values
// are kept as-is and simply never match any filter.
type Opportunity struct {
	ID              string     `json:"id" gorm:"primaryKey;size:36"`
	Title           string     `json:"title" gorm:"size:255;not null"`
	Organization    string     `json:"organization" gorm:"size:255;not null"`
	Description     string     `json:"description" gorm:"type:text;not null"`
	Location        string     `json:"location" gorm:"size:255;not null"`
	Country         string     `json:"country" gorm:"size:255;not null"`
	Deadline        string     `json:"deadline" gorm:"size:255;not null"`
	ReopenDate      *string    `json:"reopenDate" gorm:"size:255"`
	DeadlineStatus  string     `json:"deadlineStatus" gorm:"size:32;not null"`
	Competitiveness string     `json:"competitiveness" gorm:"size:32;not null"`
	Funding         string     `json:"funding" gorm:"size:32;not null"`
	Language        StringList `json:"language" gorm:"type:text;not null"`
	Duration        string     `json:"duration" gorm:"size:255;not null"`
	AgeRange        string     `json:"ageRange" gorm:"size:64;not null"`
	CareerArea      StringList `json:"careerArea" gorm:"type:text;not null"`
	URL             string     `json:"url" gorm:"size:512;not null"`
	CreatedAt       int64      `json:"-" gorm:"autoCreateTime:nano"`
}

// Clone returns a deep copy so callers never share slices or pointers
// with stored records.
func (o Opportunity) Clone() Opportunity {
	c := o
	if o.ReopenDate != nil {
		v := *o.ReopenDate
		c.ReopenDate = &v
	}
	c.Language = append(StringList(nil), o.Language...)
	c.CareerArea = append(StringList(nil), o.CareerArea...)
	return c
}

// InsertOpportunity is the create payload: everything except the id,
// which the store assigns.
type InsertOpportunity struct {
	Title           string     `json:"title"`
	Organization    string     `json:"organization"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	Country         string     `json:"country"`
	Deadline        string     `json:"deadline"`
	ReopenDate      *string    `json:"reopenDate"`
	DeadlineStatus  string     `json:"deadlineStatus"`
	Competitiveness string     `json:"competitiveness"`
	Funding         string     `json:"funding"`
	Language        StringList `json:"language"`
	Duration        string     `json:"duration"`
	AgeRange        string     `json:"ageRange"`
	CareerArea      StringList `json:"careerArea"`
	URL             string     `json:"url"`
}

// Validate checks that every required field is present and non-empty.
// Enum values are not checked against a closed list on purpose.
func (i InsertOpportunity) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"title", i.Title},
		{"organization", i.Organization},
		{"description", i.Description},
		{"location", i.Location},
		{"country", i.Country},
		{"deadline", i.Deadline},
		{"deadlineStatus", i.DeadlineStatus},
		{"competitiveness", i.Competitiveness},
		{"funding", i.Funding},
		{"duration", i.Duration},
		{"ageRange", i.AgeRange},
		{"url", i.URL},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	if len(i.Language) == 0 {
		return fmt.Errorf("language is required")
	}
	if len(i.CareerArea) == 0 {
		return fmt.Errorf("careerArea is required")
	}
	return nil
}

// UpdateOpportunity is a partial update: nil (or empty, for the list
// fields) means "leave unchanged".
type UpdateOpportunity struct {
	Title           *string    `json:"title"`
	Organization    *string    `json:"organization"`
	Description     *string    `json:"description"`
	Location        *string    `json:"location"`
	Country         *string    `json:"country"`
	Deadline        *string    `json:"deadline"`
	ReopenDate      *string    `json:"reopenDate"`
	DeadlineStatus  *string    `json:"deadlineStatus"`
	Competitiveness *string    `json:"competitiveness"`
	Funding         *string    `json:"funding"`
	Language        StringList `json:"language"`
	Duration        *string    `json:"duration"`
	AgeRange        *string    `json:"ageRange"`
	CareerArea      StringList `json:"careerArea"`
	URL             *string    `json:"url"`
}

// ApplyTo merges the supplied fields over an existing record. Sending
// reopenDate as an empty string clears it back to absent.
func (u UpdateOpportunity) ApplyTo(o *Opportunity) {
	if u.Title != nil {
		o.Title = *u.Title
	}
	if u.Organization != nil {
		o.Organization = *u.Organization
	}
	if u.Description != nil {
		o.Description = *u.Description
	}
	if u.Location != nil {
		o.Location = *u.Location
	}
	if u.Country != nil {
		o.Country = *u.Country
	}
	if u.Deadline != nil {
		o.Deadline = *u.Deadline
	}
	if u.ReopenDate != nil {
		if *u.ReopenDate == "" {
			o.ReopenDate = nil
		} else {
			v := *u.ReopenDate
			o.ReopenDate = &v
		}
	}
	if u.DeadlineStatus != nil {
		o.DeadlineStatus = *u.DeadlineStatus
	}
	if u.Competitiveness != nil {
		o.Competitiveness = *u.Competitiveness
	}
	if u.Funding != nil {
		o.Funding = *u.Funding
	}
	if len(u.Language) > 0 {
		o.Language = append(StringList(nil), u.Language...)
	}
	if u.Duration != nil {
		o.Duration = *u.Duration
	}
	if u.AgeRange != nil {
		o.AgeRange = *u.AgeRange
	}
	if len(u.CareerArea) > 0 {
		o.CareerArea = append(StringList(nil), u.CareerArea...)
	}
	if u.URL != nil {
		o.URL = *u.URL
	}
}
