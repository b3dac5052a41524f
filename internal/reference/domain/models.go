package domain

import (
	"regexp"
	"time"
)

// CountryCode is an ISO 3166-1 alpha-2 country code. Codes are compared by
// equality only; an empty value means the country is unresolved.
type CountryCode string

var alpha2Pattern = regexp.MustCompile(`^[A-Z]{2}$`)

// Valid reports whether the code is well-formed alpha-2.
func (c CountryCode) Valid() bool {
	return alpha2Pattern.MatchString(string(c))
}

func (c CountryCode) String() string { return string(c) }

type Country struct {
	Code      string    `json:"code" gorm:"type:char(2);primaryKey;column:code"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at,omitempty" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Country) TableName() string { return "countries" }
