package models

import (
	"fmt"
	"strings"
)

const (
	// BACPerStandardDrink is the simplified BAC contribution of one standard drink
	BACPerStandardDrink = 0.02

	// PlaceholderDisplayName is shown before a user has authenticated
	PlaceholderDisplayName = "Placeholder Name"

	// PlaceholderUsername is shown before a user has authenticated
	PlaceholderUsername = "@placeholder"
)

// Profile is an immutable snapshot of a user's drinking record.
//
// Every mutating method returns a new Profile and never touches the
// receiver's slices, so a snapshot handed to a reader stays valid forever.
type Profile struct {
	// UID is the user identifier; empty until the user is authenticated
	UID string `json:"uid,omitempty"`

	// Email is the contact address of the user
	Email string `json:"email,omitempty"`

	// DisplayName is the human readable name
	DisplayName string `json:"displayName"`

	// Username is the @handle of the user
	Username string `json:"username"`

	// CurrentDrinks holds the drinks of the current session
	CurrentDrinks []Beverage `json:"currentDrinks"`

	// AllTimeDrinks holds every drink the account has ever had
	AllTimeDrinks []Beverage `json:"allTimeDrinks"`

	// BarVisitCount is the number of bar check-ins
	BarVisitCount int `json:"barVisitCount"`
}

// NewProfile returns the placeholder profile used before authentication
func NewProfile() Profile {
	return Profile{
		DisplayName:   PlaceholderDisplayName,
		Username:      PlaceholderUsername,
		CurrentDrinks: []Beverage{},
		AllTimeDrinks: []Beverage{},
	}
}

// NewProfileForIdentity builds a fresh profile for an authenticated user
// that has no stored record yet. The handle comes from the email local part,
// then the display name, then the UID.
func NewProfileForIdentity(uid, email, displayName string) Profile {
	p := NewProfile()
	p.UID = uid
	p.Email = email

	baseName := strings.SplitN(email, "@", 2)[0]
	handle := baseName
	if handle == "" {
		handle = strings.Join(strings.Fields(displayName), "")
	}
	if handle == "" {
		handle = uid
	}
	if handle != "" {
		p.Username = "@" + handle
	}

	switch {
	case displayName != "":
		p.DisplayName = displayName
	case handle != "":
		p.DisplayName = handle
	}

	return p
}

// IsAuthenticated reports whether the profile belongs to a known user
func (p Profile) IsAuthenticated() bool {
	return p.UID != ""
}

// AddDrink returns a new profile with the drink appended to both the
// session and all-time history
func (p Profile) AddDrink(b Beverage) Profile {
	next := p
	next.CurrentDrinks = appendCopy(p.CurrentDrinks, b)
	next.AllTimeDrinks = appendCopy(p.AllTimeDrinks, b)
	return next
}

// ResetCurrentDrinks returns a new profile with an empty session.
// All-time history is untouched.
func (p Profile) ResetCurrentDrinks() Profile {
	next := p
	next.CurrentDrinks = []Beverage{}
	next.AllTimeDrinks = appendCopy(p.AllTimeDrinks)
	return next
}

// IncrementBarVisit returns a new profile with one more bar visit
func (p Profile) IncrementBarVisit() Profile {
	next := p
	next.CurrentDrinks = appendCopy(p.CurrentDrinks)
	next.AllTimeDrinks = appendCopy(p.AllTimeDrinks)
	next.BarVisitCount = p.BarVisitCount + 1
	return next
}

// WithDisplayName returns a new profile with a different display name
func (p Profile) WithDisplayName(name string) Profile {
	next := p
	next.CurrentDrinks = appendCopy(p.CurrentDrinks)
	next.AllTimeDrinks = appendCopy(p.AllTimeDrinks)
	next.DisplayName = name
	return next
}

// StandardDrinks sums the standard drinks of the current session
func (p Profile) StandardDrinks() float64 {
	total := 0.0
	for _, b := range p.CurrentDrinks {
		total += b.StandardDrinks
	}
	return total
}

// BAC is the estimated blood alcohol content for the current session
func (p Profile) BAC() float64 {
	return p.StandardDrinks() * BACPerStandardDrink
}

// FormattedBAC renders the BAC as a percentage with two decimals
func (p Profile) FormattedBAC() string {
	return fmt.Sprintf("%.2f%%", p.BAC())
}

// DrinkCount is the all-time number of drinks
func (p Profile) DrinkCount() int {
	return len(p.AllTimeDrinks)
}

// SessionDrinkCount is the number of drinks in the current session
func (p Profile) SessionDrinkCount() int {
	return len(p.CurrentDrinks)
}

// appendCopy returns a freshly allocated slice holding src followed by extra
func appendCopy(src []Beverage, extra ...Beverage) []Beverage {
	out := make([]Beverage, 0, len(src)+len(extra))
	out = append(out, src...)
	return append(out, extra...)
}
