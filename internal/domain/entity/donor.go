package entity

import (
	"slices"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"

	"github.com/shopspring/decimal"
)

// BloodType is an ABO/Rh group
type BloodType string

const (
	BloodTypeAPositive  BloodType = "A+"
	BloodTypeANegative  BloodType = "A-"
	BloodTypeBPositive  BloodType = "B+"
	BloodTypeBNegative  BloodType = "B-"
	BloodTypeABPositive BloodType = "AB+"
	BloodTypeABNegative BloodType = "AB-"
	BloodTypeOPositive  BloodType = "O+"
	BloodTypeONegative  BloodType = "O-"
)

var bloodTypes = []BloodType{
	BloodTypeAPositive, BloodTypeANegative,
	BloodTypeBPositive, BloodTypeBNegative,
	BloodTypeABPositive, BloodTypeABNegative,
	BloodTypeOPositive, BloodTypeONegative,
}

func (b BloodType) IsValid() bool {
	return slices.Contains(bloodTypes, b)
}

const (
	// MinDaysBetweenDonations is the rest period required after a donation.
	MinDaysBetweenDonations = 90

	MinDonorAge   = 18
	MaxDonorAge   = 65
	AdultAgeLimit = 18
)

// Donor is the donation profile of a User living at an Address. User and
// Address are snapshots loaded on read.
type Donor struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64           `gorm:"not null;uniqueIndex" json:"user_id"`
	Name            string          `gorm:"type:varchar(100);not null" json:"name"`
	PaternalSurname string          `gorm:"type:varchar(100);not null" json:"paternal_surname"`
	MaternalSurname *string         `gorm:"type:varchar(100)" json:"maternal_surname,omitempty"`
	Age             int             `gorm:"not null" json:"age"`
	BloodType       BloodType       `gorm:"type:varchar(3);not null;index" json:"blood_type"`
	Weight          decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"weight"`
	PhoneOne        string          `gorm:"type:varchar(20);not null" json:"phone_one"`
	PhoneTwo        *string         `gorm:"type:varchar(20)" json:"phone_two,omitempty"`
	Active          bool            `gorm:"not null" json:"active"`
	FirstDonation   *time.Time      `gorm:"type:date" json:"first_donation,omitempty"`
	LastDonation    *time.Time      `gorm:"type:date" json:"last_donation,omitempty"`
	AddressID       int64           `gorm:"not null;index" json:"address_id"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Address *Address `gorm:"foreignKey:AddressID" json:"address,omitempty"`
}

func (Donor) TableName() string {
	return "donors"
}

// Validate checks the fields every donor must carry.
func (d *Donor) Validate() error {
	if err := requireText("name", d.Name); err != nil {
		return err
	}
	if err := requireText("paternal_surname", d.PaternalSurname); err != nil {
		return err
	}
	if err := requireText("phone_one", d.PhoneOne); err != nil {
		return err
	}
	if !d.BloodType.IsValid() {
		return apperror.Validation("blood_type", "must be one of A+ A- B+ B- AB+ AB- O+ O-")
	}
	if d.Age < 0 {
		return apperror.Validation("age", "must not be negative")
	}
	if !d.Weight.IsPositive() {
		return apperror.Validation("weight", "must be greater than zero")
	}
	if d.FirstDonation != nil && d.LastDonation != nil && DateOnly(*d.LastDonation).Before(DateOnly(*d.FirstDonation)) {
		return apperror.Validation("last_donation", "must not be before first_donation")
	}
	return nil
}

// ValidateAgeRange enforces the donation age window. It is not part of
// Validate; callers opt in.
func (d *Donor) ValidateAgeRange() error {
	if d.Age < MinDonorAge || d.Age > MaxDonorAge {
		return apperror.Validation("age", "must be between 18 and 65")
	}
	return nil
}

func (d *Donor) IsAdult() bool {
	return d.Age >= AdultAgeLimit
}

// FullName joins name and surnames, skipping an absent maternal surname.
func (d *Donor) FullName() string {
	name := d.Name + " " + d.PaternalSurname
	if d.MaternalSurname != nil && *d.MaternalSurname != "" {
		name += " " + *d.MaternalSurname
	}
	return name
}

// DaysSinceLastDonation returns whole calendar days between the last
// donation and today. ok is false when the donor never donated.
func (d *Donor) DaysSinceLastDonation(today time.Time) (days int, ok bool) {
	if d.LastDonation == nil {
		return 0, false
	}
	return int(DateOnly(today).Sub(DateOnly(*d.LastDonation)).Hours() / 24), true
}

// CanDonateAt reports whether at least MinDaysBetweenDonations days have
// passed since the last donation. A donor without donations can donate.
func (d *Donor) CanDonateAt(today time.Time) bool {
	days, ok := d.DaysSinceLastDonation(today)
	if !ok {
		return true
	}
	return days >= MinDaysBetweenDonations
}

func (d *Donor) CanDonate() bool {
	return d.CanDonateAt(time.Now())
}

// NextEligibleDate is the first date CanDonateAt turns true, or nil when the
// donor never donated.
func (d *Donor) NextEligibleDate() *time.Time {
	if d.LastDonation == nil {
		return nil
	}
	next := DateOnly(*d.LastDonation).AddDate(0, 0, MinDaysBetweenDonations)
	return &next
}

// Eligibility is the outcome of a donation eligibility check.
type Eligibility struct {
	DonorID               int64
	Eligible              bool
	DaysSinceLastDonation *int
	NextEligibleDate      *time.Time
}

func (d *Donor) EligibilityAt(today time.Time) Eligibility {
	e := Eligibility{
		DonorID:          d.ID,
		Eligible:         d.CanDonateAt(today),
		NextEligibleDate: d.NextEligibleDate(),
	}
	if days, ok := d.DaysSinceLastDonation(today); ok {
		e.DaysSinceLastDonation = &days
	}
	return e
}

// Equal compares identity, personal data and references. Snapshots are
// compared by reference id only.
func (d *Donor) Equal(other *Donor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.ID == other.ID &&
		d.UserID == other.UserID &&
		d.Name == other.Name &&
		d.PaternalSurname == other.PaternalSurname &&
		equalStringPtr(d.MaternalSurname, other.MaternalSurname) &&
		d.Age == other.Age &&
		d.BloodType == other.BloodType &&
		d.Weight.Equal(other.Weight) &&
		d.PhoneOne == other.PhoneOne &&
		equalStringPtr(d.PhoneTwo, other.PhoneTwo) &&
		d.Active == other.Active &&
		equalDatePtr(d.FirstDonation, other.FirstDonation) &&
		equalDatePtr(d.LastDonation, other.LastDonation) &&
		d.AddressID == other.AddressID
}

// DonorFilter narrows donor listings. Zero values do not filter.
type DonorFilter struct {
	BloodType      BloodType
	Active         *bool
	NeighborhoodID int64
}
