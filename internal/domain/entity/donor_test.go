package entity

import (
	"testing"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDonor() *Donor {
	return &Donor{
		UserID:          1,
		Name:            "Ana",
		PaternalSurname: "López",
		Age:             30,
		BloodType:       BloodTypeOPositive,
		Weight:          decimal.RequireFromString("62.50"),
		PhoneOne:        "2221234567",
		Active:          true,
		AddressID:       1,
	}
}

func TestDonor_CanDonateAt(t *testing.T) {
	today := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		daysAgo int
		want    bool
	}{
		{"91 days ago", 91, true},
		{"exactly 90 days ago", 90, true},
		{"89 days ago", 89, false},
		{"donated today", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := today.AddDate(0, 0, -tt.daysAgo)
			d := validDonor()
			d.LastDonation = &last

			assert.Equal(t, tt.want, d.CanDonateAt(today))
			days, ok := d.DaysSinceLastDonation(today)
			assert.True(t, ok)
			assert.Equal(t, tt.daysAgo, days)
		})
	}
}

func TestDonor_CanDonateAtIgnoresClock(t *testing.T) {
	last := time.Date(2024, time.March, 17, 23, 59, 0, 0, time.UTC)
	today := time.Date(2024, time.June, 15, 0, 1, 0, 0, time.UTC)
	d := validDonor()
	d.LastDonation = &last

	assert.True(t, d.CanDonateAt(today))
}

func TestDonor_NeverDonated(t *testing.T) {
	d := validDonor()

	assert.True(t, d.CanDonateAt(time.Now()))
	assert.Nil(t, d.NextEligibleDate())
	_, ok := d.DaysSinceLastDonation(time.Now())
	assert.False(t, ok)
}

func TestDonor_NextEligibleDate(t *testing.T) {
	last := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	d := validDonor()
	d.LastDonation = &last

	next := d.NextEligibleDate()
	require.NotNil(t, next)
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), *next)
	assert.True(t, d.CanDonateAt(*next))
	assert.False(t, d.CanDonateAt(next.AddDate(0, 0, -1)))
}

func TestDonor_AgeRules(t *testing.T) {
	d := validDonor()

	d.Age = 17
	assert.False(t, d.IsAdult())
	assert.ErrorIs(t, d.ValidateAgeRange(), apperror.ErrValidation)
	assert.NoError(t, d.Validate(), "age window is not part of Validate")

	d.Age = 18
	assert.True(t, d.IsAdult())
	assert.NoError(t, d.ValidateAgeRange())

	d.Age = 65
	assert.NoError(t, d.ValidateAgeRange())

	d.Age = 66
	assert.ErrorIs(t, d.ValidateAgeRange(), apperror.ErrValidation)
}

func TestDonor_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Donor)
	}{
		{"empty name", func(d *Donor) { d.Name = " " }},
		{"empty paternal surname", func(d *Donor) { d.PaternalSurname = "" }},
		{"empty phone", func(d *Donor) { d.PhoneOne = "" }},
		{"unknown blood type", func(d *Donor) { d.BloodType = "C+" }},
		{"zero weight", func(d *Donor) { d.Weight = decimal.Zero }},
		{"last before first donation", func(d *Donor) {
			first := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
			last := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
			d.FirstDonation, d.LastDonation = &first, &last
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDonor()
			tt.mutate(d)
			assert.ErrorIs(t, d.Validate(), apperror.ErrValidation)
		})
	}

	assert.NoError(t, validDonor().Validate())
}

func TestDonor_FullName(t *testing.T) {
	d := validDonor()
	assert.Equal(t, "Ana López", d.FullName())

	maternal := "Ruiz"
	d.MaternalSurname = &maternal
	assert.Equal(t, "Ana López Ruiz", d.FullName())
}

func TestDonor_Equal(t *testing.T) {
	a := validDonor()
	a.ID = 4
	b := validDonor()
	b.ID = 4
	b.Weight = decimal.RequireFromString("62.5")

	assert.True(t, a.Equal(b), "decimal scale does not matter")

	b.ID = 5
	assert.False(t, a.Equal(b))
}

func TestDonor_EligibilityAt(t *testing.T) {
	last := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d := &Donor{ID: 3, LastDonation: &last}

	e := d.EligibilityAt(time.Date(2024, 3, 31, 8, 0, 0, 0, time.UTC))
	assert.EqualValues(t, 3, e.DonorID)
	assert.True(t, e.Eligible)
	require.NotNil(t, e.DaysSinceLastDonation)
	assert.Equal(t, 90, *e.DaysSinceLastDonation)
	require.NotNil(t, e.NextEligibleDate)
	assert.True(t, e.NextEligibleDate.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)))
}
